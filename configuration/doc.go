// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// example:
//
//   local M = {}
//   M.data_directory = "."
//   M.threshold = 5
//   M.percentages = {
//       vip = { l1 = 0.10, l2 = 0.05 },
//       basic = { l1 = 0.02, l2 = 0.01 },
//   }
//   M.logging = { levels = { DEFAULT = "info" } }
//   return M
package configuration
