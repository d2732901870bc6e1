// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genetics - fixed length genetic codes and the bitwise mixer
// used to breed a child from two parents
package genetics
