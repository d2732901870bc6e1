// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - the randomness oracle for new genetic codes
//
// values are derived from the block seed, the caller and the
// operation sequence so every node computes the same result
package random
