// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - the currency subsystem
//
// each account has a free balance that can be spent and a reserved
// balance held against creatures it created; an account exists once
// it has received funds by deposit or transfer
package balance
