// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/creatured/fault"
)

// common errors - keep in alphabetic order
var (
	ErrFingerprintMismatch    = fault.InvalidError("server certificate fingerprint mismatch")
	ErrIdentityExists         = fault.ExistsError("identity file already exists")
	ErrInvalidIdentity        = fault.InvalidError("invalid identity file")
	ErrInvalidNetwork         = fault.InvalidError("invalid network")
	ErrInvalidPasswordLength  = fault.InvalidError("password must be at least 8 characters")
	ErrMissingConnect         = fault.InvalidError("missing connect HOST:PORT")
	ErrMissingIdentity        = fault.InvalidError("missing identity file")
	ErrMissingParameter       = fault.InvalidError("missing parameter")
	ErrPasswordMismatch       = fault.InvalidError("passwords do not match")
	ErrWrongPassword          = fault.InvalidError("wrong password")
	ErrWrongNetworkForAccount = fault.InvalidError("identity is for a different network")
)
