// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// registry errors - keep in alphabetic order
var (
	ErrIndexOverflow       = ProcessError("creature index overflow")
	ErrInsufficientBalance = ProcessError("insufficient balance")
	ErrInvalidPrice        = InvalidError("invalid sell price")
	ErrNoSuchAccount       = NotFoundError("no such account")
	ErrNoSuchAsset         = NotFoundError("no such creature index")
	ErrNoSuchOwner         = NotFoundError("no such owner")
	ErrNotForSale          = InvalidError("creature not for sale")
	ErrNotOwner            = InvalidError("not creature owner")
	ErrSameParent          = InvalidError("same parent index")
)

// claim errors - keep in alphabetic order
var (
	ErrNoSuchProof           = NotFoundError("no such proof")
	ErrNotProofOwner         = InvalidError("not proof owner")
	ErrProofAlreadyClaimed   = ExistsError("proof already claimed")
	ErrProofReceiverNotExist = NotFoundError("proof receiver does not exist")
	ErrProofTooLong          = LengthError("proof too long")
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrBalanceOverflow              = ProcessError("balance overflow")
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrCorruptRecord                = RecordError("corrupt record")
	ErrDatabaseVersion              = ProcessError("database version is newer than program")
	ErrDNALengthMismatch            = LengthError("dna length mismatch")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = LengthError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidNonce                 = InvalidError("nonce outside the allowed window")
	ErrInvalidPrivateKey            = InvalidError("invalid private key")
	ErrInvalidProof                 = InvalidError("invalid proof encoding")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKey             = InvalidError("invalid public key")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotConnected                 = ProcessError("not connected")
	ErrNotInitialised               = NotFoundError("not initialised")
	ErrNotPublicKey                 = RecordError("not a public key")
	ErrRateLimiting                 = InvalidError("rate limiting")
	ErrReplayedRequest              = ExistsError("request already processed")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrTransactionNotInUse          = ProcessError("transaction not in use")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
