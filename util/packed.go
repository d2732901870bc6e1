// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// Uint64ToBytes - 8 byte big endian form, used for all storage keys and counters
func Uint64ToBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

// BytesToUint64 - decode the first 8 bytes as big endian
//
// second value is false if the buffer is too short
func BytesToUint64(buffer []byte) (uint64, bool) {
	if len(buffer) < 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// PackBytes - append a varint length prefixed byte slice
func PackBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// UnpackBytes - extract a varint length prefixed byte slice
//
// returns the data and the total number of bytes consumed,
// count is zero if the buffer is truncated
func UnpackBytes(buffer []byte) ([]byte, int) {
	length, n := FromVarint64(buffer)
	if 0 == n {
		return nil, 0
	}
	end := uint64(n) + length
	if end < uint64(n) || end > uint64(len(buffer)) {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:end])
	return data, int(end)
}
