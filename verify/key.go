// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"encoding/binary"
)

const signBit = uint64(1) << 63

// big endian with the sign bit inverted so negative keys sort first
func encodeKey(key int64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(key)^signBit)
	return buffer
}

func decodeKey(buffer []byte) int64 {
	return int64(binary.BigEndian.Uint64(buffer) ^ signBit)
}

func encodeValue(value int64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(value))
	return buffer
}

func decodeValue(buffer []byte) int64 {
	return int64(binary.BigEndian.Uint64(buffer))
}
