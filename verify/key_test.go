// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOrder(t *testing.T) {
	keys := []int64{math.MinInt64, -1 << 40, -300, -1, 0, 1, 2, 255, 256, 1 << 40, math.MaxInt64}

	for i := 1; i < len(keys); i += 1 {
		a := encodeKey(keys[i-1])
		b := encodeKey(keys[i])
		assert.Equal(t, -1, bytes.Compare(a, b), "%d < %d", keys[i-1], keys[i])
	}
	for _, k := range keys {
		assert.Equal(t, k, decodeKey(encodeKey(k)))
	}
}

func TestValueEncoding(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -7, 0, 7, math.MaxInt64} {
		assert.Equal(t, v, decodeValue(encodeValue(v)))
	}
}
