// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"strings"

	"github.com/bitmark-inc/ordmap/fault"
)

// Variant - the balancing scheme of a map
type Variant int

// the available balancing schemes
const (
	AVL      Variant = iota
	RedBlack Variant = iota
)

// names used in configuration files
const (
	avlName      = "avl"
	redBlackName = "red-black"
)

// String - name of the variant
func (v Variant) String() string {
	switch v {
	case AVL:
		return avlName
	case RedBlack:
		return redBlackName
	default:
		return "*unknown*"
	}
}

// ParseVariant - convert a configuration name to a variant
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case avlName:
		return AVL, nil
	case redBlackName, "redblack", "rb":
		return RedBlack, nil
	default:
		return AVL, fault.ErrInvalidVariant
	}
}
