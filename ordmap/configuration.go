// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap

import (
	"cmp"

	"github.com/bitmark-inc/ordmap/bst"
)

// Configuration - selection of the tree to build
type Configuration struct {
	Variant     string `gluamapper:"variant" json:"variant"`
	Replacement string `gluamapper:"replacement" json:"replacement"`
	Seed        uint64 `gluamapper:"seed" json:"seed"`
}

// NewFromConfiguration - create an empty map as described by a
// configuration section
//
// an empty variant selects AVL and an empty replacement selects the
// successor
func NewFromConfiguration[K cmp.Ordered, V any](configuration *Configuration) (*Map[K, V], error) {
	variant := AVL
	if "" != configuration.Variant {
		v, err := ParseVariant(configuration.Variant)
		if nil != err {
			return nil, err
		}
		variant = v
	}

	chooser := bst.Successor
	if "" != configuration.Replacement {
		c, err := bst.NewChooser(configuration.Replacement, configuration.Seed)
		if nil != err {
			return nil, err
		}
		chooser = c
	}

	return New[K, V](variant, chooser)
}
