// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math/rand/v2"
	"strings"

	"github.com/bitmark-inc/ordmap/fault"
)

//go:generate mockgen -destination=mocks/chooser.go -package=mocks github.com/bitmark-inc/ordmap/bst Chooser

// Chooser - selects the entry that replaces a deleted node that has
// two children
//
// called once for each such deletion
type Chooser interface {
	UseSuccessor() bool // true: minimum of right sub-tree, false: maximum of left sub-tree
}

// replacement policy names for configuration files
const (
	SuccessorName   = "successor"
	PredecessorName = "predecessor"
	AlternateName   = "alternate"
	RandomName      = "random"
)

type fixed bool

func (f fixed) UseSuccessor() bool { return bool(f) }

// Successor - always replace with the in-order successor
var Successor Chooser = fixed(true)

// Predecessor - always replace with the in-order predecessor
var Predecessor Chooser = fixed(false)

// alternate between the two, starting with successor
type alternate struct {
	next bool
}

// NewAlternate - flip between successor and predecessor on each call
func NewAlternate() Chooser {
	return &alternate{next: true}
}

func (a *alternate) UseSuccessor() bool {
	s := a.next
	a.next = !a.next
	return s
}

type random struct {
	r *rand.Rand
}

// NewRandom - pick successor or predecessor from a seeded source
//
// repeated deletions then do not always shorten the same side
func NewRandom(seed uint64) Chooser {
	return &random{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *random) UseSuccessor() bool {
	return 1 == r.r.IntN(2)
}

// NewChooser - create a chooser from its configuration name
//
// an empty name selects the successor policy
func NewChooser(name string, seed uint64) (Chooser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SuccessorName:
		return Successor, nil
	case PredecessorName:
		return Predecessor, nil
	case AlternateName:
		return NewAlternate(), nil
	case RandomName:
		return NewRandom(seed), nil
	default:
		return nil, fault.ErrInvalidReplacement
	}
}
