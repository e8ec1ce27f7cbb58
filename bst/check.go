// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/ordmap/fault"
)

// Check - verify key order and the node count
//
// equal keys may appear on either side of a node
func (tree *Tree[K, V]) Check() error {
	n, err := tree.checkOrder(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  recorded: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: all keys of p must be within [low, high], nil means unbounded
func (tree *Tree[K, V]) checkOrder(p *node[K, V], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && tree.compare(p.key, *low) < 0 {
		return 0, fmt.Errorf("%w: key: %v  below: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) > 0 {
		return 0, fmt.Errorf("%w: key: %v  above: %v", fault.ErrOrderViolation, p.key, *high)
	}
	nl, err := tree.checkOrder(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkOrder(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}
	return 1 + nl + nr, nil
}
