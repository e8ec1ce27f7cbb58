// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/ordmap/fault"
)

// Check - verify key order, recorded heights and sizes, and the
// height balance of every node
func (tree *Tree[K, V]) Check() error {
	if err := tree.check(tree.root, nil, nil); nil != err {
		return err
	}
	if n := tree.root.getNodes(); n != tree.count {
		return fmt.Errorf("%w: root: %d  tree: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, keys of p must be strictly between
// low and high, nil means unbounded
func (tree *Tree[K, V]) check(p *node[K, V], low *K, high *K) error {
	if nil == p {
		return nil
	}
	if nil != low && tree.compare(p.key, *low) <= 0 {
		return fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *high)
	}
	if err := tree.check(p.left, low, &p.key); nil != err {
		return err
	}
	if err := tree.check(p.right, &p.key, high); nil != err {
		return err
	}

	hl := p.left.getHeight()
	hr := p.right.getHeight()
	if h := 1 + max(hl, hr); h != p.height {
		return fmt.Errorf("%w: key: %v  height: %d  expected: %d", fault.ErrTreeUnbalanced, p.key, p.height, h)
	}
	if hl-hr > 1 || hr-hl > 1 {
		return fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrTreeUnbalanced, p.key, hl, hr)
	}
	if n := 1 + p.left.getNodes() + p.right.getNodes(); n != p.nodes {
		return fmt.Errorf("%w: key: %v  nodes: %d  expected: %d", fault.ErrCountMismatch, p.key, p.nodes, n)
	}
	return nil
}
