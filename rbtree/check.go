// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"

	"github.com/bitmark-inc/ordmap/fault"
)

// Check - verify key order, parent links, the node count and the
// colour rules
func (tree *Tree[K, V]) Check() error {
	if red == colorOf(tree.root) {
		return fault.ErrRedRoot
	}
	if nil != tree.root && nil != tree.root.parent {
		return fmt.Errorf("%w: root: %v has a parent", fault.ErrParentLink, tree.root.key)
	}
	n, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: counted: %d  recorded: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// BlackHeight - black nodes on every path from the root to a nil child
func (tree *Tree[K, V]) BlackHeight() int {
	h := 0
	for p := tree.root; nil != p; p = p.left {
		if black == p.color {
			h += 1
		}
	}
	return h
}

// internal: returns node count and black height of the sub-tree
func (tree *Tree[K, V]) check(p *node[K, V], low *K, high *K) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(p.key, *low) <= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && tree.compare(p.key, *high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *high)
	}
	for _, c := range []*node[K, V]{p.left, p.right} {
		if nil == c {
			continue
		}
		if p != c.parent {
			return 0, 0, fmt.Errorf("%w: key: %v  child: %v", fault.ErrParentLink, p.key, c.key)
		}
		if red == p.color && red == c.color {
			return 0, 0, fmt.Errorf("%w: key: %v  child: %v", fault.ErrColorViolation, p.key, c.key)
		}
	}

	nl, bl, err := tree.check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	nr, br, err := tree.check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}
	if bl != br {
		return 0, 0, fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrBlackHeightMismatch, p.key, bl, br)
	}
	if black == p.color {
		bl += 1
	}
	return 1 + nl + nr, bl, nil
}
