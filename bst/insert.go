// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - attach a new leaf holding key and value
//
// an existing equal key is not replaced, the new node goes to its left
func (tree *Tree[K, V]) Insert(key K, value V) {
	n := &node[K, V]{
		key:   key,
		value: value,
	}
	tree.count += 1

	if nil == tree.root {
		tree.root = n
		return
	}

	p := tree.root
	for {
		if tree.compare(p.key, key) >= 0 { // p.key >= key
			if nil == p.left {
				p.left = n
				return
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = n
				return
			}
			p = p.right
		}
	}
}
