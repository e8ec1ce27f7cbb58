// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Select - the item at a zero based in-order index
func (tree *Tree[K, V]) Select(index int) (K, V, bool) {
	if index < 0 || index >= tree.Count() {
		return entry[K, V](nil)
	}
	return entry(get(index, tree.root))
}

func get[K, V any](index int, p *node[K, V]) *node[K, V] {
	for nil != p {
		nl := p.left.getNodes()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}

func entry[K, V any](p *node[K, V]) (K, V, bool) {
	if nil == p {
		var k K
		var v V
		return k, v, false
	}
	return p.key, p.value, true
}
