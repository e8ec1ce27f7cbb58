// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node records the height of its sub-tree (a leaf is 1, an
// empty sub-tree is 0) and the number of nodes in it, so besides the
// usual map operations a tree can return the item at an index and
// the index of a key.
//
// Insert with an existing key overwrites the value in place.  Delete
// of a node with two children copies the replacement item into that
// node, so a node does not keep a fixed key across deletions.
package avl
