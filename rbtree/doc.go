// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The rules kept after every Insert and Delete:
//
//	1. every node is red or black
//	2. the root is black
//	3. an empty (nil) child counts as black
//	4. a red node has only black children
//	5. every path from a node down to a nil child passes the same
//	   number of black nodes
//
// The parent pointer is only used to walk upwards, children are
// owned by exactly one parent.
package rbtree
