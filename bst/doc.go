// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree
//
// This is the structural base that the balanced trees follow: insert
// at a leaf, delete by splicing or by copying a replacement entry,
// min/max walks and the three depth first traversals.
//
// Unlike the balanced trees duplicate keys are kept, a key equal to
// an existing node goes to its left.  Delete removes one occurrence.
//
// Note: a tree is not thread safe, so either access only in a single
//       go routine or use a mutex to restrict access.
//
// The comparison function must define a total order, the tree does
// not guard against an inconsistent comparison.
package bst
