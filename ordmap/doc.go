// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordmap - an ordered map backed by a self balancing tree
//
// the balancing scheme is selected when the map is created, either
// height balancing (AVL) or colour balancing (red-black), both keep
// the height logarithmic in the number of keys
//
// a Map is not safe for concurrent use, callers must serialise access
package ordmap
