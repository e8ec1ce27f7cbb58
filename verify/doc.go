// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - drive a map with a random workload and compare it
// against an independent ordered store
//
// the reference store is the goleveldb in-memory skip list, keys are
// encoded so that their byte order matches the integer order
package verify
