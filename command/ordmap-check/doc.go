// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// ordmap-check - run a random workload against an ordered map and
// compare the result with a reference store
//
// usage: ordmap-check [--help] [--verbose] [--quiet] --config-file=FILE [command]
//
// the configuration file is Lua returning a table, see
// ordmap-check.conf.sample
package main
