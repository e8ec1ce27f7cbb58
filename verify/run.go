// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordmap"
)

// at most one progress line per interval
const progressInterval = 5 * time.Second

// Report - counters from a completed run
type Report struct {
	Inserts     int           `json:"inserts"`
	Updates     int           `json:"updates"`
	Deletes     int           `json:"deletes"`
	Misses      int           `json:"misses"` // deletes of absent keys
	Comparisons int           `json:"comparisons"`
	Size        int           `json:"size"`
	Height      int           `json:"height"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Run - apply a random workload to m, mirroring every operation into
// a reference store
//
// the tree invariants are checked after every operation and the full
// contents are compared at the configured interval and at the end
func Run(log *logger.L, m *ordmap.Map[int64, int64], w Workload, seed uint64) (*Report, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := w.Validate(); nil != err {
		return nil, err
	}

	log.Infof("start: variant: %s  workload: %+v  seed: %d", m.Variant(), w, seed)

	r := rand.New(rand.NewPCG(seed, ^seed))
	oracle := memdb.New(comparer.DefaultComparer, 0)
	report := &Report{}
	start := time.Now()
	progress := rate.NewLimiter(rate.Every(progressInterval), 1)
	progress.Allow() // the start line was just logged

	// keys straddle zero so the sign encoding is exercised
	offset := int64(w.KeySpace / 2)

	for i := 0; i < w.Operations; i += 1 {
		key := int64(r.IntN(w.KeySpace)) - offset
		encoded := encodeKey(key)

		if r.IntN(100) < w.DeletePercent {
			deleted := m.Delete(key)
			present := nil == oracle.Delete(encoded)
			log.Debugf("%d: delete: %d  deleted: %t", i, key, deleted)
			if deleted != present {
				log.Errorf("%d: delete: %d  map: %t  reference: %t", i, key, deleted, present)
				return report, fmt.Errorf("%w: operation: %d  delete: %d", fault.ErrOracleMismatch, i, key)
			}
			if deleted {
				report.Deletes += 1
			} else {
				report.Misses += 1
			}
		} else {
			value := r.Int64()
			present := oracle.Contains(encoded)
			added := m.Insert(key, value)
			log.Debugf("%d: insert: %d  added: %t", i, key, added)
			if added == present {
				log.Errorf("%d: insert: %d  map added: %t  reference present: %t", i, key, added, present)
				return report, fmt.Errorf("%w: operation: %d  insert: %d", fault.ErrOracleMismatch, i, key)
			}
			if err := oracle.Put(encoded, encodeValue(value)); nil != err {
				return report, err
			}
			if added {
				report.Inserts += 1
			} else {
				report.Updates += 1
			}
		}

		if err := m.Check(); nil != err {
			fault.Criticalf("operation: %d  key: %d  check failed: %s", i, key, err)
			return report, err
		}

		if w.CompareEvery > 0 && 0 == (i+1)%w.CompareEvery {
			if err := compare(log, m, oracle); nil != err {
				return report, err
			}
			report.Comparisons += 1
		}

		if progress.Allow() {
			log.Infof("%d of %d operations  size: %d  height: %d", i+1, w.Operations, m.Size(), m.Height())
		}
	}

	if err := compare(log, m, oracle); nil != err {
		return report, err
	}
	report.Comparisons += 1
	report.Size = m.Size()
	report.Height = m.Height()
	report.Elapsed = time.Since(start)

	log.Infof("finished: %+v", *report)
	return report, nil
}

// walk both stores in key order and report the first difference
func compare(log *logger.L, m *ordmap.Map[int64, int64], oracle *memdb.DB) error {
	if m.Size() != oracle.Len() {
		log.Errorf("size: map: %d  reference: %d", m.Size(), oracle.Len())
		return fmt.Errorf("%w: size: %d  expected: %d", fault.ErrOracleMismatch, m.Size(), oracle.Len())
	}

	it := oracle.NewIterator(nil)
	defer it.Release()

	n := 0
	for key, value := range m.All() {
		if !it.Next() {
			log.Errorf("[%d] key: %d  missing from reference", n, key)
			return fmt.Errorf("%w: extra key: %d", fault.ErrOracleMismatch, key)
		}
		if !bytes.Equal(encodeKey(key), it.Key()) {
			log.Errorf("[%d] key: %d  reference key: %d", n, key, decodeKey(it.Key()))
			return fmt.Errorf("%w: key: %d  expected: %d", fault.ErrOracleMismatch, key, decodeKey(it.Key()))
		}
		if expected := decodeValue(it.Value()); value != expected {
			log.Errorf("[%d] key: %d  value: %d  reference value: %d", n, key, value, expected)
			return fmt.Errorf("%w: key: %d  value: %d  expected: %d", fault.ErrOracleMismatch, key, value, expected)
		}
		n += 1
	}
	if it.Next() {
		k := decodeKey(it.Key())
		log.Errorf("[%d] reference key: %d  missing from map", n, k)
		return fmt.Errorf("%w: missing key: %d", fault.ErrOracleMismatch, k)
	}
	return it.Error()
}
