// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordmap/bst"
	"github.com/bitmark-inc/ordmap/fault"
	"github.com/bitmark-inc/ordmap/ordmap"
	"github.com/bitmark-inc/ordmap/verify"
)

func TestMain(m *testing.M) {
	directory, err := os.MkdirTemp("", "verify-test")
	if nil != err {
		panic(fmt.Sprintf("temporary directory failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: directory,
		File:      "verify.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(directory)
	os.Exit(rc)
}

func newMap(t *testing.T, variant ordmap.Variant, chooser bst.Chooser) *ordmap.Map[int64, int64] {
	m, err := ordmap.New[int64, int64](variant, chooser)
	require.NoError(t, err)
	return m
}

func TestRun(t *testing.T) {
	log := logger.New("verify")

	workload := verify.Workload{
		Operations:    5000,
		KeySpace:      300,
		DeletePercent: 45,
		CompareEvery:  250,
	}

	for _, variant := range []ordmap.Variant{ordmap.AVL, ordmap.RedBlack} {
		for _, chooser := range []bst.Chooser{bst.Successor, bst.Predecessor, bst.NewAlternate(), bst.NewRandom(3)} {
			m := newMap(t, variant, chooser)

			report, err := verify.Run(log, m, workload, 1234)
			require.NoError(t, err, "variant: %s", variant)

			assert.Equal(t, workload.Operations, report.Inserts+report.Updates+report.Deletes+report.Misses)
			assert.Equal(t, report.Inserts-report.Deletes, report.Size)
			assert.Equal(t, m.Size(), report.Size)
			assert.Equal(t, m.Height(), report.Height)
			assert.Equal(t, workload.Operations/workload.CompareEvery+1, report.Comparisons)
			assert.Greater(t, report.Deletes, 0)
			assert.Greater(t, report.Updates, 0)
		}
	}
}

func TestRunIsRepeatable(t *testing.T) {
	log := logger.New("verify")
	workload := verify.Workload{
		Operations:    800,
		KeySpace:      50,
		DeletePercent: 30,
	}

	first, err := verify.Run(log, newMap(t, ordmap.RedBlack, nil), workload, 77)
	require.NoError(t, err)
	second, err := verify.Run(log, newMap(t, ordmap.AVL, nil), workload, 77)
	require.NoError(t, err)

	assert.Equal(t, first.Inserts, second.Inserts)
	assert.Equal(t, first.Updates, second.Updates)
	assert.Equal(t, first.Deletes, second.Deletes)
	assert.Equal(t, first.Misses, second.Misses)
	assert.Equal(t, first.Size, second.Size)
	assert.Equal(t, 1, first.Comparisons)
}

func TestRunDetectsDivergence(t *testing.T) {
	log := logger.New("verify")
	workload := verify.Workload{
		Operations:    100,
		KeySpace:      10,
		DeletePercent: 50,
	}

	// keys the reference store has never seen
	m := newMap(t, ordmap.AVL, nil)
	for k := int64(-5); k < 5; k += 1 {
		m.Insert(k, k)
	}

	_, err := verify.Run(log, m, workload, 9)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrOracleMismatch), "error: %s", err)
	assert.True(t, fault.IsErrProcess(err))
}

func TestRunRejectsBadArguments(t *testing.T) {
	m := newMap(t, ordmap.AVL, nil)
	good := verify.Workload{Operations: 1, KeySpace: 1}

	_, err := verify.Run(nil, m, good, 0)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)

	log := logger.New("verify")
	for _, w := range []verify.Workload{
		{Operations: 0, KeySpace: 1},
		{Operations: 1, KeySpace: 0},
		{Operations: 1, KeySpace: 1, DeletePercent: 101},
		{Operations: 1, KeySpace: 1, DeletePercent: -1},
		{Operations: 1, KeySpace: 1, CompareEvery: -5},
	} {
		_, err := verify.Run(log, m, w, 0)
		assert.True(t, errors.Is(err, fault.ErrInvalidWorkload), "workload: %+v", w)
	}
	assert.True(t, m.IsEmpty())
}
