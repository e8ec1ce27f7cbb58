// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"

	"github.com/bitmark-inc/ordmap/fault"
)

// Workload - shape of a random run
type Workload struct {
	Operations    int `gluamapper:"operations" json:"operations"`
	KeySpace      int `gluamapper:"key_space" json:"key_space"`
	DeletePercent int `gluamapper:"delete_percent" json:"delete_percent"`
	CompareEvery  int `gluamapper:"compare_every" json:"compare_every"` // 0 => only at the end
}

// Validate - check the workload limits
func (w Workload) Validate() error {
	if w.Operations <= 0 {
		return fmt.Errorf("%w: operations: %d", fault.ErrInvalidWorkload, w.Operations)
	}
	if w.KeySpace <= 0 {
		return fmt.Errorf("%w: key space: %d", fault.ErrInvalidWorkload, w.KeySpace)
	}
	if w.DeletePercent < 0 || w.DeletePercent > 100 {
		return fmt.Errorf("%w: delete percent: %d", fault.ErrInvalidWorkload, w.DeletePercent)
	}
	if w.CompareEvery < 0 {
		return fmt.Errorf("%w: compare every: %d", fault.ErrInvalidWorkload, w.CompareEvery)
	}
	return nil
}
