// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordmap/bst"
	"github.com/bitmark-inc/ordmap/bst/mocks"
	"github.com/bitmark-inc/ordmap/rbtree"
)

var scenarioKeys = []int{16, 6, 64, 4, 7, 23, 87, 5, 44, 71, 92}

func makeScenario(chooser bst.Chooser) *rbtree.Tree[int, string] {
	tree := rbtree.New[int, string](chooser)
	for _, k := range scenarioKeys {
		tree.Insert(k, "first")
	}
	return tree
}

func keys(tree *rbtree.Tree[int, string], order bst.Order) []int {
	result := []int{}
	tree.Traverse(order, func(key int, _ *string) {
		result = append(result, key)
	})
	return result
}

func TestScenario(t *testing.T) {
	tree := makeScenario(nil)
	require.NoError(t, tree.Check())

	assert.Equal(t, []int{4, 5, 6, 7, 16, 23, 44, 64, 71, 87, 92}, keys(tree, bst.InOrder), "in-order")
	assert.Equal(t, []int{16, 6, 4, 5, 7, 64, 23, 44, 87, 71, 92}, keys(tree, bst.PreOrder), "pre-order")
	assert.Equal(t, 11, tree.Count())
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, 2, tree.BlackHeight())

	added := tree.Insert(92, "second")
	assert.False(t, added, "92 already present")
	assert.Equal(t, 11, tree.Count())
	require.NoError(t, tree.Check())

	tree.Traverse(bst.InOrder, func(key int, value *string) {
		if 92 == key {
			assert.Equal(t, "second", *value, "key: %d", key)
		} else {
			assert.Equal(t, "first", *value, "key: %d", key)
		}
	})
}

func TestDeleteRootUsesSuccessor(t *testing.T) {
	tree := makeScenario(bst.Successor)

	require.True(t, tree.Delete(16))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{23, 6, 4, 5, 7, 64, 44, 87, 71, 92}, keys(tree, bst.PreOrder))
	assert.Equal(t, 10, tree.Count())
}

func TestDeleteRootUsesPredecessor(t *testing.T) {
	tree := makeScenario(bst.Predecessor)

	require.True(t, tree.Delete(16))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{4, 5, 6, 7, 23, 44, 64, 71, 87, 92}, keys(tree, bst.InOrder))
	assert.Equal(t, 7, keys(tree, bst.PreOrder)[0], "predecessor moved to the root")
}

func TestDeleteConsultsChooserOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	chooser := mocks.NewMockChooser(ctl)
	chooser.EXPECT().UseSuccessor().Return(false).Times(1)

	tree := makeScenario(chooser)

	// leaf and single child deletions never ask
	require.True(t, tree.Delete(5))
	require.True(t, tree.Delete(92))

	require.True(t, tree.Delete(64))
	require.NoError(t, tree.Check())
	assert.Equal(t, []int{4, 6, 7, 16, 23, 44, 71, 87}, keys(tree, bst.InOrder))
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	tree := makeScenario(nil)
	before := keys(tree, bst.PreOrder)

	assert.False(t, tree.Delete(1000))
	assert.False(t, tree.Delete(-3))
	assert.Equal(t, before, keys(tree, bst.PreOrder))
	assert.Equal(t, 11, tree.Count())

	empty := rbtree.New[int, string](nil)
	assert.False(t, empty.Delete(1))
	assert.True(t, empty.IsEmpty())
}

func TestDeleteAscendingEmptiesTree(t *testing.T) {
	tree := makeScenario(bst.NewAlternate())

	sorted := keys(tree, bst.InOrder)
	for _, k := range sorted {
		require.True(t, tree.Delete(k), "key: %d", k)
		require.NoError(t, tree.Check(), "after delete: %d", k)
	}
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.BlackHeight())
}

func TestRandomOperations(t *testing.T) {
	choosers := map[string]bst.Chooser{
		"successor":   bst.Successor,
		"predecessor": bst.Predecessor,
		"alternate":   bst.NewAlternate(),
		"random":      bst.NewRandom(99),
	}

	for name, chooser := range choosers {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(7, 7))
			tree := rbtree.New[int, int](chooser)
			shadow := make(map[int]int)

			for i := 0; i < 4000; i += 1 {
				k := r.IntN(500)
				if r.IntN(100) < 40 {
					_, present := shadow[k]
					delete(shadow, k)
					require.Equal(t, present, tree.Delete(k), "delete: %d", k)
				} else {
					shadow[k] = i
					tree.Insert(k, i)
				}
				require.NoError(t, tree.Check(), "operation: %d", i)
				require.Equal(t, len(shadow), tree.Count())
			}

			limit := 2 * math.Log2(float64(tree.Count()+1))
			assert.LessOrEqual(t, float64(tree.Height()), limit, "height")

			previous := -1
			for key, value := range tree.All() {
				assert.Less(t, previous, key)
				assert.Equal(t, shadow[key], value, "key: %d", key)
				previous = key
			}
		})
	}
}

func TestSearchAndNeighbours(t *testing.T) {
	tree := makeScenario(nil)

	assert.True(t, tree.Search(44))
	assert.False(t, tree.Search(45))

	v, ok := tree.Get(71)
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = tree.Get(72)
	assert.False(t, ok)

	k, _, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 4, k)

	k, _, ok = tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 92, k)

	k, _, ok = tree.Successor(44)
	assert.True(t, ok)
	assert.Equal(t, 64, k)

	k, _, ok = tree.Predecessor(16)
	assert.True(t, ok)
	assert.Equal(t, 7, k)

	_, _, ok = tree.Successor(92)
	assert.False(t, ok)

	_, _, ok = tree.Predecessor(4)
	assert.False(t, ok)
}

func TestBackward(t *testing.T) {
	tree := makeScenario(nil)

	result := []int{}
	for key := range tree.Backward() {
		result = append(result, key)
		if 16 == key {
			break
		}
	}
	assert.Equal(t, []int{92, 87, 71, 64, 44, 23, 16}, result)
}

func TestPostOrder(t *testing.T) {
	tree := makeScenario(nil)
	assert.Equal(t, []int{5, 4, 7, 6, 44, 23, 71, 92, 87, 64, 16}, keys(tree, bst.PostOrder))
}

func TestReference(t *testing.T) {
	tree := rbtree.New[string, int](nil)

	p := tree.Reference("hits")
	assert.Equal(t, 0, *p)
	*p += 1
	*tree.Reference("hits") += 1

	v, ok := tree.Get("hits")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tree.Count())
	assert.NoError(t, tree.Check())
}

func TestClear(t *testing.T) {
	tree := makeScenario(nil)
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Empty(t, keys(tree, bst.InOrder))

	for _, k := range scenarioKeys {
		tree.Insert(k, "again")
	}
	assert.NoError(t, tree.Check())
	assert.Equal(t, 11, tree.Count())
}

func TestCustomCompare(t *testing.T) {
	descending := func(a, b int) int {
		return b - a
	}
	tree := rbtree.NewFunc[int, string](descending, nil)
	for _, k := range scenarioKeys {
		tree.Insert(k, "")
	}
	require.NoError(t, tree.Check())

	k, _, _ := tree.Min()
	assert.Equal(t, 92, k)
	assert.Equal(t, []int{92, 87, 71, 64, 44, 23, 16, 7, 6, 5, 4}, keys(tree, bst.InOrder))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", rbtree.Color(0).String())
	assert.Equal(t, "black", rbtree.Color(1).String())
}
