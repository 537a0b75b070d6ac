package skeleton

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyed struct {
	key, id int
}

func compareKeyed(a, b keyed) int { return cmp.Compare(a.key, b.key) }

func inOrder[T any](t *rbt[T]) []T {
	var out []T
	for n := t.first(); n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// checkRedBlack verifies the colouring rules and returns the black height.
func checkRedBlack[T any](t *testing.T, n *rbtNode[T]) int {
	t.Helper()
	if n == nil {
		return 1
	}
	if n.red {
		assert.False(t, n.left != nil && n.left.red, "red node with red child")
		assert.False(t, n.right != nil && n.right.red, "red node with red child")
	}
	if n.left != nil {
		assert.Same(t, n, n.left.parent)
	}
	if n.right != nil {
		assert.Same(t, n, n.right.parent)
	}
	l, r := checkRedBlack(t, n.left), checkRedBlack(t, n.right)
	assert.Equal(t, l, r, "black heights differ")
	if n.red {
		return l
	}
	return l + 1
}

func TestRBTInsertRemove(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := newRBT(compareKeyed)
	nodes := make(map[int]*rbtNode[keyed])
	var keys []int
	for i := 0; i < 500; i++ {
		k := rng.Intn(100)
		keys = append(keys, k)
		nodes[i] = tree.insert(keyed{key: k, id: i})
	}
	require.Equal(t, 500, tree.len())
	assert.False(t, tree.root.red)
	checkRedBlack(t, tree.root)

	got := inOrder(tree)
	assert.True(t, slices.IsSortedFunc(got, compareKeyed))

	// equal keys keep insertion order
	last := make(map[int]int)
	for _, v := range got {
		if prev, ok := last[v.key]; ok {
			assert.Less(t, prev, v.id)
		}
		last[v.key] = v.id
	}

	for i := 0; i < 500; i += 2 {
		tree.removeNode(nodes[i])
	}
	assert.Equal(t, 250, tree.len())
	checkRedBlack(t, tree.root)

	got = inOrder(tree)
	require.Len(t, got, 250)
	for _, v := range got {
		assert.Equal(t, 1, v.id%2)
	}
	assert.True(t, slices.IsSortedFunc(got, compareKeyed))
}

func TestRBTPopFirst(t *testing.T) {
	tree := newRBT(cmp.Compare[int])
	for _, v := range []int{5, 3, 9, 1, 7} {
		tree.insert(v)
	}
	var got []int
	for {
		v, ok := tree.popFirst()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 5, 7, 9}, got)
	assert.Nil(t, tree.root)
	assert.Zero(t, tree.len())
}

func TestRBTLookups(t *testing.T) {
	tree := newRBT(cmp.Compare[int])
	for _, v := range []int{10, 20, 30, 40} {
		tree.insert(v)
	}

	value := func(n *rbtNode[int]) any {
		if n == nil {
			return nil
		}
		return n.value
	}
	assert.Equal(t, 20, value(tree.floor(25)))
	assert.Equal(t, 20, value(tree.floor(20)))
	assert.Nil(t, value(tree.floor(5)))
	assert.Equal(t, 30, value(tree.higher(20)))
	assert.Equal(t, 30, value(tree.higher(25)))
	assert.Equal(t, 10, value(tree.higher(5)))
	assert.Nil(t, value(tree.higher(40)))
}
