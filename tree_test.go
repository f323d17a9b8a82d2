package treeset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireValid(t *testing.T, tree *Tree) {
	t.Helper()
	require.NoError(t, tree.Validate())
}

func inorderKeys(t *testing.T, tree *Tree) (keys []int) {
	t.Helper()
	keys = []int{}
	node := tree.First()
	if nil == node {
		return
	}
	for {
		keys = append(keys, node.Key().(int))
		next := node.Next()
		if next == node {
			return
		}
		node = next
	}
}

func buildTree(t *testing.T, keys []int) (tree *Tree) {
	t.Helper()
	tree = NewTree(CompareInt)
	for _, key := range keys {
		_, inserted, err := tree.Add(key)
		require.NoError(t, err)
		require.True(t, inserted)
	}
	return
}

func mustFind(t *testing.T, tree *Tree, key int) (node *Node) {
	t.Helper()
	node, found, err := tree.Find(key)
	require.NoError(t, err)
	require.True(t, found)
	return
}

func TestTreeEmpty(t *testing.T) {
	tree := NewTree(CompareInt)

	require.Equal(t, 0, tree.Len())
	require.Nil(t, tree.First())
	require.Nil(t, tree.Last())

	node, found, err := tree.Find(7)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, node)

	removed, err := tree.Remove(7)
	require.NoError(t, err)
	require.False(t, removed)

	requireValid(t, tree)
}

func TestTreeSevenKeyScenario(t *testing.T) {
	tree := buildTree(t, []int{10, 20, 5, 15, 25, 3, 8})

	require.Equal(t, 7, tree.Len())
	require.True(t, tree.root.isBlack())
	require.Equal(t, []int{3, 5, 8, 10, 15, 20, 25}, inorderKeys(t, tree))
	requireValid(t, tree)

	removed, err := tree.Remove(10)
	require.NoError(t, err)
	require.True(t, removed)

	require.Equal(t, 6, tree.Len())
	require.Equal(t, []int{3, 5, 8, 15, 20, 25}, inorderKeys(t, tree))
	requireValid(t, tree)

	_, found, err := tree.Find(10)
	require.NoError(t, err)
	require.False(t, found)
}

func TestTreeRemoveAllAscending(t *testing.T) {
	keys := []int{10, 20, 5, 15, 25, 3, 8}
	tree := buildTree(t, keys)

	for i, key := range []int{3, 5, 8, 10, 15, 20, 25} {
		removed, err := tree.Remove(key)
		require.NoError(t, err)
		require.True(t, removed)
		require.Equal(t, len(keys)-1-i, tree.Len())
		requireValid(t, tree)
	}
	require.Nil(t, tree.First())
}

func TestTreeDuplicateAdd(t *testing.T) {
	tree := NewTree(CompareInt)

	first, inserted, err := tree.Add(42)
	require.NoError(t, err)
	require.True(t, inserted)

	second, inserted, err := tree.Add(42)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Same(t, first, second)
	require.Equal(t, 1, tree.Len())
	requireValid(t, tree)
}

func TestTreeRoundTrip(t *testing.T) {
	tree := buildTree(t, []int{4, 2, 6, 1, 3, 5, 7})

	node := mustFind(t, tree, 5)
	require.Equal(t, 5, node.Key().(int))

	removed, err := tree.Remove(5)
	require.NoError(t, err)
	require.True(t, removed)

	_, found, err := tree.Find(5)
	require.NoError(t, err)
	require.False(t, found)
	requireValid(t, tree)
}

func TestNodeNavigationSentinels(t *testing.T) {
	tree := buildTree(t, []int{1})
	only := tree.First()
	require.Same(t, only, only.Next())
	require.Same(t, only, only.Prev())

	tree = buildTree(t, []int{10, 20, 5, 15, 25, 3, 8})
	first := tree.First()
	last := tree.Last()
	require.Equal(t, 3, first.Key().(int))
	require.Equal(t, 25, last.Key().(int))
	require.Same(t, first, first.Prev())
	require.Same(t, last, last.Next())

	// Walk back down from the top and expect the reverse order.
	reverse := []int{}
	for node := last; ; {
		reverse = append(reverse, node.Key().(int))
		prev := node.Prev()
		if prev == node {
			break
		}
		node = prev
	}
	require.Equal(t, []int{25, 20, 15, 10, 8, 5, 3}, reverse)
}

func TestNodeStructureAccessors(t *testing.T) {
	tree := buildTree(t, []int{10, 20, 5, 15, 25, 3, 8})

	require.Nil(t, tree.root.Parent())
	for node := tree.First(); ; {
		if nil != node.Left() {
			require.Same(t, node, node.Left().Parent())
		}
		if nil != node.Right() {
			require.Same(t, node, node.Right().Parent())
		}
		next := node.Next()
		if next == node {
			break
		}
		node = next
	}
}

func TestRemoveNodeReturnsNeighborOfVacatedSlot(t *testing.T) {
	// Removing the smallest key vacates its own slot; the parent chain
	// yields the next key regardless of tree shape.
	tree := buildTree(t, []int{10, 20, 5, 15, 25, 3, 8})
	next := tree.RemoveNode(mustFind(t, tree, 3))
	require.NotNil(t, next)
	require.Equal(t, 5, next.Key().(int))
	requireValid(t, tree)

	// Removing the largest key vacates the rightmost slot.
	next = tree.RemoveNode(mustFind(t, tree, 25))
	require.Nil(t, next)
	requireValid(t, tree)

	// Removing a node that has a right subtree swaps the successor in
	// first, so the vacated slot is the successor's old one and its
	// in-order neighbor is the key after the successor.
	tree = buildTree(t, []int{10, 20, 5, 15, 25, 3, 8})
	node := mustFind(t, tree, 10)
	require.NotNil(t, node.Right())
	next = tree.RemoveNode(node)
	require.NotNil(t, next)
	require.Equal(t, 20, next.Key().(int))
	requireValid(t, tree)
}

func TestRemoveKeepsSuccessorHandleValid(t *testing.T) {
	tree := buildTree(t, []int{10, 20, 5, 15, 25})

	// Pick any node with a right subtree; its Next() is the node the
	// removal will relink into its place.
	var victim *Node
	for node := tree.First(); ; {
		if nil != node.Right() {
			victim = node
			break
		}
		next := node.Next()
		require.NotSame(t, node, next)
		node = next
	}

	successor := victim.Next()
	successorKey := successor.Key().(int)

	tree.RemoveNode(victim)
	requireValid(t, tree)

	found := mustFind(t, tree, successorKey)
	require.Same(t, successor, found)
	require.Equal(t, successorKey, successor.Key().(int))
}

func TestTreeFirstLast(t *testing.T) {
	tree := buildTree(t, []int{8, 3, 11, 30, 2})
	require.Equal(t, 2, tree.First().Key().(int))
	require.Equal(t, 30, tree.Last().Key().(int))

	removed, err := tree.Remove(2)
	require.NoError(t, err)
	require.True(t, removed)
	require.Equal(t, 3, tree.First().Key().(int))
}

func TestTreeComparatorErrorPropagation(t *testing.T) {
	tree := buildTree(t, []int{1, 2, 3})

	_, _, err := tree.Add("not an int")
	require.Error(t, err)
	require.Equal(t, 3, tree.Len())

	_, _, err = tree.Find("not an int")
	require.Error(t, err)

	removed, err := tree.Remove("not an int")
	require.Error(t, err)
	require.False(t, removed)
	require.Equal(t, 3, tree.Len())
	requireValid(t, tree)
}

func TestCompareFunctions(t *testing.T) {
	result, err := CompareInt(1, 2)
	require.NoError(t, err)
	require.Equal(t, -1, result)
	result, err = CompareInt(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, result)
	result, err = CompareInt(3, 2)
	require.NoError(t, err)
	require.Equal(t, 1, result)
	_, err = CompareInt("x", 2)
	require.Error(t, err)

	result, err = CompareUint64(uint64(7), uint64(9))
	require.NoError(t, err)
	require.Equal(t, -1, result)
	_, err = CompareUint64(uint64(7), 9)
	require.Error(t, err)

	result, err = CompareString("abc", "abd")
	require.NoError(t, err)
	require.Equal(t, -1, result)
	_, err = CompareString("abc", 1)
	require.Error(t, err)
}

func TestTreeStringKeys(t *testing.T) {
	tree := NewTree(CompareString)
	for _, key := range []string{"pear", "apple", "quince", "fig", "mango"} {
		_, inserted, err := tree.Add(key)
		require.NoError(t, err)
		require.True(t, inserted)
	}
	requireValid(t, tree)

	require.Equal(t, "apple", tree.First().Key().(string))
	require.Equal(t, "quince", tree.Last().Key().(string))

	removed, err := tree.Remove("fig")
	require.NoError(t, err)
	require.True(t, removed)
	requireValid(t, tree)
	require.Equal(t, 4, tree.Len())
}

func TestTreeDump(t *testing.T) {
	tree := buildTree(t, []int{2, 1, 3})
	require.NoError(t, tree.Dump())
}
