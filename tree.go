package treeset

// Tree is an ordered set of unique keys. The zero value is not usable;
// construct with NewTree.
type Tree struct {
	compare Compare
	root    *Node
	size    int
}

// Len returns the number of keys currently held.
func (tree *Tree) Len() (numberOfKeys int) {
	numberOfKeys = tree.size
	return
}

// Find returns the node holding key, if present. A comparator failure is
// returned as err with found == false.
func (tree *Tree) Find(key Key) (node *Node, found bool, err error) {
	walk := tree.root

	for nil != walk {
		result, cmpErr := tree.compare(key, walk.key)
		if nil != cmpErr {
			err = cmpErr
			return
		}
		if result < 0 {
			walk = walk.left
		} else if result > 0 {
			walk = walk.right
		} else {
			node = walk
			found = true
			return
		}
	}

	err = nil
	return
}

// First returns the node holding the smallest key, or nil when empty.
func (tree *Tree) First() (node *Node) {
	node = tree.root
	if nil == node {
		return
	}
	for nil != node.left {
		node = node.left
	}
	return
}

// Last returns the node holding the largest key, or nil when empty.
func (tree *Tree) Last() (node *Node) {
	node = tree.root
	if nil == node {
		return
	}
	for nil != node.right {
		node = node.right
	}
	return
}

// findNearest descends toward key and reports either the exact node
// (found == true, nearest holds it) or the node a new leaf for key would
// attach under, along with the side it would attach on.
func (tree *Tree) findNearest(key Key) (nearest *Node, lessThan bool, found bool, err error) {
	walk := tree.root

	for nil != walk {
		nearest = walk
		result, cmpErr := tree.compare(key, walk.key)
		if nil != cmpErr {
			err = cmpErr
			return
		}
		if result < 0 {
			walk = walk.left
			lessThan = true
		} else if result > 0 {
			walk = walk.right
			lessThan = false
		} else {
			found = true
			return
		}
	}

	err = nil
	return
}

// setLeftChild links child (which may be nil) as parent's left child,
// updating the child's parent pointer and relation in the same step.
func setLeftChild(parent *Node, child *Node) {
	if nil != child {
		child.parent = parent
		child.rel = lessThanParent
	}
	parent.left = child
}

// setRightChild is the mirror of setLeftChild.
func setRightChild(parent *Node, child *Node) {
	if nil != child {
		child.parent = parent
		child.rel = greaterThanParent
	}
	parent.right = child
}

func setChild(parent *Node, child *Node, lessThan bool) {
	if lessThan {
		setLeftChild(parent, child)
	} else {
		setRightChild(parent, child)
	}
}

// nextLargestParent ascends from node to the first ancestor reached from
// the smaller side, i.e. the in-order successor among ancestors. Returns
// nil when node lies on the rightmost spine.
func nextLargestParent(node *Node) (next *Node) {
	next = node.parent
	for nil != next {
		if node.isLessThanParent() {
			return
		}
		node = next
		next = node.parent
	}
	return
}

// successorWithin returns the leftmost node of node's right subtree, or
// nil when node has no right child. By the no-right-only-child invariant
// the returned node is always childless.
func successorWithin(node *Node) (next *Node) {
	next = node.right
	if nil == next {
		return
	}
	for nil != next.left {
		next = next.left
	}
	return
}

// swapNodes exchanges the structural identities of first and second:
// children, parent links, color and relation all cross over while each
// node keeps its own key. Works when one is the other's child. Retained
// handles follow their keys to the new positions.
func swapNodes(first *Node, second *Node) {
	node1 := first.left
	node2 := second.left
	if nil != node1 {
		node1.parent = second
	}
	if nil != node2 {
		node2.parent = first
	}
	first.left = node2
	second.left = node1

	node1 = first.right
	node2 = second.right
	if nil != node1 {
		node1.parent = second
	}
	if nil != node2 {
		node2.parent = first
	}
	first.right = node2
	second.right = node1

	node1 = first.parent
	node2 = second.parent
	if nil != node1 {
		node1.setChildSlot(first.isLessThanParent(), second)
	}
	if nil != node2 {
		node2.setChildSlot(second.isLessThanParent(), first)
	}
	first.parent = node2
	second.parent = node1

	first.color, second.color = second.color, first.color
	first.rel, second.rel = second.rel, first.rel
}
