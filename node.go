package treeset

type nodeColor uint8

const (
	black nodeColor = iota
	red
)

// nodeRelation records which side of its parent a node occupies. It is
// maintained on every structural edit so navigation and rebalancing never
// need to re-derive order from key comparisons. The field is meaningless
// on the root.
type nodeRelation uint8

const (
	greaterThanParent nodeRelation = iota
	lessThanParent
)

func relationFor(lessThan bool) (rel nodeRelation) {
	if lessThan {
		rel = lessThanParent
	} else {
		rel = greaterThanParent
	}
	return
}

// Node is a handle to one key in a Tree. Handles remain valid until the
// key they were obtained for is removed; rebalancing relocates nodes but
// never invalidates them and never copies keys between nodes.
type Node struct {
	left   *Node
	right  *Node
	parent *Node // nil only for the root
	color  nodeColor
	rel    nodeRelation
	key    Key
}

// Key returns the key this node holds. Keys are immutable; changing a key
// requires removing it and adding the new one.
func (node *Node) Key() (key Key) {
	key = node.key
	return
}

func (node *Node) Parent() (parent *Node) {
	parent = node.parent
	return
}

func (node *Node) Left() (left *Node) {
	left = node.left
	return
}

func (node *Node) Right() (right *Node) {
	right = node.right
	return
}

// Prev returns the node holding the next smaller key. When no such node
// exists (the receiver is the smallest), Prev returns the receiver itself;
// callers iterating downward stop when Prev() == node.
func (node *Node) Prev() (prev *Node) {
	if nil != node.left {
		prev = node.left
		for nil != prev.right {
			prev = prev.right
		}
		return
	}

	// No left child, so ascend while still on the smaller side.
	walk := node
	for nil != walk.parent {
		if !walk.isLessThanParent() {
			prev = walk.parent
			return
		}
		walk = walk.parent
	}
	prev = node
	return
}

// Next returns the node holding the next larger key. When no such node
// exists (the receiver is the largest), Next returns the receiver itself;
// callers iterating upward stop when Next() == node.
func (node *Node) Next() (next *Node) {
	if nil != node.right {
		next = node.right
		for nil != next.left {
			next = next.left
		}
		return
	}

	// No right child, so ascend while still on the larger side.
	walk := node
	for nil != walk.parent {
		if walk.isLessThanParent() {
			next = walk.parent
			return
		}
		walk = walk.parent
	}
	next = node
	return
}

func (node *Node) isRed() (isRed bool) {
	isRed = (red == node.color)
	return
}

func (node *Node) isBlack() (isBlack bool) {
	isBlack = (black == node.color)
	return
}

func (node *Node) isLessThanParent() (isLess bool) {
	isLess = (lessThanParent == node.rel)
	return
}

func (node *Node) getChild(lessThan bool) (child *Node) {
	if lessThan {
		child = node.left
	} else {
		child = node.right
	}
	return
}

// setChildSlot overwrites one child pointer without touching the child's
// parent or relation fields. Rebalancing uses it in the few places where
// those fields are fixed up separately.
func (node *Node) setChildSlot(lessThan bool, child *Node) {
	if lessThan {
		node.left = child
	} else {
		node.right = child
	}
}
