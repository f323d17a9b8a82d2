package treeset

// A splitCase names the local topology around a detached node that the
// insertion walk is about to re-attach: the parent's color, the node's
// relation, and (for black parents on the greater side) the color of the
// parent's left child. Exactly one case applies at every step.
type splitCase uint8

const (
	splitTwoLeft     splitCase = iota // black parent, lesser side
	splitTwoRight                     // black parent, greater side, no red left sibling
	splitThreeRight                   // black parent, greater side, red left sibling
	splitThreeLeft                    // red parent, lesser side
	splitThreeMiddle                  // red parent, greater side
)

func classifySplit(node *Node) (chosen splitCase) {
	parent := node.parent
	if nil == parent {
		panic("treeset: insert walk reached a detached root")
	}

	if parent.isBlack() {
		if node.isLessThanParent() {
			chosen = splitTwoLeft
		} else {
			left := parent.left
			if nil == left || left.isBlack() {
				chosen = splitTwoRight
			} else {
				chosen = splitThreeRight
			}
		}
	} else {
		if node.isLessThanParent() {
			chosen = splitThreeLeft
		} else {
			chosen = splitThreeMiddle
		}
	}
	return
}

// Add inserts key. If an equal key already exists its node is returned
// with inserted == false and the tree is left untouched; duplicate
// insertion is not an error. On success the new key's node is returned.
func (tree *Tree) Add(key Key) (node *Node, inserted bool, err error) {
	if nil == tree.root {
		tree.root = &Node{key: key, color: black}
		tree.size = 1
		node = tree.root
		inserted = true
		return
	}

	nearest, lessThan, found, err := tree.findNearest(key)
	if nil != err {
		return
	}
	if found {
		node = nearest
		return
	}

	// Attach a plain black leaf below the search end point, then walk
	// upward splitting overflowing logical nodes until it is linked in.
	node = &Node{key: key, color: black, parent: nearest, rel: relationFor(lessThan)}
	tree.size++

	free := node
	for free != tree.root {
		free = tree.splitStep(free)
	}
	inserted = true
	return
}

// splitStep attaches the detached subtree rooted at node one level up,
// applying the one transformation its local topology calls for. It
// returns the root when the walk is complete, or the next detached node
// when a logical node split propagated the middle key upward.
func (tree *Tree) splitStep(node *Node) (free *Node) {
	switch classifySplit(node) {
	case splitTwoLeft:
		free = tree.splitTwoLeft(node)
	case splitTwoRight:
		free = tree.splitTwoRight(node)
	case splitThreeRight:
		free = tree.splitThreeRight(node)
	case splitThreeLeft:
		free = tree.splitThreeLeft(node)
	case splitThreeMiddle:
		free = tree.splitThreeMiddle(node)
	}
	return
}

// splitTwoLeft: the parent is a 2-node and node belongs on its empty left
// side. Attaching node as the red left child turns the parent into a
// 3-node. Terminal.
func (tree *Tree) splitTwoLeft(node *Node) (free *Node) {
	right := node.parent

	right.left = node
	node.rel = lessThanParent
	node.color = red

	free = tree.root
	return
}

// splitTwoRight: the parent is a 2-node and node belongs on its greater
// side. Node takes over the parent's structural position and the old
// parent becomes its red left child, forming the same 3-node shape as
// splitTwoLeft. Terminal.
func (tree *Tree) splitTwoRight(node *Node) (free *Node) {
	left := node.parent

	child := node.left
	left.right = child
	if nil != child {
		child.parent = left
		child.rel = greaterThanParent
	}

	parent := left.parent
	lessThan := left.isLessThanParent()
	if nil != parent {
		parent.setChildSlot(lessThan, node)
	} else {
		tree.root = node
	}
	node.parent = parent
	node.rel = relationFor(lessThan)
	node.left = left
	left.parent = node
	left.rel = lessThanParent
	left.color = red

	free = tree.root
	return
}

// splitThreeRight: the parent already forms a 3-node with its red left
// child and node arrives on the greater side, overflowing it. The former
// red sibling turns black, node fills the right slot, and the middle
// (the old parent) is detached from the grandparent to be re-added one
// level up. Propagates.
func (tree *Tree) splitThreeRight(node *Node) (free *Node) {
	middle := node.parent

	left := middle.left
	left.color = black
	middle.right = node

	parent := middle.parent
	lessThan := middle.isLessThanParent()
	if nil != parent {
		parent.setChildSlot(lessThan, nil)
	} else {
		tree.root = middle
	}

	free = middle
	return
}

// splitThreeLeft: node arrives below the red half of a 3-node on the
// lesser side, forming a logical 4-node. The red middle is promoted: it
// takes the grandparent's slot (detached, to be re-added one level up)
// with node and the old grandparent as its black children.
func (tree *Tree) splitThreeLeft(node *Node) (free *Node) {
	middle := node.parent
	right := middle.parent

	parent := right.parent
	lessThan := right.isLessThanParent()
	if nil != parent {
		parent.setChildSlot(lessThan, nil)
	} else {
		tree.root = middle
	}
	middle.parent = parent
	middle.rel = relationFor(lessThan)

	child := middle.right
	if nil != child {
		child.parent = right
		child.rel = lessThanParent
	}
	right.left = child
	right.parent = middle
	right.rel = greaterThanParent
	middle.right = right
	middle.left = node
	middle.color = black

	free = middle
	return
}

// splitThreeMiddle: node arrives between the two keys of a 3-node,
// making node itself the middle of the logical 4-node. Node is promoted
// into the grandparent's slot (detached, to be re-added one level up)
// with the old 3-node halves as its black children.
func (tree *Tree) splitThreeMiddle(node *Node) (free *Node) {
	left := node.parent
	right := left.parent

	parent := right.parent
	lessThan := right.isLessThanParent()
	if nil != parent {
		parent.setChildSlot(lessThan, nil)
	} else {
		tree.root = node
	}
	node.parent = parent
	node.rel = relationFor(lessThan)

	child := node.left
	if nil != child {
		child.parent = left
		child.rel = greaterThanParent
	}
	left.right = child
	child = node.right
	if nil != child {
		child.parent = right
		child.rel = lessThanParent
	}
	right.left = child
	node.left = left
	node.right = right
	left.parent = node
	right.parent = node
	left.rel = lessThanParent
	right.rel = greaterThanParent
	left.color = black

	free = node
	return
}
