package treeset

// A mergeCase names the local topology around the deficiency the removal
// walk is resolving: the parent's color, the deficient side, and whether
// the sibling that will absorb or donate is itself a 2-node or a 3-node.
// Exactly one case applies at every step; only the two-left-two and
// two-right-two merges propagate the deficiency upward.
type mergeCase uint8

const (
	mergeTwoLeftTwo      mergeCase = iota // black parent, left deficit, 2-node sibling
	mergeTwoLeftThree                     // black parent, left deficit, 3-node sibling
	mergeTwoRightTwo                      // black parent, right deficit, 2-node sibling
	mergeTwoRightThree                    // black parent, right deficit, 3-node sibling
	mergeThreeLeftTwo                     // red parent, left deficit, 2-node middle
	mergeThreeLeftThree                   // red parent, left deficit, 3-node middle
	mergeThreeMiddleTwo                   // red parent, middle deficit, 2-node left sibling
	mergeThreeMiddleThree                 // red parent, middle deficit, 3-node left sibling
	mergeThreeRightTwo                    // 3-node parent, right deficit, 2-node middle
	mergeThreeRightThree                  // 3-node parent, right deficit, 3-node middle
)

func classifyMerge(node *Node) (chosen mergeCase) {
	parent := node.parent
	if nil == parent {
		panic("treeset: removal walk reached a detached root")
	}

	if parent.isBlack() {
		if node.isLessThanParent() {
			sibling := parent.right
			nephew := sibling.left
			if nil != nephew && nephew.isRed() {
				chosen = mergeTwoLeftThree
			} else {
				chosen = mergeTwoLeftTwo
			}
		} else {
			left := parent.left
			if nil != left && left.isRed() {
				// The parent is the greater half of a 3-node; inspect
				// the middle sibling under the red link.
				nephew := left.right.left
				if nil != nephew && nephew.isRed() {
					chosen = mergeThreeRightThree
				} else {
					chosen = mergeThreeRightTwo
				}
			} else {
				nephew := left.left
				if nil != nephew && nephew.isRed() {
					chosen = mergeTwoRightThree
				} else {
					chosen = mergeTwoRightTwo
				}
			}
		}
	} else {
		if node.isLessThanParent() {
			nephew := parent.right.left
			if nil != nephew && nephew.isRed() {
				chosen = mergeThreeLeftThree
			} else {
				chosen = mergeThreeLeftTwo
			}
		} else {
			nephew := parent.left.left
			if nil != nephew && nephew.isRed() {
				chosen = mergeThreeMiddleThree
			} else {
				chosen = mergeThreeMiddleTwo
			}
		}
	}
	return
}

// Remove deletes key if present. An absent key is not an error; it is
// reported as removed == false with the tree untouched.
func (tree *Tree) Remove(key Key) (removed bool, err error) {
	node, found, err := tree.Find(key)
	if nil != err || !found {
		return
	}
	tree.RemoveNode(node)
	removed = true
	return
}

// RemoveNode deletes the key held by node, which must be a live handle
// obtained from this tree. It never calls the comparator.
//
// If node has a right subtree, its in-order successor node is relinked
// into node's structural position first (pointers, color and relation are
// exchanged; keys are never copied), so a retained handle for the
// successor key stays valid and keeps its key while its position changes.
//
// The returned next is the node that follows the physically vacated
// position in order, or nil if that position was the rightmost: the
// successor of the removed key when node was a leaf participant, and the
// key after the relocated successor when a swap took place.
func (tree *Tree) RemoveNode(node *Node) (next *Node) {
	tree.size--

	next = successorWithin(node)
	if nil != next {
		// Not a leaf participant; trade places with the successor so
		// the node to unlink has no right subtree.
		swapNodes(node, next)
		if node == tree.root {
			tree.root = next
		}
	}

	parent := node.parent
	left := node.left

	if nil != parent {
		if node.isLessThanParent() {
			next = parent
		} else {
			next = nextLargestParent(parent)
		}

		if node.isBlack() {
			if nil != left && left.isRed() {
				// Black half of a leaf 3-node: the red child is
				// promoted black into its place.
				setChild(parent, left, node.isLessThanParent())
				left.color = black
			} else {
				// A 2-node leaf: unlinking it leaves a deficit that
				// must be merged or borrowed away.
				for node != tree.root {
					node = tree.mergeStep(node)
				}
			}
		} else {
			// Red half of a leaf 3-node: unlink it.
			parent.left = nil
		}
		return
	}

	// Node is both leaf and root.
	if nil != left && left.isRed() {
		left.parent = nil
		left.color = black
	}
	tree.root = left
	return
}

// mergeStep resolves the deficit at node one level, applying the one
// transformation its local topology calls for. It returns the root when
// rebalancing is complete. When the deficit propagated it returns node
// again, rewired to carry the merged subtree as its left child one level
// up for the next dispatch.
func (tree *Tree) mergeStep(node *Node) (free *Node) {
	switch classifyMerge(node) {
	case mergeTwoLeftTwo:
		free = tree.mergeTwoLeftTwo(node)
	case mergeTwoLeftThree:
		free = tree.mergeTwoLeftThree(node)
	case mergeTwoRightTwo:
		free = tree.mergeTwoRightTwo(node)
	case mergeTwoRightThree:
		free = tree.mergeTwoRightThree(node)
	case mergeThreeLeftTwo:
		free = tree.mergeThreeLeftTwo(node)
	case mergeThreeLeftThree:
		free = tree.mergeThreeLeftThree(node)
	case mergeThreeMiddleTwo:
		free = tree.mergeThreeMiddleTwo(node)
	case mergeThreeMiddleThree:
		free = tree.mergeThreeMiddleThree(node)
	case mergeThreeRightTwo:
		free = tree.mergeThreeRightTwo(node)
	case mergeThreeRightThree:
		free = tree.mergeThreeRightThree(node)
	}
	return
}

// mergeTwoLeftTwo: both the parent and the right sibling are 2-nodes.
// The sibling absorbs the parent's key (parent turns red below it) and
// the deficit moves up: node is rewired as the carrier of the merged
// subtree and re-dispatched one level higher. The only propagating case,
// along with its mirror mergeTwoRightTwo.
func (tree *Tree) mergeTwoLeftTwo(node *Node) (free *Node) {
	a := node.parent
	b := a.right

	x := a.parent
	xLess := a.isLessThanParent()
	setLeftChild(a, node.left)
	setRightChild(a, b.left)
	setLeftChild(b, a)
	a.color = red

	if nil != x {
		node.left = b
		node.parent = x
		node.rel = relationFor(xLess)
		free = node
		return
	}
	b.parent = nil
	tree.root = b
	free = tree.root
	return
}

// mergeTwoLeftThree: the right sibling is a 3-node; its lesser key is
// rotated up into the parent's slot and no deficit remains. Terminal.
func (tree *Tree) mergeTwoLeftThree(node *Node) (free *Node) {
	a := node.parent
	c := a.right
	b := c.left

	x := a.parent
	xLess := a.isLessThanParent()
	setLeftChild(a, node.left)
	setRightChild(a, b.left)
	setLeftChild(c, b.right)
	setLeftChild(b, a)
	setRightChild(b, c)
	b.color = black

	if nil != x {
		setChild(x, b, xLess)
	} else {
		b.parent = nil
		tree.root = b
	}
	free = tree.root
	return
}

// mergeTwoRightTwo: mirror of mergeTwoLeftTwo for a deficit on the
// greater side. Propagates.
func (tree *Tree) mergeTwoRightTwo(node *Node) (free *Node) {
	a := node.parent
	b := a.left

	x := a.parent
	xLess := a.isLessThanParent()
	setRightChild(a, node.left)
	b.color = red

	if nil != x {
		node.left = a
		node.parent = x
		node.rel = relationFor(xLess)
		free = node
		return
	}
	a.parent = nil
	tree.root = a
	free = tree.root
	return
}

// mergeTwoRightThree: mirror of mergeTwoLeftThree; the left sibling's
// greater key rotates up into the parent's slot. Terminal.
func (tree *Tree) mergeTwoRightThree(node *Node) (free *Node) {
	a := node.parent
	c := a.left
	b := c.left

	x := a.parent
	xLess := a.isLessThanParent()
	setRightChild(a, node.left)
	setLeftChild(a, c.right)
	setRightChild(c, a)
	b.color = black

	if nil != x {
		setChild(x, c, xLess)
	} else {
		c.parent = nil
		tree.root = c
	}
	free = tree.root
	return
}

// mergeThreeLeftTwo: the deficit sits below the red half of a 3-node and
// the middle sibling is a 2-node; the red link is consumed to absorb the
// deficit locally. Terminal.
func (tree *Tree) mergeThreeLeftTwo(node *Node) (free *Node) {
	a := node.parent
	b := a.parent
	c := a.right

	setLeftChild(a, node.left)
	setRightChild(a, c.left)
	setLeftChild(c, a)
	setLeftChild(b, c)

	free = tree.root
	return
}

// mergeThreeLeftThree: as mergeThreeLeftTwo but the middle sibling is a
// 3-node, donating its lesser key instead. Terminal.
func (tree *Tree) mergeThreeLeftThree(node *Node) (free *Node) {
	a := node.parent
	b := a.parent
	d := a.right
	c := d.left

	setLeftChild(a, node.left)
	setRightChild(a, c.left)
	setLeftChild(d, c.right)
	setLeftChild(c, a)
	setRightChild(c, d)
	setLeftChild(b, c)
	a.color = black

	free = tree.root
	return
}

// mergeThreeMiddleTwo: the deficit sits between the halves of a 3-node
// and the lesser half's subtree is a 2-node; the red link is recolored
// away. Terminal.
func (tree *Tree) mergeThreeMiddleTwo(node *Node) (free *Node) {
	a := node.parent
	c := a.left

	setRightChild(a, node.left)
	a.color = black
	c.color = red

	free = tree.root
	return
}

// mergeThreeMiddleThree: as mergeThreeMiddleTwo but the left sibling is
// a 3-node, rotated through to rebalance without recoloring the parent
// red. Terminal.
func (tree *Tree) mergeThreeMiddleThree(node *Node) (free *Node) {
	a := node.parent
	b := a.parent
	d := a.left
	c := d.left

	setLeftChild(a, d.right)
	setRightChild(a, node.left)
	setRightChild(d, a)
	setLeftChild(b, d)
	a.color = black
	c.color = black
	d.color = red

	free = tree.root
	return
}

// mergeThreeRightTwo: the deficit is on the greater side of a 3-node
// whose middle subtree is a 2-node; the red left half rotates up to take
// the parent's slot. Terminal.
func (tree *Tree) mergeThreeRightTwo(node *Node) (free *Node) {
	b := node.parent
	a := b.left
	c := a.right

	x := b.parent
	xLess := b.isLessThanParent()
	setLeftChild(b, c)
	setRightChild(b, node.left)
	setRightChild(a, b)
	a.color = black
	c.color = red

	if nil != x {
		setChild(x, a, xLess)
	} else {
		a.parent = nil
		tree.root = a
	}
	free = tree.root
	return
}

// mergeThreeRightThree: as mergeThreeRightTwo but the middle subtree is
// a 3-node; its lesser key is promoted to the parent's slot instead.
// Terminal.
func (tree *Tree) mergeThreeRightThree(node *Node) (free *Node) {
	b := node.parent
	a := b.left
	d := a.right
	c := d.left

	x := b.parent
	xLess := b.isLessThanParent()
	setLeftChild(b, d.right)
	setRightChild(b, node.left)
	setRightChild(a, c)
	setLeftChild(d, a)
	setRightChild(d, b)
	c.color = black

	if nil != x {
		setChild(x, d, xLess)
	} else {
		d.parent = nil
		tree.root = d
	}
	free = tree.root
	return
}
