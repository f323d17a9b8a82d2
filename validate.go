package treeset

import (
	"github.com/pkg/errors"
)

// Validate walks the whole tree leftmost to rightmost and re-checks the
// structural and ordering invariants against every node, returning a
// descriptive error for the first violation found (nil means the tree is
// well formed). It is a test oracle: O(n), read-only, and never required
// for correct operation.
func (tree *Tree) Validate() (err error) {
	node := tree.root
	if nil == node {
		if 0 != tree.size {
			err = errors.Errorf("treeset: empty tree claims size %d", tree.size)
			return
		}
		err = nil
		return
	}

	if !node.isBlack() {
		err = errors.Errorf("treeset: root %v is red", node.key)
		return
	}

	count := 0
	for node = tree.First(); ; {
		err = tree.validateNode(node)
		if nil != err {
			return
		}
		count++

		next := node.Next()
		if next == node {
			break
		}
		node = next
	}

	if count != tree.size {
		err = errors.Errorf("treeset: size %d but in-order walk visited %d nodes", tree.size, count)
		return
	}

	err = nil
	return
}

func (tree *Tree) validateNode(node *Node) (err error) {
	parent := node.parent
	left := node.left
	right := node.right
	lessThan := node.isLessThanParent()

	// Relation flag must agree with the parent's child slot and with the
	// key order against the parent.
	if nil != parent {
		if node != parent.getChild(lessThan) {
			err = errors.Errorf("treeset: node %v not linked on its flagged side of parent %v", node.key, parent.key)
			return
		}
		result, cmpErr := tree.compare(node.key, parent.key)
		if nil != cmpErr {
			err = errors.Wrapf(cmpErr, "treeset: comparing %v against parent %v", node.key, parent.key)
			return
		}
		if lessThan && result >= 0 {
			err = errors.Errorf("treeset: node %v flagged less-than-parent but does not sort before %v", node.key, parent.key)
			return
		}
		if !lessThan && result <= 0 {
			err = errors.Errorf("treeset: node %v flagged greater-than-parent but does not sort after %v", node.key, parent.key)
			return
		}
	}

	// Red links lean left only and never chain.
	if node.isRed() {
		if nil == parent {
			err = errors.Errorf("treeset: red node %v has no parent", node.key)
			return
		}
		if !parent.isBlack() {
			err = errors.Errorf("treeset: red node %v below red parent %v", node.key, parent.key)
			return
		}
		if !lessThan {
			err = errors.Errorf("treeset: red node %v is a right child of %v", node.key, parent.key)
			return
		}
	}

	// A 3-node beside a right subtree must have both grandchildren
	// present, keeping the corresponding 2-3 tree leaves level.
	if nil != left {
		if left.isRed() {
			if nil != right {
				if nil == left.left {
					err = errors.Errorf("treeset: node %v has red left child %v missing its left child", node.key, left.key)
					return
				}
				if nil == left.right {
					err = errors.Errorf("treeset: node %v has red left child %v missing its right child", node.key, left.key)
					return
				}
			}
		} else if nil == right {
			err = errors.Errorf("treeset: node %v has lone black left child %v", node.key, left.key)
			return
		}
	}

	// A lone child, if present, is always the left one.
	if nil != right && nil == left {
		err = errors.Errorf("treeset: node %v has right child %v but no left child", node.key, right.key)
		return
	}

	err = nil
	return
}
