package treeset

import (
	"fmt"
	"strings"
)

// Dump prints the tree to stdout in flat form followed by tree form.
// Diagnostic only.
func (tree *Tree) Dump() (err error) {
	err = nil

	dumpInFlatForm(tree.root)
	dumpInTreeForm(tree)

	return
}

func dumpInFlatForm(node *Node) {
	if nil == node {
		return
	}

	nodeLeftKey := "nil"
	if nil != node.left {
		nodeLeftKey = fmt.Sprintf("%v", node.left.key)
	}

	nodeRightKey := "nil"
	if nil != node.right {
		nodeRightKey = fmt.Sprintf("%v", node.right.key)
	}

	var colorString string
	if red == node.color {
		colorString = "RED"
	} else { // black == node.color
		colorString = "BLACK"
	}

	fmt.Printf("%v Node Key == %v Node.left.Key == %v Node.right.Key == %v\n", colorString, node.key, nodeLeftKey, nodeRightKey)

	dumpInFlatForm(node.left)
	dumpInFlatForm(node.right)
}

func dumpInTreeForm(tree *Tree) {
	if nil == tree.root {
		return
	}

	if nil != tree.root.right {
		dumpInTreeFormNode(tree.root.right, true, "")
	}
	fmt.Println(tree.root.key)
	if nil != tree.root.left {
		dumpInTreeFormNode(tree.root.left, false, "")
	}
}

func dumpInTreeFormNode(node *Node, isRight bool, indent string) {
	var indentAppendage string
	var nextIndent string

	if nil != node.right {
		if isRight {
			indentAppendage = "        "
		} else {
			indentAppendage = " |      "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		dumpInTreeFormNode(node.right, true, nextIndent)
	}
	fmt.Printf("%v", indent)
	if isRight {
		fmt.Printf(" /")
	} else {
		fmt.Printf(" \\")
	}
	fmt.Println("-----", node.key)
	if nil != node.left {
		if isRight {
			indentAppendage = " |      "
		} else {
			indentAppendage = "        "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		dumpInTreeFormNode(node.left, false, nextIndent)
	}
}
