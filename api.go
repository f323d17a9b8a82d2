// Package treeset implements an ordered set of unique keys kept in a
// 2-3 tree that is encoded as a left-leaning red-black binary tree.
//
// A black node together with an optional red left child forms one logical
// 2-3 tree node, so every leaf sits at the same logical depth and all
// operations are O(log n). Each node additionally records which side of
// its parent it occupies, which lets Prev()/Next() and the entire removal
// rebalancing walk run without ever calling the comparator.
//
// The tree performs no locking; concurrent mutation must be serialized by
// the caller. Lookups may run concurrently with each other but not with
// Add/Remove/RemoveNode.
package treeset

import (
	"fmt"
	"time"
)

// Key is the opaque key type managed by a Tree. The caller-supplied
// Compare function defines the strict total order over keys.
type Key interface{}

// Compare returns <0 if key1 sorts before key2, 0 if they are equal, and
// >0 if key1 sorts after key2. It must implement a consistent, transitive
// strict weak ordering; a non-nil err aborts the operation that invoked it.
type Compare func(key1 Key, key2 Key) (result int, err error)

func CompareInt(key1 Key, key2 Key) (result int, err error) {
	key1Int, ok := key1.(int)
	if !ok {
		err = fmt.Errorf("CompareInt(non-int,) not supported")
		return
	}
	key2Int, ok := key2.(int)
	if !ok {
		err = fmt.Errorf("CompareInt(int, non-int) not supported")
		return
	}
	if key1Int < key2Int {
		result = -1
	} else if key1Int == key2Int {
		result = 0
	} else {
		result = 1
	}
	err = nil
	return
}

func CompareUint64(key1 Key, key2 Key) (result int, err error) {
	key1Uint64, ok := key1.(uint64)
	if !ok {
		err = fmt.Errorf("CompareUint64(non-uint64,) not supported")
		return
	}
	key2Uint64, ok := key2.(uint64)
	if !ok {
		err = fmt.Errorf("CompareUint64(uint64, non-uint64) not supported")
		return
	}
	if key1Uint64 < key2Uint64 {
		result = -1
	} else if key1Uint64 == key2Uint64 {
		result = 0
	} else {
		result = 1
	}
	err = nil
	return
}

func CompareString(key1 Key, key2 Key) (result int, err error) {
	key1String, ok := key1.(string)
	if !ok {
		err = fmt.Errorf("CompareString(non-string,) not supported")
		return
	}
	key2String, ok := key2.(string)
	if !ok {
		err = fmt.Errorf("CompareString(string, non-string) not supported")
		return
	}
	if key1String < key2String {
		result = -1
	} else if key1String == key2String {
		result = 0
	} else {
		result = 1
	}
	err = nil
	return
}

func CompareTime(key1 Key, key2 Key) (result int, err error) {
	key1Time, ok := key1.(time.Time)
	if !ok {
		err = fmt.Errorf("CompareTime(non-time.Time,) not supported")
		return
	}
	key2Time, ok := key2.(time.Time)
	if !ok {
		err = fmt.Errorf("CompareTime(time.Time, non-time.Time) not supported")
		return
	}
	if key1Time.Before(key2Time) {
		result = -1
	} else if key1Time.Equal(key2Time) {
		result = 0
	} else {
		result = 1
	}
	err = nil
	return
}

// NewTree returns an empty Tree ordered by compare.
func NewTree(compare Compare) (tree *Tree) {
	tree = &Tree{compare: compare}
	return
}
