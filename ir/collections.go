package ir

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
)

func nodeComparator(a, b interface{}) int {
	return Compare(a.(*Node), b.(*Node))
}

// FromSet returns a set of the given members in canonical order. Of
// members equal under [Compare], the first one is kept.
func FromSet(members []*Node) *Node {
	tree := redblacktree.NewWith(nodeComparator)
	for _, m := range members {
		if m == nil {
			m = Nil()
		}
		if _, found := tree.Get(m); found {
			continue
		}
		tree.Put(m, nil)
	}
	res := &Node{
		Type:   SetType,
		Values: make([]*Node, 0, tree.Size()),
	}
	for _, k := range tree.Keys() {
		res.Values = append(res.Values, k.(*Node))
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals returns a map of the given entries in canonical key order.
// When keys are equal under [Compare], the later entry replaces the earlier
// one, key included.
func FromKeyVals(kvs []KeyVal) *Node {
	tree := redblacktree.NewWith(nodeComparator)
	for _, kv := range kvs {
		key, val := kv.Key, kv.Val
		if key == nil {
			key = Nil()
		}
		if val == nil {
			val = Nil()
		}
		tree.Remove(key)
		tree.Put(key, val)
	}
	res := &Node{
		Type:   MapType,
		Fields: make([]*Node, 0, tree.Size()),
		Values: make([]*Node, 0, tree.Size()),
	}
	it := tree.Iterator()
	for it.Next() {
		res.Fields = append(res.Fields, it.Key().(*Node))
		res.Values = append(res.Values, it.Value().(*Node))
	}
	return res
}

// KeyVals returns the entries of a map in canonical order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != MapType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i := range y.Fields {
		res[i] = KeyVal{Key: y.Fields[i], Val: y.Values[i]}
	}
	return res
}

// Get returns the value for key in the map y, or nil.
func Get(y *Node, key *Node) *Node {
	if y.Type != MapType {
		return nil
	}
	i, ok := search(y.Fields, key)
	if !ok {
		return nil
	}
	return y.Values[i]
}

// Contains reports whether the set y has a member equal to m.
func Contains(y *Node, m *Node) bool {
	if y.Type != SetType {
		return false
	}
	_, ok := search(y.Values, m)
	return ok
}

func search(sorted []*Node, n *Node) (int, bool) {
	i := sort.Search(len(sorted), func(i int) bool {
		return Compare(sorted[i], n) >= 0
	})
	return i, i < len(sorted) && Compare(sorted[i], n) == 0
}
