// Copyright 2025-2026 The Catalyst-Go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testNode struct {
	label    string
	children []*testNode
}

func tn(label string, children ...*testNode) *testNode {
	return &testNode{label: label, children: children}
}

func (n *testNode) NodeName() string { return n.label }

func (n *testNode) String() string { return "(" + n.label + ")" }

func (n *testNode) Children() []Node {
	res := make([]Node, len(n.children))
	for i, c := range n.children {
		res[i] = c
	}
	return res
}

func (n *testNode) WithChildren(children []Node) Node {
	cp := &testNode{label: n.label, children: make([]*testNode, len(children))}
	for i, c := range children {
		cp.children[i] = c.(*testNode)
	}
	return cp
}

func (n *testNode) Clone() Node {
	cp := &testNode{label: n.label, children: make([]*testNode, len(n.children))}
	for i, c := range n.children {
		cp.children[i] = c.Clone().(*testNode)
	}
	return cp
}

func (n *testNode) Equal(other Node) bool {
	o, ok := other.(*testNode)
	if !ok || n.label != o.label || len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

// a1(b1(c1,c2), b2(c3), b3)
func smallTestTree1() *testNode {
	return tn("a1",
		tn("b1", tn("c1"), tn("c2")),
		tn("b2", tn("c3")),
		tn("b3"),
	)
}

// a(b(c(d))), single child chain
func smallTestTree2() *testNode {
	return tn("a", tn("b", tn("c", tn("d"))))
}

func names(nodes []Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.NodeName()
	}
	return res
}

func TestNodeProperties(t *testing.T) {
	root := smallTestTree1()
	assert.Equal(t, "a1", root.NodeName())
	assert.Equal(t, "(a1)", root.String())
	assert.Len(t, root.Children(), 3)
	assert.False(t, IsLeaf(root))

	b1 := root.Children()[0]
	assert.Equal(t, "b1", b1.NodeName())
	assert.Len(t, b1.Children(), 2)
	assert.False(t, IsLeaf(b1))

	b2 := root.Children()[1]
	assert.Equal(t, "b2", b2.NodeName())
	assert.Len(t, b2.Children(), 1)
	assert.False(t, IsLeaf(b2))

	b3 := root.Children()[2]
	assert.Equal(t, "b3", b3.NodeName())
	assert.Len(t, b3.Children(), 0)
	assert.True(t, IsLeaf(b3))
}

func TestForeach(t *testing.T) {
	var labels []string
	Foreach(smallTestTree1(), func(n Node) {
		labels = append(labels, n.NodeName())
	})
	assert.Equal(t, []string{"a1", "b1", "c1", "c2", "b2", "c3", "b3"}, labels)
}

func TestForeachUp(t *testing.T) {
	var labels []string
	ForeachUp(smallTestTree1(), func(n Node) {
		labels = append(labels, n.NodeName())
	})
	assert.Equal(t, []string{"c1", "c2", "b1", "c3", "b2", "b3", "a1"}, labels)
}

func TestFind(t *testing.T) {
	root := smallTestTree1()

	// child node in the tree
	found, ok := Find(root, func(n Node) bool { return n.NodeName() == "c2" })
	require.True(t, ok)
	assert.Equal(t, "c2", found.NodeName())

	// root of the tree
	found, ok = Find(root, func(n Node) bool { return len(n.Children()) == 3 })
	require.True(t, ok)
	assert.Equal(t, "a1", found.NodeName())

	// no result
	_, ok = Find(root, func(n Node) bool { return n.NodeName() == "<unknown>" })
	assert.False(t, ok)
}

func TestMap(t *testing.T) {
	root := smallTestTree1()
	labels := Map(root, func(n Node) string { return n.NodeName() })
	assert.Equal(t, []string{"a1", "b1", "c1", "c2", "b2", "c3", "b3"}, labels)

	leaves := Map(root, func(n Node) bool { return IsLeaf(n) })
	assert.Equal(t, []bool{false, false, true, true, false, true, true}, leaves)
}

func TestFlatMap(t *testing.T) {
	res := FlatMap(smallTestTree1(), func(n Node) []string {
		return names(n.Children())
	})
	assert.Equal(t, []string{"b1", "b2", "b3", "c1", "c2", "c3"}, res)
}

func TestCollect(t *testing.T) {
	res := Collect(smallTestTree1(), func(n Node) (string, bool) {
		if !IsLeaf(n) {
			return n.NodeName(), true
		}
		return "", false
	})
	assert.Equal(t, []string{"a1", "b1", "b2"}, res)
}

func TestCollectLeaves(t *testing.T) {
	root := smallTestTree1()
	leaves := CollectLeaves(root)
	assert.Equal(t, []string{"c1", "c2", "c3", "b3"}, names(leaves))

	// leaves are deep copies, mutating them must not affect the original
	leaves[0].(*testNode).label = "mutated"
	assert.True(t, root.Equal(smallTestTree1()))
}

func TestMapChildren(t *testing.T) {
	root := smallTestTree1()
	res := MapChildren(root, func(n Node) Node {
		return &testNode{label: n.NodeName() + "-#", children: n.(*testNode).children}
	})
	var labels []string
	Foreach(res, func(n Node) {
		labels = append(labels, n.NodeName())
	})
	assert.Equal(t, []string{"a1", "b1-#", "c1", "c2", "b2-#", "c3", "b3-#"}, labels)
	// only immediate children are relabelled, original is untouched
	assert.True(t, root.Equal(smallTestTree1()))
}

func TestTransformDown(t *testing.T) {
	root := smallTestTree1()
	res := TransformDown(root, func(n Node) (Node, bool) {
		if n.NodeName() == "b1" || n.NodeName() == "b2" {
			return tn(n.NodeName() + "-#"), true
		}
		return nil, false
	})
	expected := tn("a1", tn("b1-#"), tn("b2-#"), tn("b3"))
	assert.True(t, res.Equal(expected), "got tree:\n%s", TreeString(res))
	// should not modify original tree
	assert.True(t, root.Equal(smallTestTree1()))
}

func TestTransformUp(t *testing.T) {
	root := smallTestTree1()
	// truncate children to at most one, bottom-up
	res := TransformUp(root, func(n Node) (Node, bool) {
		tnode := n.(*testNode)
		if len(tnode.children) <= 1 {
			return nil, false
		}
		return &testNode{label: tnode.label, children: tnode.children[:1]}, true
	})
	expected := tn("a1", tn("b1", tn("c1")))
	assert.True(t, res.Equal(expected), "got tree:\n%s", TreeString(res))
	// should not modify original tree
	assert.True(t, root.Equal(smallTestTree1()))
}

func TestTransformPreservesSnapshots(t *testing.T) {
	root := smallTestTree1()
	snapshot := root.Clone()
	TransformDown(root, func(n Node) (Node, bool) {
		return tn(n.NodeName() + "!"), true
	})
	TransformUp(root, func(n Node) (Node, bool) {
		return tn(n.NodeName() + "!"), true
	})
	assert.True(t, root.Equal(snapshot))
}

func TestTreeString(t *testing.T) {
	res := TreeString(smallTestTree1())
	assert.Equal(t, strings.Join([]string{
		"a1",
		":- b1",
		":  :- c1",
		":  +- c2",
		":- b2",
		":  +- c3",
		"+- b3",
	}, "\n"), res)

	res = TreeString(smallTestTree2())
	assert.Equal(t, strings.Join([]string{
		"a",
		"+- b",
		"   +- c",
		"      +- d",
	}, "\n"), res)
}

func TestNumberedTreeString(t *testing.T) {
	res := NumberedTreeString(smallTestTree1())
	assert.Equal(t, strings.Join([]string{
		"01 a1",
		"02 :- b1",
		"03 :  :- c1",
		"04 :  +- c2",
		"05 :- b2",
		"06 :  +- c3",
		"07 +- b3",
	}, "\n"), res)

	res = NumberedTreeString(smallTestTree2())
	assert.Equal(t, strings.Join([]string{
		"01 a",
		"02 +- b",
		"03    +- c",
		"04       +- d",
	}, "\n"), res)
}

func TestCloneAndEqual(t *testing.T) {
	root := smallTestTree1()
	cp := root.Clone()
	assert.True(t, cp.Equal(root))
	assert.True(t, root.Equal(cp))
	// reflexive
	assert.True(t, root.Equal(root))

	// mutating the clone must not affect the original
	cp.(*testNode).children[0].label = "mutated"
	assert.True(t, root.Equal(smallTestTree1()))
	assert.False(t, cp.Equal(root))

	// structurally different trees are never equal
	assert.False(t, smallTestTree1().Equal(smallTestTree2()))
	assert.False(t, smallTestTree1().Equal(tn("a1", tn("b1"), tn("b2"), tn("b3"))))
}
