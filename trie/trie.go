package trie

import (
	"fmt"
	"sort"
)

// noTerminal marks nodes at which no alias ends.
const noTerminal = -1

// Node is one state of the trie: a mapping from the next input byte to a
// child node, plus an optional terminal marker holding a record index.
type Node struct {
	children map[byte]*Node
	terminal int
}

func newNode() *Node {
	return &Node{terminal: noTerminal}
}

// Terminal returns the index of the record whose alias ends at this node,
// if any.
func (n *Node) Terminal() (int, bool) {
	return n.terminal, n.terminal != noTerminal
}

// Edge is one outgoing branch of a node.
type Edge struct {
	Ch byte
	To *Node
}

// Edges returns the node's branches in ascending byte order. The order is
// established by an explicit sort; iteration order of the underlying map is
// never exposed, so that emitted code is identical across runs.
func (n *Node) Edges() []Edge {
	edges := make([]Edge, 0, len(n.children))
	for ch, child := range n.children {
		edges = append(edges, Edge{Ch: ch, To: child})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Ch < edges[j].Ch })
	return edges
}

// Trie is a prefix tree dispatching register names to record indices. The
// zero value is not usable; create instances with New.
type Trie struct {
	root *Node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Root returns the trie's root node, the starting state for a lookup.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert adds a register name to the trie, creating intermediate nodes as
// needed, and marks the final node with the owning record's index.
//
// Callers must have rejected duplicate names beforehand; a terminal marker
// is never legally overwritten and an attempt to do so panics.
func (t *Trie) Insert(name string, index int) {
	node := t.root
	for i := 0; i < len(name); i++ {
		ch := name[i]
		child := node.children[ch]
		if child == nil {
			if node.children == nil {
				node.children = make(map[byte]*Node)
			}
			child = newNode()
			node.children[ch] = child
		}
		node = child
	}
	if node.terminal != noTerminal {
		panic(fmt.Sprintf("trie: name %q inserted twice", name))
	}
	node.terminal = index
	tracer().Debugf("inserted %q -> record %d", name, index)
}

// Lookup returns the record index a name dispatches to, or false if the name
// is not in the trie.
func (t *Trie) Lookup(name string) (int, bool) {
	node := t.root
	for i := 0; i < len(name); i++ {
		node = node.children[name[i]]
		if node == nil {
			return 0, false
		}
	}
	return node.Terminal()
}
