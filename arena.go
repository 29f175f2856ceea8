// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package verkle

import "github.com/vrk-labs/verkle-ipa/internal/ipa"

// handle is a stable index into a trie's node arena. emptyHandle denotes
// an absent child without materializing a node for it, per §9's slot-map
// arena design note: parent-to-child links are handles, never owning
// references, so the tree can be mutated in place without invalidating
// handles held elsewhere in the call stack.
type handle int32

const emptyHandle handle = -1

type nodeKind uint8

const (
	kindBranch nodeKind = iota
	kindStem
)

// node is the tagged variant {Branch, StemExtension} of §9 ("model as a
// tagged variant rather than dynamic dispatch"); Empty is represented by
// emptyHandle rather than a node value, since it carries no state.
type node struct {
	kind   nodeKind
	branch *branchNode
	stem   *stemNode
}

type branchNode struct {
	children [256]handle
	// commitment is commit_lagrange(v) where v[i] = map_to_scalar_field
	// of child i's commitment, or zero for an absent child (§4.8).
	commitment Element
	// hash is map_to_scalar_field(commitment), cached so a parent branch
	// need not recompute it on every lookup.
	hash Fr
}

type stemNode struct {
	stem [31]byte
	// values holds a pointer per suffix so that "absent" (nil) is
	// distinguishable from the 32 zero bytes (§3).
	values [256]*[32]byte
	c1, c2 Element
	cExt   Element
	hash   Fr

	// c1HashCache/c2HashCache are map_to_scalar_field(c1)/(c2) as last
	// folded into cExt, so the next delta update to cExt knows its prior
	// contribution without recomputing the whole aggregate from scratch.
	c1HashCache, c2HashCache Fr
	// seeded is true once cExt's constant (position 0) and stem
	// (position 1) components have been folded in.
	seeded bool
}

// arena owns every node in a trie, indexed by handle.
type arena struct {
	nodes []node
}

func newArena() *arena {
	return &arena{}
}

func (a *arena) allocBranch() handle {
	b := &branchNode{}
	for i := range b.children {
		b.children[i] = emptyHandle
	}
	b.commitment = ipa.Identity()
	a.nodes = append(a.nodes, node{kind: kindBranch, branch: b})
	return handle(len(a.nodes) - 1)
}

func (a *arena) allocStem(stem [31]byte) handle {
	s := &stemNode{stem: stem, c1: ipa.Identity(), c2: ipa.Identity(), cExt: ipa.Identity()}
	a.nodes = append(a.nodes, node{kind: kindStem, stem: s})
	return handle(len(a.nodes) - 1)
}

func (a *arena) get(h handle) *node {
	return &a.nodes[h]
}
