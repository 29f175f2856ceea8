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

// Trie is a single-owner, in-memory Verkle trie (§5: mutation requires
// exclusive access, reads require only shared access). Its arena is the
// authoritative representation; FlushTo materializes it into a caller's
// verkledb.Database as a write-behind sink (§5's storage discipline).
type Trie struct {
	arena  *arena
	root   handle
	config *Config
}

// New builds an empty trie against the process-wide Config.
func New() *Trie {
	return NewWithConfig(GetConfig())
}

// NewWithConfig builds an empty trie against an explicit Config, mainly
// useful for tests that want a smaller CRS.
func NewWithConfig(cfg *Config) *Trie {
	a := newArena()
	return &Trie{arena: a, root: a.allocBranch(), config: cfg}
}

// Insert writes (key, value), overwriting any prior value at key.
func (t *Trie) Insert(key Key, value Value) {
	v := [32]byte(value)
	t.root = t.insertAt(t.root, 0, key.Stem(), key.Suffix(), &v)
}

// InsertBatch writes many pairs; last-write-wins on duplicate keys, and
// the resulting root is independent of the slice's order (§4.8).
func (t *Trie) InsertBatch(pairs []struct {
	Key   Key
	Value Value
}) {
	for _, p := range pairs {
		t.Insert(p.Key, p.Value)
	}
}

// Get looks up key, returning (value, true) if present.
func (t *Trie) Get(key Key) (Value, bool) {
	stem := key.Stem()
	cur := t.root
	depth := 0
	for {
		if cur == emptyHandle {
			return Value{}, false
		}
		n := t.arena.get(cur)
		if n.kind == kindStem {
			if n.stem.stem != stem {
				return Value{}, false
			}
			v := n.stem.values[key.Suffix()]
			if v == nil {
				return Value{}, false
			}
			return Value(*v), true
		}
		idx := stem[depth]
		cur = n.branch.children[idx]
		depth++
	}
}

// RootCommitment returns the commitment on the root branch. All inserts
// in this implementation update ancestor commitments eagerly, so this is
// always already current (§4.8's "strict" policy option).
func (t *Trie) RootCommitment() Element {
	return t.arena.get(t.root).branch.commitment
}

// insertAt installs (stem, suffix, value) in the subtree rooted at h,
// which is at the given depth, returning the (possibly new) handle for
// that subtree. h == emptyHandle represents an absent child.
func (t *Trie) insertAt(h handle, depth int, stem [31]byte, suffix byte, value *[32]byte) handle {
	if h == emptyHandle {
		newHandle := t.arena.allocStem(stem)
		t.setStemValue(newHandle, suffix, value)
		return newHandle
	}

	n := t.arena.get(h)
	switch n.kind {
	case kindStem:
		if n.stem.stem == stem {
			t.setStemValue(h, suffix, value)
			return h
		}
		return t.split(h, depth, stem, suffix, value)
	case kindBranch:
		idx := stem[depth]
		oldChild := n.branch.children[idx]
		// Capture the child scalar before recursing: an existing child is
		// updated in place and may come back under the same handle.
		oldHash := t.childHash(oldChild)
		newChild := t.insertAt(oldChild, depth+1, stem, suffix, value)
		t.setBranchChild(h, idx, newChild, oldHash)
		return h
	default:
		panic("verkle: unreachable node kind")
	}
}

// split replaces a stem-extension leaf that collides on a shared prefix
// with a chain of single-child branches down to the byte where the two
// stems diverge, then a two-child branch at that depth (§4.8 case 3).
func (t *Trie) split(existing handle, depth int, newStem [31]byte, suffix byte, value *[32]byte) handle {
	otherStem := t.arena.get(existing).stem.stem

	diff := depth
	for diff < 31 && newStem[diff] == otherStem[diff] {
		diff++
	}

	newLeaf := t.arena.allocStem(newStem)
	t.setStemValue(newLeaf, suffix, value)

	branch := t.arena.allocBranch()
	t.setBranchChild(branch, otherStem[diff], existing, Fr{})
	t.setBranchChild(branch, newStem[diff], newLeaf, Fr{})

	cur := branch
	for d := diff - 1; d >= depth; d-- {
		parent := t.arena.allocBranch()
		t.setBranchChild(parent, newStem[d], cur, Fr{})
		cur = parent
	}
	return cur
}

// setBranchChild installs newChild at idx under branch h and applies the
// delta-based commitment update of §4.8: C' = C + (new_e - old_e)*G_i,
// where oldHash is the child scalar at idx before the change.
func (t *Trie) setBranchChild(h handle, idx byte, newChild handle, oldHash Fr) {
	b := t.arena.get(h).branch
	b.children[idx] = newChild
	newHash := t.childHash(newChild)

	if oldHash.Equal(&newHash) {
		return
	}
	var delta Fr
	delta.Sub(&newHash, &oldHash)
	deltaPoint := t.config.Committer.ScalarMul(delta, int(idx))
	b.commitment.Add(&b.commitment, &deltaPoint)
	b.commitment.MapToScalarField(&b.hash)
}

func (t *Trie) childHash(h handle) Fr {
	if h == emptyHandle {
		return Fr{}
	}
	// Return a copy with its own storage: the node's hash is later
	// rewritten in place, which would otherwise change the returned value.
	var out Fr
	n := t.arena.get(h)
	if n.kind == kindBranch {
		out.SetFr(&n.branch.hash)
	} else {
		out.SetFr(&n.stem.hash)
	}
	return out
}

// setStemValue installs value at suffix within the stem-extension at h,
// delta-updating C1/C2 and then C_ext (§4.8's extension commitment
// detail). A nil value marks the suffix absent again.
func (t *Trie) setStemValue(h handle, suffix byte, value *[32]byte) {
	s := t.arena.get(h).stem
	old := s.values[suffix]
	s.values[suffix] = value

	oldLow, oldHigh := splitValueHalves(old)
	newLow, newHigh := splitValueHalves(value)

	useC2, lowPos, highPos := valueSlotPositions(suffix)
	half := &s.c1
	if useC2 {
		half = &s.c2
	}

	applyDelta(t.config.Committer, half, lowPos, &oldLow, &newLow)
	applyDelta(t.config.Committer, half, highPos, &oldHigh, &newHigh)

	var halfHash Fr
	half.MapToScalarField(&halfHash)

	extPos := 2
	if useC2 {
		extPos = 3
	}

	// On the very first value written to a fresh stem node, C_ext has no
	// contribution yet at positions 0 (the constant 1) and 1 (the stem);
	// install those via the same delta identity against a zero base.
	if isFreshExtension(s) {
		var one Fr
		one.SetOne()
		stemFr := stemAsFr(s.stem)
		var zero Fr
		applyDelta(t.config.Committer, &s.cExt, 0, &zero, &one)
		applyDelta(t.config.Committer, &s.cExt, 1, &zero, &stemFr)
		markExtensionSeeded(s)
	}

	var prevHalfHash Fr
	// The previous contribution of this half to C_ext is whatever was
	// last folded in; since we only ever call this after already having
	// applied the C1/C2 delta above, recompute it from the commitment
	// this function is about to leave behind by tracking it on the node.
	if useC2 {
		prevHalfHash = s.c2HashCache
		s.c2HashCache = halfHash
	} else {
		prevHalfHash = s.c1HashCache
		s.c1HashCache = halfHash
	}
	applyDelta(t.config.Committer, &s.cExt, extPos, &prevHalfHash, &halfHash)

	s.cExt.MapToScalarField(&s.hash)
}

func applyDelta(committer ipa.Committer, commitment *Element, pos int, oldVal, newVal *Fr) {
	if oldVal.Equal(newVal) {
		return
	}
	var delta Fr
	delta.Sub(newVal, oldVal)
	deltaPoint := committer.ScalarMul(delta, pos)
	commitment.Add(commitment, &deltaPoint)
}

func isFreshExtension(s *stemNode) bool {
	return !s.seeded
}

func markExtensionSeeded(s *stemNode) {
	s.seeded = true
}
