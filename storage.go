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

import (
	"fmt"

	"github.com/vrk-labs/verkle-ipa/internal/verkledb"
)

// FlushTo materializes the trie's arena into db as a single batch (§5's
// storage discipline: "a flush call materializes [writes] into the
// underlying persistent store as a single batch"). The arena remains the
// trie's authoritative state; db is a write-behind sink a caller can
// reopen later via LoadFromDatabase.
func (t *Trie) FlushTo(db verkledb.WriteOnlyHigherDb) error {
	var walk func(h handle, path []byte)
	walk = func(h handle, path []byte) {
		if h == emptyHandle {
			return
		}
		n := t.arena.get(h)
		if n.kind == kindStem {
			var present [256]bool
			for suffix, v := range n.stem.values {
				if v == nil {
					continue
				}
				present[suffix] = true
				db.InsertLeaf(n.stem.stem, byte(suffix), (*v)[:])
			}
			db.InsertStem(n.stem.stem, verkledb.StemMeta{
				Stem:    n.stem.stem,
				C1:      n.stem.c1,
				C2:      n.stem.c2,
				Present: present,
			})
			if len(path) > 0 {
				db.AddStemAsBranchChild(path, n.stem.stem)
			}
			return
		}
		db.InsertBranch(path, verkledb.BranchMeta{Commitment: n.branch.commitment})
		for idx, child := range n.branch.children {
			if child == emptyHandle {
				continue
			}
			childPath := append(append([]byte(nil), path...), byte(idx))
			walk(child, childPath)
		}
	}
	walk(t.root, nil)

	if flusher, ok := db.(verkledb.Flush); ok {
		return flusher.Flush()
	}
	return nil
}

// LoadFromDatabase rehydrates a trie from a previously flushed database,
// rebuilding the arena against the process-wide Config. It is the
// counterpart to FlushTo (§5's storage discipline: the arena can always
// be reconstructed from the backing store).
func LoadFromDatabase(db verkledb.ReadOnlyHigherDb) (*Trie, error) {
	return LoadFromDatabaseWithConfig(db, GetConfig())
}

// LoadFromDatabaseWithConfig is LoadFromDatabase against an explicit
// Config, for tests that built their fixture trie with a non-default one.
func LoadFromDatabaseWithConfig(db verkledb.ReadOnlyHigherDb, cfg *Config) (*Trie, error) {
	if db.RootIsMissing() {
		return NewWithConfig(cfg), nil
	}
	t := &Trie{arena: newArena(), config: cfg}
	root, err := t.loadBranch(db, nil)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// loadBranch reconstructs the branch node rooted at path, recursing into
// every child the database records for it.
func (t *Trie) loadBranch(db verkledb.ReadOnlyHigherDb, path []byte) (handle, error) {
	meta, ok := db.GetBranchMeta(path)
	if !ok {
		return emptyHandle, fmt.Errorf("verkle: missing branch metadata at path %x", path)
	}
	h := t.arena.allocBranch()
	b := t.arena.get(h).branch
	b.commitment = meta.Commitment
	b.commitment.MapToScalarField(&b.hash)

	children, ok := db.GetBranchChildren(path)
	if !ok {
		return h, nil
	}
	for idx := range children {
		isStem, stem, ok := db.GetBranchChild(path, idx)
		if !ok {
			continue
		}
		var childHandle handle
		var err error
		if isStem {
			childHandle, err = t.loadStem(db, stem)
		} else {
			childPath := append(append([]byte(nil), path...), idx)
			childHandle, err = t.loadBranch(db, childPath)
		}
		if err != nil {
			return emptyHandle, err
		}
		b.children[idx] = childHandle
	}
	return h, nil
}

// loadStem reconstructs a stem-extension node, refolding C_ext from C1/C2
// via the same delta identity setStemValue uses when it first seeds a
// fresh extension, since the database only persists C1/C2 and not C_ext
// directly.
func (t *Trie) loadStem(db verkledb.ReadOnlyHigherDb, stem [31]byte) (handle, error) {
	meta, ok := db.GetStemMeta(stem)
	if !ok {
		return emptyHandle, fmt.Errorf("verkle: missing stem metadata for %x", stem)
	}
	h := t.arena.allocStem(stem)
	s := t.arena.get(h).stem
	s.c1 = meta.C1
	s.c2 = meta.C2
	s.c1.MapToScalarField(&s.c1HashCache)
	s.c2.MapToScalarField(&s.c2HashCache)

	var zero, one Fr
	one.SetOne()
	stemFr := stemAsFr(stem)
	applyDelta(t.config.Committer, &s.cExt, 0, &zero, &one)
	applyDelta(t.config.Committer, &s.cExt, 1, &zero, &stemFr)
	applyDelta(t.config.Committer, &s.cExt, 2, &zero, &s.c1HashCache)
	applyDelta(t.config.Committer, &s.cExt, 3, &zero, &s.c2HashCache)
	s.seeded = true
	s.cExt.MapToScalarField(&s.hash)

	for suffix, present := range meta.Present {
		if !present {
			continue
		}
		value, ok := db.GetLeaf(stem, byte(suffix))
		if !ok {
			continue
		}
		var v [32]byte
		copy(v[:], value)
		s.values[suffix] = &v
	}
	return h, nil
}
