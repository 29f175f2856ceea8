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

package verkledb

import "sync"

// MemoryDB is a process-memory Database, the reference backend used by
// tests. Every method takes its mutex, so it is safe for concurrent use;
// reads may run concurrently with each other, writes are exclusive.
type MemoryDB struct {
	mu       sync.RWMutex
	stems    map[[31]byte]StemMeta
	branches map[string]BranchMeta
	children map[string]map[byte]struct{}
	leaves   map[[31]byte]map[byte][]byte
	stemAt   map[string][31]byte // path -> stem, for branch children that are stems
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		stems:    make(map[[31]byte]StemMeta),
		branches: make(map[string]BranchMeta),
		children: make(map[string]map[byte]struct{}),
		leaves:   make(map[[31]byte]map[byte][]byte),
		stemAt:   make(map[string][31]byte),
	}
}

func (m *MemoryDB) GetStemMeta(stem [31]byte) (StemMeta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta, ok := m.stems[stem]
	return meta, ok
}

func (m *MemoryDB) GetBranchMeta(path []byte) (BranchMeta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta, ok := m.branches[string(path)]
	return meta, ok
}

func (m *MemoryDB) GetBranchChildren(path []byte) (map[byte]struct{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	set, ok := m.children[string(path)]
	if !ok {
		return nil, false
	}
	out := make(map[byte]struct{}, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out, true
}

func (m *MemoryDB) GetBranchChild(path []byte, index byte) (bool, [31]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	childPath := append(append([]byte(nil), path...), index)
	if stem, ok := m.stemAt[string(childPath)]; ok {
		return true, stem, true
	}
	if _, ok := m.branches[string(childPath)]; ok {
		return false, [31]byte{}, true
	}
	return false, [31]byte{}, false
}

func (m *MemoryDB) GetStemChildren(stem [31]byte) (map[byte]struct{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	present, ok := m.leaves[stem]
	if !ok {
		return nil, false
	}
	out := make(map[byte]struct{}, len(present))
	for k := range present {
		out[k] = struct{}{}
	}
	return out, true
}

func (m *MemoryDB) GetLeaf(stem [31]byte, suffix byte) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	byStem, ok := m.leaves[stem]
	if !ok {
		return nil, false
	}
	v, ok := byStem[suffix]
	return v, ok
}

func (m *MemoryDB) RootIsMissing() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.branches[""]
	return !ok
}

func (m *MemoryDB) InsertLeaf(stem [31]byte, suffix byte, value []byte) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	byStem, ok := m.leaves[stem]
	if !ok {
		byStem = make(map[byte][]byte)
		m.leaves[stem] = byStem
	}
	old, existed := byStem[suffix]
	byStem[suffix] = value
	return old, existed
}

func (m *MemoryDB) InsertStem(stem [31]byte, meta StemMeta) (StemMeta, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, existed := m.stems[stem]
	m.stems[stem] = meta
	return old, existed
}

func (m *MemoryDB) InsertBranch(path []byte, meta BranchMeta) (BranchMeta, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, existed := m.branches[string(path)]
	m.branches[string(path)] = meta
	if len(path) > 0 {
		// Record the branch among its parent's children, as
		// AddStemAsBranchChild does for stems.
		parent := string(path[:len(path)-1])
		set, ok := m.children[parent]
		if !ok {
			set = make(map[byte]struct{})
			m.children[parent] = set
		}
		set[path[len(path)-1]] = struct{}{}
	}
	return old, existed
}

func (m *MemoryDB) AddStemAsBranchChild(path []byte, stem [31]byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	parent := path[:len(path)-1]
	index := path[len(path)-1]
	set, ok := m.children[string(parent)]
	if !ok {
		set = make(map[byte]struct{})
		m.children[string(parent)] = set
	}
	_, existed := set[index]
	set[index] = struct{}{}
	m.stemAt[string(path)] = stem
	return existed
}

func (m *MemoryDB) Flush() error {
	return nil
}
