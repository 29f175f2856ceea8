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

// Package verkledb defines the storage facade the trie core consumes
// (§6), grounded on rust-verkle's verkle-trie::database module
// (ReadOnlyHigherDb / WriteOnlyHigherDb), and provides an in-memory
// reference implementation for tests and the CLI driver.
package verkledb

import "github.com/vrk-labs/verkle-ipa/internal/ipa"

// StemMeta is the metadata a stem (a 31-byte key prefix) carries: the
// commitments C1 (suffixes 0..127) and C2 (suffixes 128..255) and which
// of the 256 suffixes currently hold a leaf.
type StemMeta struct {
	Stem    [31]byte
	C1, C2  ipa.Element
	Present [256]bool
}

// BranchMeta is the metadata an internal branch node carries: its
// running commitment.
type BranchMeta struct {
	Commitment ipa.Element
}

// ReadOnlyHigherDb is the read side of the storage facade (§6),
// grounded on ReadOnlyHigherDb in database.rs.
type ReadOnlyHigherDb interface {
	GetStemMeta(stem [31]byte) (StemMeta, bool)
	GetBranchMeta(path []byte) (BranchMeta, bool)
	GetBranchChildren(path []byte) (map[byte]struct{}, bool)
	GetBranchChild(path []byte, index byte) (childIsStem bool, stem [31]byte, ok bool)
	GetStemChildren(stem [31]byte) (map[byte]struct{}, bool)
	GetLeaf(stem [31]byte, suffix byte) ([]byte, bool)
	RootIsMissing() bool
}

// WriteOnlyHigherDb is the write side of the storage facade (§6),
// grounded on WriteOnlyHigherDb in database.rs. Each insert returns the
// prior value at that slot, or nil/false if there was none.
type WriteOnlyHigherDb interface {
	InsertLeaf(stem [31]byte, suffix byte, value []byte) ([]byte, bool)
	InsertStem(stem [31]byte, meta StemMeta) (StemMeta, bool)
	InsertBranch(path []byte, meta BranchMeta) (BranchMeta, bool)
	AddStemAsBranchChild(path []byte, stem [31]byte) (existed bool)
}

// Flush is implemented by storage backends that buffer writes and need
// an explicit flush point, grounded on the Flush trait in database.rs
// and the teacher's FLUSH_BATCH threshold.
type Flush interface {
	Flush() error
}

// FlushBatchSize is the number of pending leaf writes a backend should
// buffer before flushing, grounded on rust-verkle's FLUSH_BATCH constant.
const FlushBatchSize = 20000

// Database is the full facade the trie core is written against.
type Database interface {
	ReadOnlyHigherDb
	WriteOnlyHigherDb
}
