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

// Fr and Element are re-exported so callers building proofs or storage
// adapters never need to import internal/ipa directly.
type (
	Fr      = ipa.Fr
	Element = ipa.Element
)

// Key is a 32-byte trie key: a 31-byte stem followed by a 1-byte suffix
// (§3, §9's resolved open question).
type Key [32]byte

// Stem returns the 31-byte stem prefix of k.
func (k Key) Stem() [31]byte {
	var s [31]byte
	copy(s[:], k[:31])
	return s
}

// Suffix returns the trailing suffix byte of k.
func (k Key) Suffix() byte {
	return k[31]
}

// Value is a 32-byte stored value.
type Value [32]byte
