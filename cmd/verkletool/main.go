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

// Command verkletool drives the trie from the shell: it inserts a
// deterministic sequence of seeded keys (§8's step-test vector
// construction) and prints the resulting root commitment, for manual
// sanity checks and for reproducing the test vectors outside of `go
// test`.
package main

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"

	verkle "github.com/vrk-labs/verkle-ipa"
)

func seededKey(i uint64, seed [32]byte) verkle.Key {
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[:8], i)
	copy(buf[8:], seed[:])
	digest := sha256.Sum256(buf[:])
	return verkle.Key(digest)
}

func main() {
	count := flag.Int("n", 100, "number of deterministically-seeded keys to insert")
	flag.Parse()

	t := verkle.New()
	var seed [32]byte // 32 zero bytes, per §8's step-test vector.

	for i := 0; i < *count; i++ {
		key := seededKey(uint64(i), seed)
		var value verkle.Value
		copy(value[:], key[:])
		t.Insert(key, value)
	}

	root := t.RootCommitment()
	b := root.Bytes()
	fmt.Printf("inserted %d keys\nroot commitment: %s\n", *count, hex.EncodeToString(b[:]))
}
