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

// Package ipa implements the Pedersen/Lagrange commitment layer, the
// inner-product argument, and the multi-point opening protocol (§4.3 -
// §4.7). It plays the role of github.com/crate-crypto/go-ipa's own `ipa`
// package for this module, grounded instead on the Rust source that
// package was itself built from
// (_examples/original_source/ipa-multipoint/src/{crs,committer,math_utils}.rs)
// and on the teacher's KZG-era equivalents (config.go, proof.go) which
// implement the identical domain/quotient math one commitment scheme
// over.
package ipa

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/vrk-labs/verkle-ipa/internal/banderwagon"
)

// NodeWidth is the trie's fixed branching factor and the CRS/IPA vector
// length. §1's non-goals fix this: arbitrary branching factors are not
// supported.
const NodeWidth = 256

// pedersenSeed is the fixed seed for CRS generation (§4.3).
const pedersenSeed = "eth_verkle_oct_2021"

type Fr = banderwagon.Fr
type Element = banderwagon.Element

// CRS is the structured reference string: a fixed basis G_0..G_{n-1} and
// a distinguished generator Q.
type CRS struct {
	N int
	G []Element
	Q Element
}

var (
	crsOnce sync.Once
	crs     *CRS
)

// GetCRS returns the process-wide CRS singleton, generated deterministically
// on first access (§5: "the CRS ... are immutable process-wide singletons
// constructed on first access; they are safe to share across threads
// without synchronization").
func GetCRS() *CRS {
	crsOnce.Do(func() {
		crs = NewCRS(NodeWidth, pedersenSeed)
	})
	return crs
}

// NewCRS deterministically derives n basis points from seed via
// try-and-increment SHA-256 hashing (§4.3), asserting no duplicates, plus
// a distinguished Q derived from a disjoint label so it can never
// coincide with a basis point.
func NewCRS(n int, seed string) *CRS {
	g := make([]Element, 0, n)
	seen := make(map[[32]byte]struct{}, n)
	for i := uint64(0); len(g) < n; i++ {
		h := sha256.New()
		h.Write([]byte(seed))
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], i)
		h.Write(idx[:])
		digest := h.Sum(nil)

		el, ok := banderwagon.TryReduceToElement(digest)
		if !ok {
			continue
		}
		b := el.Bytes()
		if _, dup := seen[b]; dup {
			panic("ipa: crs has duplicated points")
		}
		seen[b] = struct{}{}
		g = append(g, el)
	}

	return &CRS{
		N: n,
		G: g,
		Q: banderwagon.HashToCurve([]byte(seed + "::Q")),
	}
}
