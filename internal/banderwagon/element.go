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

// Package banderwagon is the prime-order group G used throughout the
// trie: a quotient of the bandersnatch twisted Edwards curve by point
// negation, giving unconditional subgroup safety and a canonical
// 32-byte encoding (§4.1). It plays the role of
// github.com/crate-crypto/go-ipa/banderwagon for this module.
package banderwagon

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"

	"github.com/vrk-labs/verkle-ipa/internal/bandersnatch"
)

// ErrInvalidEncoding is returned by SetBytes when the input does not
// decode to a valid group element, per §7's InvalidEncoding error kind.
var ErrInvalidEncoding = errors.New("banderwagon: invalid encoding")

type Fr = bandersnatch.Fr

// Element is a group element of G. The zero value is the point (0, 0),
// which is not the identity; use Identity() for the neutral element.
type Element struct {
	p bandersnatch.PointAffine
}

func Identity() Element {
	return Element{p: bandersnatch.Identity()}
}

func (e *Element) Set(o *Element) *Element {
	e.p.Set(&o.p)
	return e
}

func (e *Element) IsZero() bool {
	return e.p.IsIdentity()
}

func (e *Element) Add(a, b *Element) *Element {
	e.p.Add(&a.p, &b.p)
	return e
}

func (e *Element) Sub(a, b *Element) *Element {
	var negB Element
	negB.p.Neg(&b.p)
	e.p.Add(&a.p, &negB.p)
	return e
}

func (e *Element) Neg(a *Element) *Element {
	e.p.Neg(&a.p)
	return e
}

func (e *Element) ScalarMul(a *Element, s *Fr) *Element {
	e.p.ScalarMul(&a.p, s)
	return e
}

func (e *Element) Equal(o *Element) bool {
	return e.p.Equal(&o.p)
}

// Bytes returns the canonical 32-byte encoding of e.
func (e *Element) Bytes() [32]byte {
	return e.p.Bytes()
}

// SetBytes decodes the canonical 32-byte encoding of a group element.
func (e *Element) SetBytes(buf []byte) error {
	if len(buf) != 32 {
		return ErrInvalidEncoding
	}
	p, ok := bandersnatch.TryReduceToElement(buf)
	if !ok {
		return ErrInvalidEncoding
	}
	e.p = p
	return nil
}

// TryReduceToElement is the public decode primitive of §4.1: it attempts
// to recover a point from arbitrary 32 bytes treated as a candidate
// x-coordinate, returning ok=false when no point exists for them. Unlike
// SetBytes it does not require the input to already be a normalized
// encoding, which is what makes it useful to callers deriving elements
// from arbitrary hash output (e.g. address-to-key derivation).
func TryReduceToElement(buf []byte) (Element, bool) {
	p, ok := bandersnatch.TryReduceToElement(buf)
	if !ok {
		return Element{}, false
	}
	return Element{p: p}, true
}

// MapToScalarField maps a group element into Fr deterministically, for
// use as a child value in a parent's evaluation vector (§4.1, §4.8). The
// mapping is simply: serialize canonically, then reduce mod r.
func (e *Element) MapToScalarField(out *Fr) {
	b := e.Bytes()
	out.SetBytes(b[:])
}

// MultiMapToScalarField batches MapToScalarField over many elements,
// matching github.com/crate-crypto/go-ipa's banderwagon.MultiMapToScalarField:
// a branch recomputing its full 256-entry evaluation vector from scratch
// does so in one batched call instead of looping one point at a time.
func MultiMapToScalarField(out []*Fr, elements []*Element) {
	for i, el := range elements {
		el.MapToScalarField(out[i])
	}
}

// HashToCurve derives a group element deterministically from a label via
// try-and-increment SHA-256 hashing, the same technique CRS generation
// uses (§4.3): it is used to derive fixed, process-wide distinguished
// points (such as the IPA's Q generator) from a domain-separation label
// rather than a numeric index.
func HashToCurve(label []byte) Element {
	for i := uint64(0); ; i++ {
		h := sha256.New()
		h.Write(label)
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], i)
		h.Write(idx[:])
		digest := h.Sum(nil)
		if el, ok := TryReduceToElement(digest); ok {
			return el
		}
	}
}
