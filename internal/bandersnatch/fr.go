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

// Package bandersnatch implements the scalar field and twisted Edwards
// curve group that the banderwagon construction quotients by point
// negation. It plays the role that github.com/crate-crypto/go-ipa's
// bandersnatch/fr and bandersnatch packages play for the teacher: the
// rest of this module never touches math/big directly, it goes through
// Fr and PointAffine.
package bandersnatch

import "math/big"

// rModulus is the prime order of the bandersnatch scalar field, i.e. the
// size of the prime-order subgroup that banderwagon exposes as G. This is
// the scalar field in which every commitment coefficient, challenge, and
// opening value of the IPA protocol lives.
var rModulus, _ = new(big.Int).SetString("13108968793781547619861935127046491459309155893440570251786403306729687672801", 10)

// Fr is an element of the bandersnatch scalar field, reduced modulo
// rModulus. The zero value is the field element zero.
type Fr struct {
	v big.Int
}

func NewFr() *Fr {
	return &Fr{}
}

func (z *Fr) SetZero() *Fr {
	z.v.SetInt64(0)
	return z
}

func (z *Fr) SetOne() *Fr {
	z.v.SetInt64(1)
	return z
}

func (z *Fr) SetUint64(v uint64) *Fr {
	z.v.SetUint64(v)
	return z
}

// Set reduces x modulo rModulus and stores the result in z.
func (z *Fr) Set(x *big.Int) *Fr {
	z.v.Mod(x, rModulus)
	return z
}

func (z *Fr) SetFr(x *Fr) *Fr {
	z.v.Set(&x.v)
	return z
}

// SetBytes interprets buf as a big-endian integer and reduces it mod r.
func (z *Fr) SetBytes(buf []byte) *Fr {
	var x big.Int
	x.SetBytes(buf)
	return z.Set(&x)
}

// SetBytesLE interprets buf as a little-endian integer and reduces it mod r.
func (z *Fr) SetBytesLE(buf []byte) *Fr {
	rev := make([]byte, len(buf))
	for i, b := range buf {
		rev[len(buf)-1-i] = b
	}
	return z.SetBytes(rev)
}

// Bytes returns the canonical 32-byte little-endian encoding of z, the
// wire format mandated by §6 of the spec ("field elements: 32-byte
// little-endian canonical reduction mod r").
func (z *Fr) Bytes() [32]byte {
	var out [32]byte
	be := z.v.Bytes()
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func (z *Fr) Add(x, y *Fr) *Fr {
	var t big.Int
	t.Add(&x.v, &y.v)
	z.v.Mod(&t, rModulus)
	return z
}

func (z *Fr) Sub(x, y *Fr) *Fr {
	var t big.Int
	t.Sub(&x.v, &y.v)
	z.v.Mod(&t, rModulus)
	return z
}

func (z *Fr) Neg(x *Fr) *Fr {
	var zero big.Int
	return z.Sub(&Fr{v: zero}, x)
}

func (z *Fr) Mul(x, y *Fr) *Fr {
	var t big.Int
	t.Mul(&x.v, &y.v)
	z.v.Mod(&t, rModulus)
	return z
}

// Inverse sets z to the modular inverse of x. x must be non-zero.
func (z *Fr) Inverse(x *Fr) *Fr {
	z.v.ModInverse(&x.v, rModulus)
	return z
}

func (z *Fr) Div(x, y *Fr) *Fr {
	var inv Fr
	inv.Inverse(y)
	return z.Mul(x, &inv)
}

func (z *Fr) Equal(x *Fr) bool {
	return z.v.Cmp(&x.v) == 0
}

func (z *Fr) IsZero() bool {
	return len(z.v.Bits()) == 0
}

// Exp sets z = x^n mod r.
func (z *Fr) Exp(x *Fr, n uint64) *Fr {
	var e big.Int
	e.SetUint64(n)
	z.v.Exp(&x.v, &e, rModulus)
	return z
}

func One() Fr {
	var f Fr
	f.SetOne()
	return f
}

func Zero() Fr {
	return Fr{}
}

// BigInt exposes the underlying residue, for code that legitimately needs
// to cross from Fr into a generic big.Int context (e.g. hash-to-field
// reduction before SetBytes).
func (z *Fr) BigInt() *big.Int {
	return new(big.Int).Set(&z.v)
}
