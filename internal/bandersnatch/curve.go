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

package bandersnatch

import "math/big"

// qModulus is the bandersnatch base field: the BLS12-381 scalar field
// prime. Curve coordinates live here; it is distinct from rModulus, the
// order of the prime-order subgroup scalars (Fr) range over.
var qModulus, _ = new(big.Int).SetString("52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// Twisted Edwards curve parameters: a*x^2 + y^2 = 1 + d*x^2*y^2.
var (
	curveA = big.NewInt(-5)
	curveD *big.Int
)

func init() {
	curveA.Mod(curveA, qModulus)
	curveD, _ = new(big.Int).SetString("45022363124591815672509500913686876175488063829319466900776701791074614335719", 10)
	curveD.Mod(curveD, qModulus)
}

// PointAffine is an affine point (x, y) on the bandersnatch curve. The
// banderwagon quotient group identifies (x, y) with its negation
// (-x, y); Normalize picks the canonical representative of that pair.
type PointAffine struct {
	x, y big.Int
}

// Identity returns the neutral element (0, 1).
func Identity() PointAffine {
	var p PointAffine
	p.y.SetInt64(1)
	return p
}

func (p *PointAffine) Set(o *PointAffine) *PointAffine {
	p.x.Set(&o.x)
	p.y.Set(&o.y)
	return p
}

func (p *PointAffine) IsIdentity() bool {
	return len(p.x.Bits()) == 0 && p.y.Cmp(big.NewInt(1)) == 0
}

// Add implements the twisted Edwards unified addition formula.
func (p *PointAffine) Add(a, b *PointAffine) *PointAffine {
	x1, y1 := &a.x, &a.y
	x2, y2 := &b.x, &b.y

	var x1y2, y1x2, numX big.Int
	x1y2.Mul(x1, y2)
	y1x2.Mul(y1, x2)
	numX.Add(&x1y2, &y1x2)
	numX.Mod(&numX, qModulus)

	var y1y2, ax1x2, numY big.Int
	y1y2.Mul(y1, y2)
	ax1x2.Mul(curveA, new(big.Int).Mul(x1, x2))
	numY.Sub(&y1y2, &ax1x2)
	numY.Mod(&numY, qModulus)

	var dx1x2y1y2 big.Int
	dx1x2y1y2.Mul(curveD, x1)
	dx1x2y1y2.Mul(&dx1x2y1y2, x2)
	dx1x2y1y2.Mul(&dx1x2y1y2, y1)
	dx1x2y1y2.Mul(&dx1x2y1y2, y2)
	dx1x2y1y2.Mod(&dx1x2y1y2, qModulus)

	var denomX big.Int
	denomX.Add(big.NewInt(1), &dx1x2y1y2)
	denomX.Mod(&denomX, qModulus)
	denomX.ModInverse(&denomX, qModulus)

	var denomY big.Int
	denomY.Sub(big.NewInt(1), &dx1x2y1y2)
	denomY.Mod(&denomY, qModulus)
	denomY.ModInverse(&denomY, qModulus)

	var x3, y3 big.Int
	x3.Mul(&numX, &denomX)
	x3.Mod(&x3, qModulus)
	y3.Mul(&numY, &denomY)
	y3.Mod(&y3, qModulus)

	// Hand the fresh results over instead of Set-ing into p's existing
	// storage, which a shallow copy of p (e.g. ScalarMul's addend) may share.
	p.x, p.y = x3, y3
	return p
}

func (p *PointAffine) Neg(a *PointAffine) *PointAffine {
	var negX big.Int
	negX.Neg(&a.x)
	negX.Mod(&negX, qModulus)
	var y big.Int
	y.Set(&a.y)
	p.x, p.y = negX, y
	return p
}

// ScalarMul computes s*P via double-and-add over the bits of s.
func (p *PointAffine) ScalarMul(base *PointAffine, s *Fr) *PointAffine {
	acc := Identity()
	addend := *base
	n := s.v
	for _, word := range bitsLE(&n) {
		if word {
			acc.Add(&acc, &addend)
		}
		addend.Add(&addend, &addend)
	}
	*p = acc
	return p
}

func bitsLE(n *big.Int) []bool {
	bits := make([]bool, n.BitLen())
	for i := range bits {
		bits[i] = n.Bit(i) == 1
	}
	return bits
}

// Equal reports whether p and o represent the same banderwagon element,
// i.e. are equal as curve points or as negations of one another.
func (p *PointAffine) Equal(o *PointAffine) bool {
	if p.x.Cmp(&o.x) == 0 && p.y.Cmp(&o.y) == 0 {
		return true
	}
	var negX big.Int
	negX.Neg(&o.x)
	negX.Mod(&negX, qModulus)
	return p.x.Cmp(&negX) == 0 && p.y.Cmp(&o.y) == 0
}

// Normalize picks the canonical representative of {P, -P}: the one whose
// x-coordinate is the smaller of {x, q-x} as an unsigned integer. This is
// what gives the quotient group a well-defined 32-byte encoding.
func (p *PointAffine) Normalize() *PointAffine {
	var negX big.Int
	negX.Neg(&p.x)
	negX.Mod(&negX, qModulus)
	if negX.Cmp(&p.x) < 0 {
		p.Neg(p)
	}
	return p
}

// Bytes returns the canonical 32-byte big-endian encoding of the
// quotient-group element: the normalized x-coordinate. This is the
// "canonical banderwagon encoding" of §6.
func (p *PointAffine) Bytes() [32]byte {
	norm := *p
	norm.Normalize()
	var out [32]byte
	be := norm.x.Bytes()
	copy(out[32-len(be):], be)
	return out
}

// TryReduceToElement attempts to recover a curve point from 32 bytes
// interpreted as a candidate x-coordinate, per §4.1. It returns false if
// no point on the curve has that x-coordinate.
func TryReduceToElement(buf []byte) (PointAffine, bool) {
	var x big.Int
	x.SetBytes(buf)
	x.Mod(&x, qModulus)

	// y^2 = (1 - a*x^2) / (1 - d*x^2)
	var x2 big.Int
	x2.Mul(&x, &x)
	x2.Mod(&x2, qModulus)

	var num big.Int
	num.Mul(curveA, &x2)
	num.Sub(big.NewInt(1), &num)
	num.Mod(&num, qModulus)

	var den big.Int
	den.Mul(curveD, &x2)
	den.Sub(big.NewInt(1), &den)
	den.Mod(&den, qModulus)
	if den.Sign() == 0 {
		return PointAffine{}, false
	}
	den.ModInverse(&den, qModulus)

	var y2 big.Int
	y2.Mul(&num, &den)
	y2.Mod(&y2, qModulus)

	y, ok := sqrtMod(&y2, qModulus)
	if !ok {
		return PointAffine{}, false
	}

	var p PointAffine
	p.x.Set(&x)
	p.y.Set(y)
	if !p.isInPrimeSubgroup() {
		// y and q-y are the curve equation's two roots for this x; they
		// are generally unrelated points (not the curve's own negation,
		// which flips x, not y) and can sit in different cosets of the
		// order-r subgroup, so both must be tried before rejecting x.
		var otherY big.Int
		otherY.Sub(qModulus, y)
		p.y.Set(&otherY)
		if !p.isInPrimeSubgroup() {
			return PointAffine{}, false
		}
	}
	p.Normalize()
	return p, true
}

// isInPrimeSubgroup reports whether r*p is the identity, i.e. whether p
// lies in the order-r subgroup banderwagon draws its elements from.
// TryReduceToElement's curve equation admits points on the curve's full
// cofactor-h group; only this check gives §4.1's "unconditional subgroup
// safety", since one of {(x,y), (x,q-y)} may sit in a different coset.
func (p *PointAffine) isInPrimeSubgroup() bool {
	order := Fr{v: *rModulus}
	var q PointAffine
	q.ScalarMul(p, &order)
	return q.IsIdentity()
}

// sqrtMod computes a square root of a modulo the prime p using the
// Tonelli-Shanks algorithm, returning ok=false if a is a non-residue.
func sqrtMod(a, p *big.Int) (*big.Int, bool) {
	if a.Sign() == 0 {
		return big.NewInt(0), true
	}

	// Euler's criterion.
	var pm1over2 big.Int
	pm1over2.Sub(p, big.NewInt(1))
	pm1over2.Rsh(&pm1over2, 1)
	var legendre big.Int
	legendre.Exp(a, &pm1over2, p)
	if legendre.Cmp(big.NewInt(1)) != 0 {
		return nil, false
	}

	// Fast path: p ≡ 3 (mod 4).
	var pmod4 big.Int
	pmod4.Mod(p, big.NewInt(4))
	if pmod4.Cmp(big.NewInt(3)) == 0 {
		var exp big.Int
		exp.Add(p, big.NewInt(1))
		exp.Rsh(&exp, 2)
		var r big.Int
		r.Exp(a, &exp, p)
		return &r, true
	}

	// General Tonelli-Shanks.
	q := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	var z big.Int
	z.SetInt64(2)
	for {
		var ls big.Int
		ls.Exp(&z, &pm1over2, p)
		if ls.Cmp(new(big.Int).Sub(p, big.NewInt(1))) == 0 {
			break
		}
		z.Add(&z, big.NewInt(1))
	}

	m := s
	c := new(big.Int).Exp(&z, q, p)
	t := new(big.Int).Exp(a, q, p)
	qp1over2 := new(big.Int).Add(q, big.NewInt(1))
	qp1over2.Rsh(qp1over2, 1)
	r := new(big.Int).Exp(a, qp1over2, p)

	for {
		if t.Cmp(big.NewInt(1)) == 0 {
			return r, true
		}
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(big.NewInt(1)) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
			if i == m {
				return nil, false
			}
		}
		b := new(big.Int).Exp(c, new(big.Int).Lsh(big.NewInt(1), uint(m-i-1)), p)
		m = i
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
}
