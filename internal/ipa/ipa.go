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

package ipa

import "github.com/vrk-labs/verkle-ipa/internal/banderwagon"

// Proof is the non-interactive inner-product argument output of §4.6:
// log2(n) (L, R) pairs plus a final scalar.
type Proof struct {
	L, R []Element
	A    Fr
}

// CreateProof runs the IPA prover. a is the witness vector, b is the
// public vector such that C = <a,G> + <a,b>*Q, z/result bind the
// evaluation point and claimed output into the transcript and into Q.
func CreateProof(transcript *Transcript, crs *CRS, commitment Element, a, b []Fr, evalPoint, result Fr) *Proof {
	n := len(a)
	if n != len(b) || n&(n-1) != 0 {
		panic("ipa: vector length must be a power of two and match b")
	}

	transcript.AppendPoint("C", &commitment)
	transcript.AppendScalar("input point", &evalPoint)
	transcript.AppendScalar("output point", &result)
	w := transcript.ChallengeScalar("w")

	q := crs.Q
	q.ScalarMul(&q, &w)

	g := append([]Element(nil), crs.G[:n]...)
	a = append([]Fr(nil), a...)
	b = append([]Fr(nil), b...)

	var ls, rs []Element

	for len(a) > 1 {
		half := len(a) / 2
		aL, aR := a[:half], a[half:]
		bL, bR := b[:half], b[half:]
		gL, gR := g[:half], g[half:]

		zL := innerProduct(aL, bR)
		zR := innerProduct(aR, bL)

		L := msmAdd(aL, gR)
		qzL := q
		qzL.ScalarMul(&qzL, &zL)
		L.Add(&L, &qzL)

		R := msmAdd(aR, gL)
		qzR := q
		qzR.ScalarMul(&qzR, &zR)
		R.Add(&R, &qzR)

		transcript.AppendPoint("L", &L)
		transcript.AppendPoint("R", &R)
		x := transcript.ChallengeScalar("x")

		var xInv Fr
		xInv.Inverse(&x)

		newA := make([]Fr, half)
		newB := make([]Fr, half)
		newG := make([]Element, half)
		for i := 0; i < half; i++ {
			var t Fr
			t.Mul(&x, &aR[i])
			newA[i].Add(&aL[i], &t)

			t.Mul(&xInv, &bR[i])
			newB[i].Add(&bL[i], &t)

			term := gR[i]
			term.ScalarMul(&term, &xInv)
			newG[i].Add(&gL[i], &term)
		}

		a, b, g = newA, newB, newG
		ls = append(ls, L)
		rs = append(rs, R)
	}

	return &Proof{L: ls, R: rs, A: a[0]}
}

// VerifyProof runs the linear IPA verifier: it recomputes every
// challenge, folds b and G directly, and checks one group equality.
func VerifyProof(transcript *Transcript, crs *CRS, commitment Element, b []Fr, evalPoint, result Fr, proof *Proof) bool {
	n := len(b)
	if n&(n-1) != 0 || len(proof.L) != log2(n) || len(proof.R) != log2(n) {
		return false
	}

	transcript.AppendPoint("C", &commitment)
	transcript.AppendScalar("input point", &evalPoint)
	transcript.AppendScalar("output point", &result)
	w := transcript.ChallengeScalar("w")

	q := crs.Q
	q.ScalarMul(&q, &w)

	current := commitment
	qResult := q
	qResult.ScalarMul(&qResult, &result)
	current.Add(&current, &qResult)

	challenges := make([]Fr, len(proof.L))
	for i := range proof.L {
		transcript.AppendPoint("L", &proof.L[i])
		transcript.AppendPoint("R", &proof.R[i])
		challenges[i] = transcript.ChallengeScalar("x")
	}

	g := append([]Element(nil), crs.G[:n]...)
	bCur := append([]Fr(nil), b...)
	for round, x := range challenges {
		var xInv Fr
		xInv.Inverse(&x)

		xInvL := proof.L[round]
		xInvL.ScalarMul(&xInvL, &xInv)
		xR := proof.R[round]
		xR.ScalarMul(&xR, &x)
		current.Add(&current, &xInvL)
		current.Add(&current, &xR)

		half := len(g) / 2
		newG := make([]Element, half)
		newB := make([]Fr, half)
		for i := 0; i < half; i++ {
			term := g[half+i]
			term.ScalarMul(&term, &xInv)
			newG[i].Add(&g[i], &term)

			var t Fr
			t.Mul(&xInv, &bCur[half+i])
			newB[i].Add(&bCur[i], &t)
		}
		g, bCur = newG, newB
	}

	expectedFinalB := bCur[0]

	var expected Element
	gFinal := g[0]
	gFinal.ScalarMul(&gFinal, &proof.A)
	var ab Fr
	ab.Mul(&proof.A, &expectedFinalB)
	qFinal := q
	qFinal.ScalarMul(&qFinal, &ab)
	expected.Add(&gFinal, &qFinal)

	return expected.Equal(&current)
}

func innerProduct(a, b []Fr) Fr {
	var acc Fr
	for i := range a {
		var t Fr
		t.Mul(&a[i], &b[i])
		acc.Add(&acc, &t)
	}
	return acc
}

func msmAdd(scalars []Fr, bases []Element) Element {
	acc := Identity()
	for i := range scalars {
		term := bases[i]
		term.ScalarMul(&term, &scalars[i])
		acc.Add(&acc, &term)
	}
	return acc
}

func Identity() Element {
	return banderwagon.Identity()
}

func log2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}
