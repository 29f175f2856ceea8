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

// VerifyProofMultiExp is the multiexp verifier variant of §4.6: instead of
// folding G and b round by round, it expands the L per-round challenges
// into the n fold coefficients directly and checks the whole relation as
// one multiscalar multiplication over the original basis. It accepts the
// same inputs as VerifyProof and must agree with it on every proof.
func VerifyProofMultiExp(transcript *Transcript, crs *CRS, commitment Element, b []Fr, evalPoint, result Fr, proof *Proof) bool {
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
	challengesInv := make([]Fr, len(proof.L))
	for i := range proof.L {
		transcript.AppendPoint("L", &proof.L[i])
		transcript.AppendPoint("R", &proof.R[i])
		challenges[i] = transcript.ChallengeScalar("x")
		challengesInv[i].Inverse(&challenges[i])

		xInvL := proof.L[i]
		xInvL.ScalarMul(&xInvL, &challengesInv[i])
		xR := proof.R[i]
		xR.ScalarMul(&xR, &challenges[i])
		current.Add(&current, &xInvL)
		current.Add(&current, &xR)
	}

	u := foldCoefficients(challengesInv)

	gFinal := msmAdd(u, crs.G[:n])
	gFinal.ScalarMul(&gFinal, &proof.A)

	bFinal := innerProduct(u, b)
	var ab Fr
	ab.Mul(&proof.A, &bFinal)
	qFinal := q
	qFinal.ScalarMul(&qFinal, &ab)

	var expected Element
	expected.Add(&gFinal, &qFinal)

	return expected.Equal(&current)
}

// foldCoefficients expands L round challenge inverses into the 2^L
// per-basis-point coefficients that a sequential fold (as VerifyProof
// performs round by round) would have applied to G. The first derived
// challenge governs the most-significant split, so the doubling runs over
// inv in reverse.
func foldCoefficients(inv []Fr) []Fr {
	u := make([]Fr, 1, 1<<uint(len(inv)))
	u[0].SetOne()
	for r := len(inv) - 1; r >= 0; r-- {
		next := make([]Fr, len(u)*2)
		copy(next, u)
		for i, v := range u {
			next[len(u)+i].Mul(&v, &inv[r])
		}
		u = next
	}
	return u
}
