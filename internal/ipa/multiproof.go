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

// ProverQuery is one (commitment, evaluation point, claimed value) triple
// the prover wants to aggregate into a single multi-point opening (§4.7).
// Point is a domain index, since every commitment opened by the trie is a
// vector commitment over D = {0, ..., NodeWidth-1}.
type ProverQuery struct {
	Commitment Element
	Poly       LagrangeBasis
	Point      int
	Result     Fr
}

// VerifierQuery is the public half of a ProverQuery: everything the
// verifier is given without the underlying polynomial.
type VerifierQuery struct {
	Commitment Element
	Point      int
	Result     Fr
}

// MultiProof is the output of the multi-point opening protocol: the
// commitment to the aggregated quotient polynomial plus a single IPA
// proof over the combined evaluation claim.
type MultiProof struct {
	D     Element
	Proof *Proof
}

// CreateMultiProof aggregates many (commitment, point, value) evaluation
// claims against a single IPA call, following the r/t-challenge
// aggregation of §4.7. It is grounded on the teacher's calcR/calcT/calcQ
// KZG-era aggregation in proof.go, generalized from two separately
// combined KZG openings (pi, rho, folded via calcQ's random q) into one
// combined IPA opening of E-D, the way IPA-based multiproofs forgo the
// pairing trick KZG needs.
func CreateMultiProof(transcript *Transcript, crs *CRS, committer Committer, weights *PrecomputedWeights, queries []ProverQuery) *MultiProof {
	n := crs.N

	for i := range queries {
		q := &queries[i]
		transcript.AppendPoint("C", &q.Commitment)
		zi := fr(uint64(q.Point))
		transcript.AppendScalar("z", &zi)
		transcript.AppendScalar("y", &q.Result)
	}
	r := transcript.ChallengeScalar("r")

	g := make([]Fr, n)
	powR := fr(1)
	for i := range queries {
		q := &queries[i]
		quotient := weights.DivideOnDomain(q.Poly.Evals, q.Point)
		for j := 0; j < n; j++ {
			var term Fr
			term.Mul(&powR, &quotient[j])
			g[j].Add(&g[j], &term)
		}
		powR.Mul(&powR, &r)
	}

	d := committer.CommitLagrange(g)
	transcript.AppendPoint("D", &d)
	t := transcript.ChallengeScalar("t")

	h := make([]Fr, n)
	powR.SetOne()
	for i := range queries {
		q := &queries[i]
		zi := fr(uint64(q.Point))
		var denom Fr
		denom.Sub(&t, &zi)
		var coeff Fr
		coeff.Div(&powR, &denom)
		for j := 0; j < n; j++ {
			var term Fr
			term.Mul(&coeff, &q.Poly.Evals[j])
			h[j].Add(&h[j], &term)
		}
		powR.Mul(&powR, &r)
	}

	e := committer.CommitLagrange(h)
	transcript.AppendPoint("E", &e)

	var eMinusD Element
	eMinusD.Sub(&e, &d)

	hMinusG := make([]Fr, n)
	for j := 0; j < n; j++ {
		hMinusG[j].Sub(&h[j], &g[j])
	}
	result := weights.EvaluateOutsideDomain(hMinusG, &t)

	b := weights.BarycentricCoefficients(&t)

	proof := CreateProof(transcript, crs, eMinusD, hMinusG, b, t, result)
	return &MultiProof{D: d, Proof: proof}
}

// CheckMultiProof verifies a MultiProof against the public queries. It
// reconstructs E homomorphically from the query commitments (E = sum
// r^i/(t-z_i) * C_i, by linearity of vector commitments) instead of
// requiring the verifier to see h's evaluations, and reconstructs the
// aggregated evaluation claim purely from the public z_i/y_i/r/t, since
// h(t) - g(t) collapses algebraically to sum r^i*y_i/(t-z_i).
func CheckMultiProof(transcript *Transcript, crs *CRS, weights *PrecomputedWeights, queries []VerifierQuery, proof *MultiProof) bool {
	for i := range queries {
		q := &queries[i]
		transcript.AppendPoint("C", &q.Commitment)
		zi := fr(uint64(q.Point))
		transcript.AppendScalar("z", &zi)
		transcript.AppendScalar("y", &q.Result)
	}
	r := transcript.ChallengeScalar("r")

	transcript.AppendPoint("D", &proof.D)
	t := transcript.ChallengeScalar("t")

	e := Identity()
	result := Fr{}
	powR := fr(1)
	for i := range queries {
		q := &queries[i]
		zi := fr(uint64(q.Point))
		var denom Fr
		denom.Sub(&t, &zi)
		var coeff Fr
		coeff.Div(&powR, &denom)

		term := q.Commitment
		term.ScalarMul(&term, &coeff)
		e.Add(&e, &term)

		var yTerm Fr
		yTerm.Mul(&coeff, &q.Result)
		result.Add(&result, &yTerm)

		powR.Mul(&powR, &r)
	}
	transcript.AppendPoint("E", &e)

	var eMinusD Element
	eMinusD.Sub(&e, &proof.D)

	b := weights.BarycentricCoefficients(&t)

	return VerifyProof(transcript, crs, eMinusD, b, t, result, proof.Proof)
}
