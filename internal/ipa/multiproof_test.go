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

import "testing"

// polyFixture builds a LagrangeBasis of length n whose values are an
// easily reproduced function of seed, for use as one of several distinct
// polynomials opened together by a multi-point proof.
func polyFixture(n int, seed uint64) LagrangeBasis {
	evals := make([]Fr, n)
	for i := range evals {
		evals[i].SetUint64(seed*1000 + uint64(i)*3 + 1)
	}
	return NewLagrangeBasis(evals)
}

func buildMultiProofFixture(n int) (*CRS, *DefaultCommitter, *PrecomputedWeights, []ProverQuery, []VerifierQuery) {
	crs := testCRS(n)
	committer := NewDefaultCommitter(crs)
	weights := NewPrecomputedWeights(n)

	points := []int{0, 2, 5}
	seeds := []uint64{11, 22, 33}

	proverQueries := make([]ProverQuery, len(points))
	verifierQueries := make([]VerifierQuery, len(points))

	for i, point := range points {
		poly := polyFixture(n, seeds[i])
		commitment := committer.CommitLagrange(poly.Evals)
		result := poly.Evals[point]

		proverQueries[i] = ProverQuery{Commitment: commitment, Poly: poly, Point: point, Result: result}
		verifierQueries[i] = VerifierQuery{Commitment: commitment, Point: point, Result: result}
	}

	return crs, committer, weights, proverQueries, verifierQueries
}

func TestMultiProofRoundTrip(t *testing.T) {
	const n = 8
	crs, committer, weights, proverQueries, verifierQueries := buildMultiProofFixture(n)

	proveTranscript := NewTranscript("verkle-multiproof-test")
	multiProof := CreateMultiProof(proveTranscript, crs, committer, weights, proverQueries)

	verifyTranscript := NewTranscript("verkle-multiproof-test")
	if !CheckMultiProof(verifyTranscript, crs, weights, verifierQueries, multiProof) {
		t.Fatal("valid multi-point proof failed to verify")
	}
}

func TestMultiProofRejectsTamperedClaim(t *testing.T) {
	const n = 8
	crs, committer, weights, proverQueries, verifierQueries := buildMultiProofFixture(n)

	proveTranscript := NewTranscript("verkle-multiproof-test")
	multiProof := CreateMultiProof(proveTranscript, crs, committer, weights, proverQueries)

	var one Fr
	one.SetOne()
	verifierQueries[1].Result.Add(&verifierQueries[1].Result, &one)

	verifyTranscript := NewTranscript("verkle-multiproof-test")
	if CheckMultiProof(verifyTranscript, crs, weights, verifierQueries, multiProof) {
		t.Fatal("multi-point proof verified against a tampered claimed value")
	}
}

func TestMultiProofSerializationRoundTrip(t *testing.T) {
	const n = 8
	crs, committer, weights, proverQueries, verifierQueries := buildMultiProofFixture(n)

	transcript := NewTranscript("verkle-multiproof-test")
	multiProof := CreateMultiProof(transcript, crs, committer, weights, proverQueries)

	encoded := multiProof.Bytes()
	decoded, err := ParseMultiProof(encoded, n)
	if err != nil {
		t.Fatalf("ParseMultiProof: %v", err)
	}

	verifyTranscript := NewTranscript("verkle-multiproof-test")
	if !CheckMultiProof(verifyTranscript, crs, weights, verifierQueries, decoded) {
		t.Fatal("round-tripped multi-point proof failed to verify")
	}
}
