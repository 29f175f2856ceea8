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

import "sync"

// LagrangeBasis is a polynomial of degree < n represented by its
// evaluations on the domain D = {0, ..., n-1} (§4.4).
type LagrangeBasis struct {
	Evals []Fr
}

func NewLagrangeBasis(evals []Fr) LagrangeBasis {
	return LagrangeBasis{Evals: evals}
}

// PrecomputedWeights caches the barycentric weights A'(i) (and their
// inverses) and the domain-division constants 1/(i-j), exactly as
// rust-verkle's ipa-multipoint::lagrange_basis::PrecomputedWeights does,
// and as the teacher's KZGConfig caches tc.omegaIs/tc.inverses for its
// root-of-unity domain equivalent.
type PrecomputedWeights struct {
	n int

	// barycentricWeights[i] = A'(i) = product_{j != i} (i - j)
	barycentricWeights []Fr
	// barycentricWeightsInv[i] = 1 / A'(i)
	barycentricWeightsInv []Fr
	// domainInv[i][j] = 1 / (i - j), for i != j; domainInv[i][i] is unused.
	domainInv [][]Fr
}

var (
	weightsOnce sync.Once
	weights     *PrecomputedWeights
)

// GetPrecomputedWeights returns the process-wide weights singleton for
// NodeWidth, built once (§5).
func GetPrecomputedWeights() *PrecomputedWeights {
	weightsOnce.Do(func() {
		weights = NewPrecomputedWeights(NodeWidth)
	})
	return weights
}

func NewPrecomputedWeights(n int) *PrecomputedWeights {
	w := &PrecomputedWeights{n: n}

	domain := make([]Fr, n)
	for i := range domain {
		domain[i].SetUint64(uint64(i))
	}

	w.barycentricWeights = make([]Fr, n)
	w.barycentricWeightsInv = make([]Fr, n)
	for i := 0; i < n; i++ {
		acc := fr(1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var diff Fr
			diff.Sub(&domain[i], &domain[j])
			acc.Mul(&acc, &diff)
		}
		w.barycentricWeights[i] = acc
		var inv Fr
		inv.Inverse(&acc)
		w.barycentricWeightsInv[i] = inv
	}

	w.domainInv = make([][]Fr, n)
	for i := 0; i < n; i++ {
		row := make([]Fr, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			var diff Fr
			diff.Sub(&domain[i], &domain[j])
			var inv Fr
			inv.Inverse(&diff)
			row[j] = inv
		}
		w.domainInv[i] = row
	}

	return w
}

func fr(v uint64) Fr {
	var f Fr
	f.SetUint64(v)
	return f
}

// EvaluateOutsideDomain evaluates the polynomial given by evals at a
// point z that is not in D, via the barycentric formula.
func (w *PrecomputedWeights) EvaluateOutsideDomain(evals []Fr, z *Fr) Fr {
	var numerator Fr
	numerator.SetOne()
	for i := 0; i < w.n; i++ {
		var diff Fr
		diff.SetUint64(uint64(i))
		diff.Sub(z, &diff)
		numerator.Mul(&numerator, &diff)
	}

	var result Fr
	for i := 0; i < w.n; i++ {
		var xi Fr
		xi.SetUint64(uint64(i))

		var diff Fr
		diff.Sub(z, &xi)

		var term Fr
		term.Mul(&evals[i], &w.barycentricWeightsInv[i])
		term.Div(&term, &diff)
		result.Add(&result, &term)
	}
	result.Mul(&result, &numerator)
	return result
}

// BarycentricCoefficients returns the vector b with b[i] = L_i(z), the
// i-th Lagrange basis polynomial over D evaluated at z. It is the public
// "b" vector the multi-point opening protocol (§4.7) feeds into the IPA
// once all queries have been aggregated down to a single evaluation
// point, grounded on the per-term coefficient inside EvaluateOutsideDomain.
func (w *PrecomputedWeights) BarycentricCoefficients(z *Fr) []Fr {
	if idx, ok := domainIndex(z, w.n); ok {
		b := make([]Fr, w.n)
		b[idx].SetOne()
		return b
	}

	var numerator Fr
	numerator.SetOne()
	for i := 0; i < w.n; i++ {
		var diff Fr
		diff.SetUint64(uint64(i))
		diff.Sub(z, &diff)
		numerator.Mul(&numerator, &diff)
	}

	b := make([]Fr, w.n)
	for i := 0; i < w.n; i++ {
		var xi Fr
		xi.SetUint64(uint64(i))
		var diff Fr
		diff.Sub(z, &xi)

		b[i].Mul(&w.barycentricWeightsInv[i], &numerator)
		b[i].Div(&b[i], &diff)
	}
	return b
}

// Evaluate evaluates evals at z, using the direct lookup when z is in D
// and the barycentric formula otherwise.
func (w *PrecomputedWeights) Evaluate(evals []Fr, z *Fr) Fr {
	if idx, ok := domainIndex(z, w.n); ok {
		return evals[idx]
	}
	return w.EvaluateOutsideDomain(evals, z)
}

func domainIndex(z *Fr, n int) (int, bool) {
	for i := 0; i < n; i++ {
		var xi Fr
		xi.SetUint64(uint64(i))
		if xi.Equal(z) {
			return i, true
		}
	}
	return 0, false
}

// DivideOnDomain computes the evaluations of (P(X) - P(index)) / (X -
// index) on the domain, for index in D (§4.4's "quotient on the
// domain", grounded on the teacher's KZGConfig.innerQuotients which
// computes the same closed form one root-of-unity domain over).
func (w *PrecomputedWeights) DivideOnDomain(evals []Fr, index int) []Fr {
	q := make([]Fr, w.n)
	y := evals[index]

	for i := 0; i < w.n; i++ {
		if i == index {
			continue
		}
		var numerator Fr
		numerator.Sub(&evals[i], &y)
		// domainInv[i][index] == 1 / (i - index)
		q[i].Mul(&numerator, &w.domainInv[i][index])

		var ratio Fr
		ratio.Div(&w.barycentricWeights[index], &w.barycentricWeights[i])
		var term Fr
		term.Mul(&ratio, &q[i])
		q[index].Add(&q[index], &term)
	}
	q[index].Sub(&Fr{}, &q[index])

	return q
}

// DivideOutsideDomain computes the evaluations of (P(X) - y) / (X - z)
// on the domain, for z not in D and y = P(z) (§4.4).
func (w *PrecomputedWeights) DivideOutsideDomain(evals []Fr, z, y *Fr) []Fr {
	q := make([]Fr, w.n)
	for i := 0; i < w.n; i++ {
		var xi Fr
		xi.SetUint64(uint64(i))

		var numerator Fr
		numerator.Sub(&evals[i], y)

		var denominator Fr
		denominator.Sub(&xi, z)

		q[i].Div(&numerator, &denominator)
	}
	return q
}
