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

package verkle

import (
	"bytes"
	"sort"

	"github.com/vrk-labs/verkle-ipa/internal/ipa"
	"github.com/vrk-labs/verkle-ipa/internal/verkleerrors"
)

// ExtensionStatus tags how a queried stem's walk terminated (§4.8's
// "verification hints").
type ExtensionStatus uint8

const (
	StatusAbsent ExtensionStatus = iota
	StatusOtherStemPresent
	StatusPresent
)

// VerificationHints accompanies a Proof so the verifier knows, for each
// queried stem, how deep its extension sits and how the walk ended,
// without having to re-derive that from the opened values alone (§6).
type VerificationHints struct {
	Depths     []byte
	Statuses   []ExtensionStatus
	OtherStems [][31]byte
}

// Proof is the canonical Verkle proof of §6: a deduplicated commitment
// list, verification hints, and a single aggregated multi-point proof.
type Proof struct {
	Commitments []Element
	Hints       VerificationHints
	MultiProof  *ipa.MultiProof
}

// queryKey identifies a ProverQuery uniquely by the commitment it opens
// and the domain point within it, for deduplication (§4.8: "dedupe
// queries sharing the same commitment and path").
type queryKey struct {
	commitment [32]byte
	point      int
}

type queryBuilder struct {
	order []queryKey
	byKey map[queryKey]ipa.ProverQuery
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{byKey: make(map[queryKey]ipa.ProverQuery)}
}

func (b *queryBuilder) add(commitment Element, poly ipa.LagrangeBasis, point int, result Fr) {
	k := queryKey{commitment: commitment.Bytes(), point: point}
	if _, ok := b.byKey[k]; ok {
		return
	}
	b.order = append(b.order, k)
	b.byKey[k] = ipa.ProverQuery{Commitment: commitment, Poly: poly, Point: point, Result: result}
}

func (b *queryBuilder) queries() []ipa.ProverQuery {
	out := make([]ipa.ProverQuery, len(b.order))
	for i, k := range b.order {
		out[i] = b.byKey[k]
	}
	return out
}

// branchEvaluationVector materializes the length-256 Lagrange evaluation
// vector of a branch: entry i is map_to_scalar_field of child i's
// commitment, or zero if absent (§4.8, "deriving a branch's evaluation
// vector").
func (t *Trie) branchEvaluationVector(b *branchNode) []Fr {
	v := make([]Fr, ipa.NodeWidth)
	for i, child := range b.children {
		v[i] = t.childHash(child)
	}
	return v
}

// extensionEvaluationVector materializes C_ext's length-4 evaluation
// vector, zero-padded to NodeWidth for use as an IPA witness (§4.8).
func extensionEvaluationVector(s *stemNode) []Fr {
	v := make([]Fr, ipa.NodeWidth)
	v[0].SetOne()
	v[1] = stemAsFr(s.stem)
	v[2] = s.c1HashCache
	v[3] = s.c2HashCache
	return v
}

// halfEvaluationVector materializes C1's or C2's length-256 evaluation
// vector from the 128 values it covers.
func halfEvaluationVector(s *stemNode, useC2 bool) []Fr {
	v := make([]Fr, ipa.NodeWidth)
	lo, hi := 0, 128
	if useC2 {
		lo, hi = 128, 256
	}
	for suffix := lo; suffix < hi; suffix++ {
		_, lowPos, highPos := valueSlotPositions(byte(suffix))
		low, high := splitValueHalves(s.values[suffix])
		v[lowPos] = low
		v[highPos] = high
	}
	return v
}

// CreateProof builds a Proof over the given keys, walking the trie once
// per key (§4.8's "proof construction").
func (t *Trie) CreateProof(keys []Key) (*Proof, error) {
	if len(keys) == 0 {
		return nil, verkleerrors.ErrEmptyKeySet
	}

	qb := newQueryBuilder()
	hints := VerificationHints{}

	for _, key := range keys {
		stem := key.Stem()
		cur := t.root
		depth := 0

		for {
			n := t.arena.get(cur)
			if n.kind == kindBranch {
				qb.add(n.branch.commitment, ipa.NewLagrangeBasis(t.branchEvaluationVector(n.branch)), int(stem[depth]), t.childHash(n.branch.children[stem[depth]]))
				next := n.branch.children[stem[depth]]
				depth++
				if next == emptyHandle {
					hints.Depths = append(hints.Depths, byte(depth))
					hints.Statuses = append(hints.Statuses, StatusAbsent)
					break
				}
				cur = next
				continue
			}

			// Stem extension.
			qb.add(n.stem.cExt, ipa.NewLagrangeBasis(extensionEvaluationVector(n.stem)), 1, stemAsFr(n.stem.stem))

			if n.stem.stem != stem {
				hints.Depths = append(hints.Depths, byte(depth))
				hints.Statuses = append(hints.Statuses, StatusOtherStemPresent)
				hints.OtherStems = append(hints.OtherStems, n.stem.stem)
				break
			}

			useC2, lowPos, highPos := valueSlotPositions(key.Suffix())
			halfPoint := 2
			half := n.stem.c1
			halfHash := n.stem.c1HashCache
			if useC2 {
				halfPoint = 3
				half = n.stem.c2
				halfHash = n.stem.c2HashCache
			}
			qb.add(n.stem.cExt, ipa.NewLagrangeBasis(extensionEvaluationVector(n.stem)), halfPoint, halfHash)

			halfVec := halfEvaluationVector(n.stem, useC2)
			low, high := splitValueHalves(n.stem.values[key.Suffix()])
			qb.add(half, ipa.NewLagrangeBasis(halfVec), lowPos, low)
			qb.add(half, ipa.NewLagrangeBasis(halfVec), highPos, high)

			hints.Depths = append(hints.Depths, byte(depth))
			if n.stem.values[key.Suffix()] != nil {
				hints.Statuses = append(hints.Statuses, StatusPresent)
			} else {
				hints.Statuses = append(hints.Statuses, StatusAbsent)
			}
			break
		}
	}

	transcript := ipa.NewTranscript("verkle-proof")
	multiProof := ipa.CreateMultiProof(transcript, t.config.CRS, t.config.Committer, t.config.Weights, qb.queries())

	return &Proof{
		Commitments: dedupCommitmentsExcludingRoot(qb.queries(), t.RootCommitment()),
		Hints:       hints,
		MultiProof:  multiProof,
	}, nil
}

func dedupCommitmentsExcludingRoot(queries []ipa.ProverQuery, root Element) []Element {
	rootBytes := root.Bytes()
	seen := make(map[[32]byte]struct{})
	out := make([]Element, 0, len(queries))
	for _, q := range queries {
		b := q.Commitment.Bytes()
		if b == rootBytes {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, q.Commitment)
	}
	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].Bytes(), out[j].Bytes()
		return bytes.Compare(bi[:], bj[:]) < 0
	})
	return out
}
