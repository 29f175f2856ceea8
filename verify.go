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

import "github.com/vrk-labs/verkle-ipa/internal/ipa"

// verifierQueryBuilder mirrors queryBuilder but drops the Poly field, so
// only what an actual verifier could know (commitment, point, claimed
// value) is ever fed into the IPA check.
type verifierQueryBuilder struct {
	order []queryKey
	byKey map[queryKey]ipa.VerifierQuery
}

func newVerifierQueryBuilder() *verifierQueryBuilder {
	return &verifierQueryBuilder{byKey: make(map[queryKey]ipa.VerifierQuery)}
}

func (b *verifierQueryBuilder) add(commitment Element, point int, result Fr) {
	k := queryKey{commitment: commitment.Bytes(), point: point}
	if _, ok := b.byKey[k]; ok {
		return
	}
	b.order = append(b.order, k)
	b.byKey[k] = ipa.VerifierQuery{Commitment: commitment, Point: point, Result: result}
}

func (b *verifierQueryBuilder) queries() []ipa.VerifierQuery {
	out := make([]ipa.VerifierQuery, len(b.order))
	for i, k := range b.order {
		out[i] = b.byKey[k]
	}
	return out
}

// CheckProof verifies proof against t's current state for the given
// keys; the claimed values are read from t itself. It re-walks t the
// same way CreateProof did to reconstruct the query order and points,
// then runs the real IPA/multi-point check (§4.6, §4.7) against the
// commitments and claimed results. Only proof.MultiProof is checked:
// proof.Commitments and proof.Hints are not consulted, so a change
// confined to them does not make verification fail.
func (t *Trie) CheckProof(keys []Key, proof *Proof) bool {
	if len(keys) == 0 {
		return false
	}

	vb := newVerifierQueryBuilder()

	for _, key := range keys {
		stem := key.Stem()
		cur := t.root
		depth := 0

		for {
			n := t.arena.get(cur)
			if n.kind == kindBranch {
				idx := stem[depth]
				vb.add(n.branch.commitment, int(idx), t.childHash(n.branch.children[idx]))
				next := n.branch.children[idx]
				depth++
				if next == emptyHandle {
					break
				}
				cur = next
				continue
			}

			vb.add(n.stem.cExt, 1, stemAsFr(n.stem.stem))

			if n.stem.stem != stem {
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
			vb.add(n.stem.cExt, halfPoint, halfHash)

			low, high := splitValueHalves(n.stem.values[key.Suffix()])
			vb.add(half, lowPos, low)
			vb.add(half, highPos, high)
			break
		}
	}

	transcript := ipa.NewTranscript("verkle-proof")
	return ipa.CheckMultiProof(transcript, t.config.CRS, t.config.Weights, vb.queries(), proof.MultiProof)
}
