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

import "crypto/sha256"

// Transcript is the Fiat-Shamir accumulator of §4.5. It is grounded on
// the teacher's transcript.go, generalized from a single BLS12-381 KZG
// commitment scheme to arbitrary labeled scalar/point appends, and
// changed to append canonical point bytes directly (rather than a
// SHA-256 digest of them, which the teacher's comments flag as a
// test-compatibility compromise it would rather not have made).
type Transcript struct {
	state []byte
}

// NewTranscript starts a transcript domain-separated by label.
func NewTranscript(label string) *Transcript {
	t := &Transcript{}
	t.appendBytes([]byte(label))
	return t
}

func (t *Transcript) appendBytes(b []byte) {
	t.state = append(t.state, b...)
}

// AppendScalar appends a labeled field element.
func (t *Transcript) AppendScalar(label string, x *Fr) {
	t.appendBytes([]byte(label))
	b := x.Bytes()
	t.appendBytes(b[:])
}

// AppendPoint appends a labeled group element's canonical encoding.
func (t *Transcript) AppendPoint(label string, p *Element) {
	t.appendBytes([]byte(label))
	b := p.Bytes()
	t.appendBytes(b[:])
}

func (t *Transcript) AppendPoints(label string, ps []Element) {
	for i := range ps {
		t.AppendPoint(label, &ps[i])
	}
}

// ChallengeScalar derives a field element from the current transcript
// state, domain-separated by label, then folds the challenge back into
// the state so that subsequent challenges depend on it.
func (t *Transcript) ChallengeScalar(label string) Fr {
	t.appendBytes([]byte(label))

	digest := sha256.Sum256(t.state)

	var challenge Fr
	challenge.SetBytes(digest[:])

	t.appendBytes(digest[:])
	return challenge
}
