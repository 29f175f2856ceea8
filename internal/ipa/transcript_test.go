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

func TestTranscriptIsDeterministic(t *testing.T) {
	var x Fr
	x.SetUint64(42)

	t1 := NewTranscript("test-label")
	t1.AppendScalar("x", &x)
	c1 := t1.ChallengeScalar("c")

	t2 := NewTranscript("test-label")
	t2.AppendScalar("x", &x)
	c2 := t2.ChallengeScalar("c")

	if !c1.Equal(&c2) {
		t.Fatal("identical transcripts produced different challenges")
	}
}

func TestTranscriptDiffersByLabel(t *testing.T) {
	var x Fr
	x.SetUint64(42)

	t1 := NewTranscript("label-a")
	t1.AppendScalar("x", &x)
	c1 := t1.ChallengeScalar("c")

	t2 := NewTranscript("label-b")
	t2.AppendScalar("x", &x)
	c2 := t2.ChallengeScalar("c")

	if c1.Equal(&c2) {
		t.Fatal("transcripts with different domain-separation labels collided")
	}
}

func TestChallengeScalarAffectsSubsequentChallenges(t *testing.T) {
	transcript := NewTranscript("fold-test")
	c1 := transcript.ChallengeScalar("round1")
	c2 := transcript.ChallengeScalar("round2")
	if c1.Equal(&c2) {
		t.Fatal("two challenges drawn from the same transcript without intervening appends were equal")
	}
}

func TestAppendPointChangesChallenge(t *testing.T) {
	crs := NewCRS(4, "transcript-test-seed")

	t1 := NewTranscript("point-test")
	t1.AppendPoint("p", &crs.G[0])
	c1 := t1.ChallengeScalar("c")

	t2 := NewTranscript("point-test")
	t2.AppendPoint("p", &crs.G[1])
	c2 := t2.ChallengeScalar("c")

	if c1.Equal(&c2) {
		t.Fatal("appending different points produced the same challenge")
	}
}
