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

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

// testGenerator derives a fixed subgroup element by try-and-increment
// hashing, the same technique CRS generation and HashToCurve use (§4.3):
// not every candidate x-coordinate's square roots land in the order-r
// subgroup, so a single hash attempt isn't guaranteed to succeed.
func testGenerator(t *testing.T) PointAffine {
	t.Helper()
	label := []byte("bandersnatch curve test generator")
	for i := uint64(0); ; i++ {
		h := sha256.New()
		h.Write(label)
		var idx [8]byte
		binary.BigEndian.PutUint64(idx[:], i)
		h.Write(idx[:])
		if p, ok := TryReduceToElement(h.Sum(nil)); ok {
			return p
		}
	}
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	g := testGenerator(t)
	id := Identity()

	var sum PointAffine
	sum.Add(&g, &id)
	if !sum.Equal(&g) {
		t.Fatal("g + identity != g")
	}
}

func TestAddCommutes(t *testing.T) {
	g := testGenerator(t)
	var h PointAffine
	h.Add(&g, &g)

	var ab, ba PointAffine
	ab.Add(&g, &h)
	ba.Add(&h, &g)
	if !ab.Equal(&ba) {
		t.Fatal("point addition is not commutative")
	}
}

func TestNegCancelsAdd(t *testing.T) {
	g := testGenerator(t)
	var negG PointAffine
	negG.Neg(&g)

	var sum PointAffine
	sum.Add(&g, &negG)
	if !sum.IsIdentity() {
		t.Fatal("g + (-g) != identity")
	}
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	g := testGenerator(t)
	var five Fr
	five.SetUint64(5)

	var viaScalar PointAffine
	viaScalar.ScalarMul(&g, &five)

	viaAdd := Identity()
	for i := 0; i < 5; i++ {
		viaAdd.Add(&viaAdd, &g)
	}

	if !viaScalar.Equal(&viaAdd) {
		t.Fatal("5*g via ScalarMul disagrees with 5*g via repeated addition")
	}
}

func TestEqualIdentifiesNegatedRepresentative(t *testing.T) {
	g := testGenerator(t)
	var negG PointAffine
	negG.Neg(&g)

	if !g.Equal(&negG) {
		t.Fatal("banderwagon quotient equality must identify a point with its negation")
	}
}

func TestBytesNormalizesNegatedPoints(t *testing.T) {
	g := testGenerator(t)
	var negG PointAffine
	negG.Neg(&g)

	gb := g.Bytes()
	negGb := negG.Bytes()
	if gb != negGb {
		t.Fatal("canonical encoding of a point and its negation must match")
	}
}

func TestTryReduceToElementRoundTripsThroughBytes(t *testing.T) {
	g := testGenerator(t)
	encoded := g.Bytes()

	decoded, ok := TryReduceToElement(encoded[:])
	if !ok {
		t.Fatal("failed to decode a previously encoded point")
	}
	if !decoded.Equal(&g) {
		t.Fatal("decoded point does not equal the original")
	}
}
