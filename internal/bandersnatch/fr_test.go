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

import "testing"

func TestFrAddSubInverse(t *testing.T) {
	var a, b, sum, diff Fr
	a.SetUint64(123456789)
	b.SetUint64(987654321)

	sum.Add(&a, &b)
	diff.Sub(&sum, &b)
	if !diff.Equal(&a) {
		t.Fatal("(a+b)-b != a")
	}
}

func TestFrMulInverse(t *testing.T) {
	var a, inv, prod Fr
	a.SetUint64(42)
	inv.Inverse(&a)
	prod.Mul(&a, &inv)

	one := One()
	if !prod.Equal(&one) {
		t.Fatal("a * a^-1 != 1")
	}
}

func TestFrBytesRoundTrip(t *testing.T) {
	var a Fr
	a.SetUint64(0xdeadbeef)

	encoded := a.Bytes()
	var decoded Fr
	decoded.SetBytes(reverse(encoded[:]))
	// a.Bytes is little-endian; SetBytes expects big-endian, so reverse
	// before re-parsing to confirm a true round trip.
	if !decoded.Equal(&a) {
		t.Fatal("Fr.Bytes/SetBytes did not round-trip")
	}
}

func TestFrExpMatchesRepeatedMul(t *testing.T) {
	var base Fr
	base.SetUint64(7)

	var viaExp Fr
	viaExp.Exp(&base, 4)

	viaMul := One()
	for i := 0; i < 4; i++ {
		viaMul.Mul(&viaMul, &base)
	}

	if !viaExp.Equal(&viaMul) {
		t.Fatal("Exp(base, 4) != base^4 via repeated multiplication")
	}
}

func TestFrIsZero(t *testing.T) {
	z := Zero()
	if !z.IsZero() {
		t.Fatal("Zero() is not IsZero()")
	}
	one := One()
	if one.IsZero() {
		t.Fatal("One() reported as IsZero()")
	}
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
