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

package banderwagon

import "testing"

func testBases(n int) []Element {
	bases := make([]Element, n)
	for i := range bases {
		bases[i] = HashToCurve([]byte{byte(i), byte(i >> 8)})
	}
	return bases
}

func naiveMSM(bases []Element, scalars []Fr) Element {
	acc := Identity()
	for i := range scalars {
		var term Element
		term.ScalarMul(&bases[i], &scalars[i])
		acc.Add(&acc, &term)
	}
	return acc
}

func TestPrecompTableMulMatchesNaive(t *testing.T) {
	bases := testBases(10)
	table := NewPrecompTable(bases, 4)

	scalars := make([]Fr, len(bases))
	for i := range scalars {
		scalars[i].SetUint64(uint64(i)*31 + 7)
	}

	got := table.Mul(scalars)
	want := naiveMSM(bases, scalars)
	if !got.Equal(&want) {
		t.Fatal("PrecompTable.Mul disagrees with the naive MSM")
	}
}

func TestPrecompTableMulIndexMatchesScalarMul(t *testing.T) {
	bases := testBases(5)
	table := NewPrecompTable(bases, 4)

	var s Fr
	s.SetUint64(123)

	got := table.MulIndex(&s, 2)
	var want Element
	want.ScalarMul(&bases[2], &s)
	if !got.Equal(&want) {
		t.Fatal("MulIndex disagrees with ScalarMul on the corresponding base")
	}
}

func TestPrecompTableMulParallelMatchesSequential(t *testing.T) {
	bases := testBases(200)
	table := NewPrecompTable(bases, 8)

	scalars := make([]Fr, len(bases))
	for i := range scalars {
		scalars[i].SetUint64(uint64(i)*17 + 3)
	}

	seq := table.Mul(scalars)
	par := table.MulParallel(scalars)
	if !seq.Equal(&par) {
		t.Fatal("MulParallel disagrees with Mul for a vector over the parallel threshold")
	}
}
