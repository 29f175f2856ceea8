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

import "github.com/vrk-labs/verkle-ipa/internal/banderwagon"

// Committer is the facade the trie core consumes (§6): commit_lagrange,
// scalar_mul, commit_sparse. Grounded directly on
// ipa-multipoint::committer::Committer.
type Committer interface {
	CommitLagrange(evaluations []Fr) Element
	ScalarMul(value Fr, lagrangeIndex int) Element
	CommitSparse(vals []SparseEntry) Element
}

// SparseEntry is one (value, index) pair for CommitSparse.
type SparseEntry struct {
	Value Fr
	Index int
}

const firstFiveWindow = 16
const defaultWindow = 12

// DefaultCommitter is the production Committer: a 16-bit fixed-window
// table over the first five basis points (the hot path for short vectors,
// per §4.2) plus a coarser 12-bit windowed table over the full basis.
// Both tables use unsigned window digits.
type DefaultCommitter struct {
	firstFive *banderwagon.PrecompTable
	full      *banderwagon.PrecompTable
}

func NewDefaultCommitter(crs *CRS) *DefaultCommitter {
	firstFive := crs.G
	if len(firstFive) > 5 {
		firstFive = firstFive[:5]
	}
	return &DefaultCommitter{
		firstFive: banderwagon.NewPrecompTable(firstFive, firstFiveWindow),
		full:      banderwagon.NewPrecompTable(crs.G, defaultWindow),
	}
}

func (c *DefaultCommitter) CommitLagrange(evaluations []Fr) Element {
	if len(evaluations) <= 5 {
		return c.firstFive.Mul(evaluations)
	}
	if len(evaluations) >= 64 {
		return c.full.MulParallel(evaluations)
	}
	return c.full.Mul(evaluations)
}

func (c *DefaultCommitter) ScalarMul(value Fr, lagrangeIndex int) Element {
	if lagrangeIndex < 5 {
		arr := make([]Fr, 5)
		arr[lagrangeIndex] = value
		return c.firstFive.Mul(arr)
	}
	return c.full.MulIndex(&value, lagrangeIndex)
}

func (c *DefaultCommitter) CommitSparse(vals []SparseEntry) Element {
	result := banderwagon.Identity()
	for _, v := range vals {
		term := c.ScalarMul(v.Value, v.Index)
		result.Add(&result, &term)
	}
	return result
}
