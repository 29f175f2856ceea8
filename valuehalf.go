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

import "math/big"

// presentBit is bit 128 of a value's low-16-byte half: the low half is
// at most 2^128-1, so this bit is always free to use as the "leaf
// present" marker that disambiguates a stored zero value from an absent
// one (§4.8's "extension commitments in detail").
var presentBit = new(big.Int).Lsh(big.NewInt(1), 128)

// splitValueHalves returns the (low, high) field elements an extension
// commits to for one stored value. A nil v represents an absent value
// and maps to (0, 0); the marker bit is set on low only when v is
// present, even if the stored bytes are all zero.
func splitValueHalves(v *[32]byte) (low, high Fr) {
	if v == nil {
		return Fr{}, Fr{}
	}
	lowBig := new(big.Int).SetBytes(v[:16])
	lowBig.Or(lowBig, presentBit)
	low.Set(lowBig)
	high.Set(new(big.Int).SetBytes(v[16:]))
	return low, high
}

// valueSlotPositions returns, for suffix k, which half (c1 for k<128, c2
// otherwise) holds it and the (low, high) positions within that half's
// 256-entry evaluation vector (§4.8: "at positions 2k and 2k+1").
func valueSlotPositions(suffix byte) (useC2 bool, lowPos, highPos int) {
	k := int(suffix) % 128
	return suffix >= 128, 2 * k, 2*k + 1
}

// stemAsFr encodes a 31-byte stem as a field element, treating it as a
// big-endian integer (§4.8: extension aggregate position 1).
func stemAsFr(stem [31]byte) Fr {
	var buf [32]byte
	copy(buf[1:], stem[:])
	var f Fr
	f.Set(new(big.Int).SetBytes(buf[:]))
	return f
}
