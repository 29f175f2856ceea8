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

import "testing"

func TestEncodeDecodeHintsRoundTrip(t *testing.T) {
	hints := VerificationHints{
		Depths:   []byte{1, 2, 3},
		Statuses: []ExtensionStatus{StatusPresent, StatusAbsent, StatusOtherStemPresent},
		OtherStems: [][31]byte{
			{1, 2, 3},
		},
	}

	encoded, err := encodeHints(hints)
	if err != nil {
		t.Fatalf("encodeHints: %v", err)
	}
	decoded, err := decodeHints(encoded)
	if err != nil {
		t.Fatalf("decodeHints: %v", err)
	}

	if len(decoded.Depths) != len(hints.Depths) {
		t.Fatalf("depths length mismatch: got %d, want %d", len(decoded.Depths), len(hints.Depths))
	}
	for i := range hints.Depths {
		if decoded.Depths[i] != hints.Depths[i] {
			t.Fatalf("depths[%d] = %d, want %d", i, decoded.Depths[i], hints.Depths[i])
		}
	}
	if len(decoded.Statuses) != len(hints.Statuses) {
		t.Fatalf("statuses length mismatch: got %d, want %d", len(decoded.Statuses), len(hints.Statuses))
	}
	for i := range hints.Statuses {
		if decoded.Statuses[i] != hints.Statuses[i] {
			t.Fatalf("statuses[%d] = %d, want %d", i, decoded.Statuses[i], hints.Statuses[i])
		}
	}
	if len(decoded.OtherStems) != len(hints.OtherStems) {
		t.Fatalf("other-stems length mismatch: got %d, want %d", len(decoded.OtherStems), len(hints.OtherStems))
	}
	if decoded.OtherStems[0] != hints.OtherStems[0] {
		t.Fatalf("other-stems[0] = %x, want %x", decoded.OtherStems[0], hints.OtherStems[0])
	}
}

func TestEncodeDecodeHintsEmpty(t *testing.T) {
	encoded, err := encodeHints(VerificationHints{})
	if err != nil {
		t.Fatalf("encodeHints: %v", err)
	}
	decoded, err := decodeHints(encoded)
	if err != nil {
		t.Fatalf("decodeHints: %v", err)
	}
	if len(decoded.Depths) != 0 || len(decoded.Statuses) != 0 || len(decoded.OtherStems) != 0 {
		t.Fatal("decoding empty hints produced non-empty fields")
	}
}

func TestParseProofRejectsTruncatedInput(t *testing.T) {
	trie, keys := buildFixtureTrie(t, 8)
	proof, err := trie.CreateProof(keys)
	if err != nil {
		t.Fatalf("CreateProof: %v", err)
	}
	encoded := proof.Bytes()
	if _, err := ParseProof(encoded[:len(encoded)-1]); err == nil {
		t.Fatal("ParseProof accepted truncated input")
	}
}
