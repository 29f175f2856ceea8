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
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vrk-labs/verkle-ipa/internal/ipa"
)

// rlpHints is the RLP-encodable mirror of VerificationHints. Depths and
// statuses travel as byte strings rather than lists of single bytes, to
// keep the encoding compact; OtherStems travels as a list of 31-byte
// strings since RLP has no fixed-size-array notion.
type rlpHints struct {
	Depths     []byte
	Statuses   []byte
	OtherStems [][]byte
}

func encodeHints(h VerificationHints) ([]byte, error) {
	statuses := make([]byte, len(h.Statuses))
	for i, s := range h.Statuses {
		statuses[i] = byte(s)
	}
	stems := make([][]byte, len(h.OtherStems))
	for i, s := range h.OtherStems {
		stems[i] = append([]byte(nil), s[:]...)
	}
	return rlp.EncodeToBytes(&rlpHints{Depths: h.Depths, Statuses: statuses, OtherStems: stems})
}

func decodeHints(buf []byte) (VerificationHints, error) {
	var raw rlpHints
	if err := rlp.DecodeBytes(buf, &raw); err != nil {
		return VerificationHints{}, err
	}
	statuses := make([]ExtensionStatus, len(raw.Statuses))
	for i, s := range raw.Statuses {
		statuses[i] = ExtensionStatus(s)
	}
	stems := make([][31]byte, len(raw.OtherStems))
	for i, s := range raw.OtherStems {
		copy(stems[i][:], s)
	}
	return VerificationHints{Depths: raw.Depths, Statuses: statuses, OtherStems: stems}, nil
}

// Bytes encodes a Proof per §6's canonical layout: the sorted-deduped
// commitment list, the verification hints (RLP-encoded, in the teacher's
// container idiom), then the multi-point proof.
func (p *Proof) Bytes() []byte {
	var out []byte

	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(p.Commitments)))
	out = append(out, count[:]...)
	for _, c := range p.Commitments {
		b := c.Bytes()
		out = append(out, b[:]...)
	}

	hintBytes, err := encodeHints(p.Hints)
	if err != nil {
		panic(err) // encoding a well-formed rlpHints never fails
	}
	var hintLen [4]byte
	binary.BigEndian.PutUint32(hintLen[:], uint32(len(hintBytes)))
	out = append(out, hintLen[:]...)
	out = append(out, hintBytes...)

	out = append(out, p.MultiProof.Bytes()...)
	return out
}

// ParseProof decodes a Proof produced by Bytes.
func ParseProof(buf []byte) (*Proof, error) {
	read := func(n int) ([]byte, error) {
		if len(buf) < n {
			return nil, fmt.Errorf("verkle: proof truncated")
		}
		b := buf[:n]
		buf = buf[n:]
		return b, nil
	}

	countBuf, err := read(4)
	if err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint32(countBuf)
	commitments := make([]Element, count)
	for i := range commitments {
		b, err := read(32)
		if err != nil {
			return nil, err
		}
		if err := commitments[i].SetBytes(b); err != nil {
			return nil, err
		}
	}

	hintLenBuf, err := read(4)
	if err != nil {
		return nil, err
	}
	hintLen := binary.BigEndian.Uint32(hintLenBuf)
	hintBytes, err := read(int(hintLen))
	if err != nil {
		return nil, err
	}
	hints, err := decodeHints(hintBytes)
	if err != nil {
		return nil, err
	}

	multiProof, err := ipa.ParseMultiProof(buf, ipa.NodeWidth)
	if err != nil {
		return nil, err
	}

	return &Proof{
		Commitments: commitments,
		Hints:       hints,
		MultiProof:  multiProof,
	}, nil
}
