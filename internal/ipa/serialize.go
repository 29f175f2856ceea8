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

import "fmt"

// Bytes encodes an IPA proof as 2*log2(n) group elements (L_i, R_i
// pairs) followed by the final scalar, per §6.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, (len(p.L)+len(p.R))*32+32)
	for i := range p.L {
		l := p.L[i].Bytes()
		r := p.R[i].Bytes()
		out = append(out, l[:]...)
		out = append(out, r[:]...)
	}
	a := p.A.Bytes()
	out = append(out, a[:]...)
	return out
}

// ParseProof decodes an IPA proof for a vector of length n (so the
// number of folding rounds, log2(n), is known up front).
func ParseProof(buf []byte, n int) (*Proof, error) {
	rounds := log2(n)
	want := rounds*64 + 32
	if len(buf) != want {
		return nil, fmt.Errorf("ipa: proof is %d bytes, want %d for n=%d", len(buf), want, n)
	}
	p := &Proof{L: make([]Element, rounds), R: make([]Element, rounds)}
	off := 0
	for i := 0; i < rounds; i++ {
		if err := p.L[i].SetBytes(buf[off : off+32]); err != nil {
			return nil, err
		}
		off += 32
		if err := p.R[i].SetBytes(buf[off : off+32]); err != nil {
			return nil, err
		}
		off += 32
	}
	p.A.SetBytesLE(buf[off:])
	return p, nil
}

// Bytes encodes a multi-point proof as D followed by its IPA proof,
// per §6.
func (mp *MultiProof) Bytes() []byte {
	d := mp.D.Bytes()
	out := make([]byte, 0, 32+len(mp.Proof.Bytes()))
	out = append(out, d[:]...)
	out = append(out, mp.Proof.Bytes()...)
	return out
}

// ParseMultiProof decodes a multi-point proof built over a vector of
// length n.
func ParseMultiProof(buf []byte, n int) (*MultiProof, error) {
	if len(buf) < 32 {
		return nil, fmt.Errorf("ipa: multi-point proof too short")
	}
	var d Element
	if err := d.SetBytes(buf[:32]); err != nil {
		return nil, err
	}
	proof, err := ParseProof(buf[32:], n)
	if err != nil {
		return nil, err
	}
	return &MultiProof{D: d, Proof: proof}, nil
}
