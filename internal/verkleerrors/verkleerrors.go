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

// Package verkleerrors centralizes the error kinds a caller of this
// module can observe (§7), grounded on rust-verkle's
// verkle-trie::errors module (HintError, VerificationError, ConfigError,
// ProofCreationError) and expressed the teacher's way: stdlib sentinel
// errors discriminated with errors.Is/As rather than an error-kind enum.
package verkleerrors

import (
	"errors"
	"fmt"
)

// Encoding errors.
var (
	ErrInvalidEncoding     = errors.New("verkle: invalid encoding")
	ErrMismatchedKeyLength = errors.New("verkle: key is not 32 bytes")
)

// Proof creation errors (rust's ProofCreationError).
var (
	ErrEmptyKeySet                 = errors.New("verkle: cannot build a proof over an empty key set")
	ErrExpectedOneQueryAgainstRoot = errors.New("verkle: expected exactly one query against the root commitment")
)

// Proof verification errors (rust's VerificationError).
var (
	ErrInvalidProof            = errors.New("verkle: proof failed verification")
	ErrUnexpectedUpdatedLength = errors.New("verkle: updated-value list length does not match key list length")
	ErrDuplicateKeys           = errors.New("verkle: key set contains duplicates")
	ErrOldValueIsPopulated     = errors.New("verkle: old value supplied for a key that is already absent")
	ErrEmptyPrefix             = errors.New("verkle: stem has an empty prefix")
)

// Configuration errors (rust's ConfigError). No code in this module
// returns them: the CRS and precomputed weights are generated in memory,
// never read from or written to a file.
var (
	ErrPrecomputedPointsFileExists = errors.New("verkle: precomputed points file already exists")
	ErrPrecomputedPointsNotFound   = errors.New("verkle: precomputed points file not found")
	ErrSerialization               = errors.New("verkle: failed to serialize or deserialize precomputed points")
)

// StorageError wraps a failure from the caller-supplied storage facade
// (§6), preserving the underlying error for errors.Unwrap/errors.Is.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("verkle: storage operation %q failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
