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
	"sync"

	"github.com/vrk-labs/verkle-ipa/internal/ipa"
)

// Config bundles the three process-wide singletons every trie needs: the
// CRS, the precomputed Lagrange weights, and a Committer built over the
// CRS. It plays the role the teacher's IPAConfig/GetConfig() play for
// go-ipa: a single lazily-built object callers fetch once and share.
type Config struct {
	CRS       *ipa.CRS
	Weights   *ipa.PrecomputedWeights
	Committer ipa.Committer
}

var (
	configOnce sync.Once
	config     *Config
)

// GetConfig returns the process-wide Config, building it on first call
// (§5: "the CRS and precomputed weight tables are immutable process-wide
// singletons constructed on first access").
func GetConfig() *Config {
	configOnce.Do(func() {
		crs := ipa.GetCRS()
		config = &Config{
			CRS:       crs,
			Weights:   ipa.GetPrecomputedWeights(),
			Committer: ipa.NewDefaultCommitter(crs),
		}
	})
	return config
}
