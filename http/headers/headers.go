package headers

import (
	"strings"

	"github.com/indigo-web/utils/uf"
)

// Headers is an owned storage of request headers. Keys are always lower-cased, so
// lookups are case-insensitive. Only a single value per key is kept: setting an
// already presented key overrides its value
type Headers map[string][]byte

func NewHeaders(prealloc int) Headers {
	return make(Headers, prealloc)
}

// Set stores the value under lower-cased key, overriding the previous one if any
func (h Headers) Set(key string, value []byte) {
	h[strings.ToLower(key)] = value
}

// Get returns the value by the key, or nil if not presented
func (h Headers) Get(key string) []byte {
	return h[strings.ToLower(key)]
}

// Value is the same as Get, but returns the value as a string. The string shares memory
// with the stored value, so it must not be used after the value was modified
func (h Headers) Value(key string) string {
	return uf.B2S(h.Get(key))
}

func (h Headers) Has(key string) bool {
	_, found := h[strings.ToLower(key)]
	return found
}

func (h Headers) Len() int {
	return len(h)
}
