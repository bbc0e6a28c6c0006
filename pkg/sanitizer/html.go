// Package sanitizer makes user-supplied text safe to interpolate into HTML.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes every tag and escapes the remaining text so the result can
// be placed into an HTML document as plain content. Line breaks survive, which
// keeps pre-wrap blocks intact.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// StripAll applies [StripHTML] to each value in place and returns the slice.
func StripAll(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = StripHTML(*v)
		}
	}
}
