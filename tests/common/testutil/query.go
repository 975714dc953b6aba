//go:build unit || e2e

package testutil

import (
	"fmt"
	"maps"
	"net/url"
)

// URL encodes params, after applying muts to a copy, as the query string of path.
func URL(path string, params map[string]any, muts ...func(map[string]any)) string {
	m := maps.Clone(params)
	if m == nil {
		m = map[string]any{}
	}
	for _, f := range muts {
		f(m)
	}
	if len(m) == 0 {
		return path
	}

	values := url.Values{}
	for k, v := range m {
		values.Set(k, fmt.Sprint(v))
	}
	return path + "?" + values.Encode()
}
