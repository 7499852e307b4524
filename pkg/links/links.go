// Package links builds absolute URLs for views opened outside the app, such
// as print pages and the password reset landing page.
package links

import (
	"net/url"
	"strings"
)

// Resolver joins paths onto the public base URL.
type Resolver struct {
	BaseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// Resolve returns BaseURL+path as an absolute URL. With no usable base it
// falls back to the path itself, which still works as a same-origin link.
func (r *Resolver) Resolve(path string) string {
	if r == nil || r.BaseURL == "" {
		return path
	}
	base, err := url.Parse(r.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil || ref.IsAbs() || ref.Host != "" {
		// links only point at the app's own views
		return path
	}

	if !strings.HasPrefix(ref.Path, "/") {
		ref.Path = "/" + ref.Path
	}
	joined := *base
	joined.Path = strings.TrimRight(base.Path, "/") + ref.Path
	joined.RawQuery = ref.RawQuery
	joined.Fragment = ref.Fragment
	return joined.String()
}

// IsInternal reports whether path addresses a view of the app itself, with
// no scheme or host of its own.
func IsInternal(path string) bool {
	ref, err := url.Parse(strings.TrimSpace(path))
	return err == nil && !ref.IsAbs() && ref.Host == "" && ref.Path != ""
}
