package flagtype

import (
	"fmt"
	"net/url"
)

// URL is a parsed URL. The token must have both a scheme and a host, otherwise an error is
// returned. The zero value has a nil URL.
type URL struct {
	*url.URL
}

func (v *URL) String() string {
	if v.URL == nil {
		return ""
	}
	return v.URL.String()
}

func (v *URL) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL %q: must have a scheme and host", s)
	}
	v.URL = u
	return nil
}

func (v *URL) Get() any {
	return v.URL
}
