package flagtype

import "strings"

// List is a comma-separated token split into its elements. Empty elements are dropped, so "a,,b"
// yields ["a", "b"].
type List []string

func (v *List) String() string {
	return strings.Join(*v, ",")
}

func (v *List) Set(s string) error {
	var vals []string
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		vals = append(vals, part)
	}
	*v = vals
	return nil
}

func (v *List) Get() any {
	return []string(*v)
}
