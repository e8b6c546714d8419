package flagtype

import (
	"regexp"
)

// Regexp is a compiled regular expression. If the pattern is invalid, an error is returned. The
// zero value has a nil Regexp.
type Regexp struct {
	*regexp.Regexp
}

func (v *Regexp) String() string {
	if v.Regexp == nil {
		return ""
	}
	return v.Regexp.String()
}

func (v *Regexp) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	v.Regexp = re
	return nil
}

func (v *Regexp) Get() any {
	return v.Regexp
}
