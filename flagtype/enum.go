package flagtype

import (
	"fmt"
	"slices"
	"strings"
)

// Choices is implemented by types that list the values allowed by an [Enum].
type Choices interface {
	Choices() []string
}

// Enum is a string restricted to the values returned by C's Choices method. If a token not in the
// allowed list is provided, an error listing the valid options is returned.
type Enum[C Choices] struct {
	val string
}

func (v *Enum[C]) String() string {
	return v.val
}

func (v *Enum[C]) Set(s string) error {
	var c C
	allowed := c.Choices()
	if !slices.Contains(allowed, s) {
		return fmt.Errorf("invalid value %q, must be one of: %s", s, strings.Join(allowed, ", "))
	}
	v.val = s
	return nil
}

func (v *Enum[C]) Get() any {
	return v.val
}
