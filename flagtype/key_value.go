package flagtype

import (
	"fmt"
	"strings"
)

// KeyValue is a single key=value pair. The token is split on the first "=" character, so values
// may contain additional "=" characters. Declare the argument with [cmdline.MultipleValues] to
// collect several pairs, like --label env=prod tier=web.
type KeyValue struct {
	Key   string
	Value string
}

func (v *KeyValue) String() string {
	if v.Key == "" {
		return ""
	}
	return v.Key + "=" + v.Value
}

func (v *KeyValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid key=value pair: %q (missing '=')", s)
	}
	if key == "" {
		return fmt.Errorf("invalid key=value pair: %q (empty key)", s)
	}
	v.Key, v.Value = key, value
	return nil
}

func (v *KeyValue) Get() any {
	return *v
}
