// Package flagtype provides value types for use with [cmdline.AddArgument].
//
// Each type's pointer implements [flag.Value], which is how the parser converts a command-line token
// into a value. All types also implement [flag.Getter].
//
// The following types are available:
//   - [List] - splits a comma-separated token into []string
//   - [Enum] - restricts a token to the choices of a [Choices] type
//   - [KeyValue] - parses a key=value pair
//   - [URL] - parses and validates a URL (must have scheme and host)
//   - [Regexp] - compiles a regular expression
//
// Example declaration:
//
//	type formats struct{}
//
//	func (formats) Choices() []string { return []string{"json", "yaml", "table"} }
//
//	labels, _ := cmdline.AddArgument[flagtype.KeyValue](p, "label", "l", "key=value pairs", cmdline.MultipleValues, nil)
//	format, _ := cmdline.AddArgument[flagtype.Enum[formats]](p, "format", "f", "output format", 0, nil)
//	endpoint, _ := cmdline.AddArgument[flagtype.URL](p, "endpoint", "e", "server URL", cmdline.Required, nil)
//
// Example retrieval after parsing:
//
//	for _, kv := range labels.Values() {
//	    fmt.Println(kv.Key, kv.Value)
//	}
//	fmt.Println(format.Value(0), endpoint.Value(0).Host)
package flagtype
