package cmdline

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when a parameter is declared with a name or abbreviation that is
	// already registered on the parser.
	ErrDuplicate = errors.New("duplicate parameter")

	// ErrInvalidName is returned when a parameter is declared with an empty or malformed name, or
	// with an abbreviation that is not exactly one character.
	ErrInvalidName = errors.New("invalid parameter name")

	// ErrUnsupportedType is returned when a parameter is declared with a value type that cannot be
	// parsed from a command-line token.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrOutOfRange is returned by the unnamed argument accessors when the requested position is at
	// or beyond [Parser.NumUnnamed].
	ErrOutOfRange = errors.New("index out of range")

	// ErrParsed is returned when [Parser.Parse] is called more than once on the same parser.
	ErrParsed = errors.New("arguments already parsed")
)

// UnknownFlagError is returned when a character inside a flag cluster such as "-xyz" does not match
// the abbreviation of any declared parameter.
type UnknownFlagError struct {
	Flag   rune   // The unmatched character.
	Offset int    // Byte offset of the character within Token.
	Index  int    // Position of Token in the argument list.
	Token  string // The whole cluster token.
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q at offset %d in argument #%d %q", e.Flag, e.Offset, e.Index, e.Token)
}

// UnknownArgumentError is returned when a long-name token such as "--name" does not match the name
// of any declared parameter.
type UnknownArgumentError struct {
	Token string
	Index int
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument #%d %q", e.Index, e.Token)
}

// ValueError is returned when a token consumed as a parameter value cannot be converted to the
// parameter's value type, or when the conversion leaves part of the token unused.
type ValueError struct {
	Name  string // Parameter name.
	Token string // The offending token.
	Index int    // Position of Token in the argument list.
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("unable to parse value #%d %q for --%s: %v", e.Index, e.Token, e.Name, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// MissingValuesError is returned when a value-taking parameter is matched but is not followed by
// any token that can be used as its value.
type MissingValuesError struct {
	Name  string
	Index int // Position where the parameter was matched.
}

func (e *MissingValuesError) Error() string {
	return fmt.Sprintf("no values found for --%s at argument #%d", e.Name, e.Index)
}

// MissingRequiredError is returned after a full pass when a required parameter was never matched.
type MissingRequiredError struct {
	Name string
	Abbr string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("required argument [-%s, --%s] not set", e.Abbr, e.Name)
}
