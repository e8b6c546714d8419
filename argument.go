package cmdline

import (
	"fmt"
	"unicode/utf8"
)

// Argument is a declared parameter together with the values collected for it. Switch arguments
// (see [AddSwitch]) hold a single presence value; other arguments hold one value, or any number of
// values when declared with [MultipleValues], in the order they appeared on the command line.
type Argument[T any] struct {
	descriptor
	values   []T
	callback func(*Argument[T])
}

// AddArgument declares a parameter whose values are parsed as T. The name is matched by "--name"
// and abbr, a single character, inside flag clusters such as "-a". The optional callback runs
// synchronously each time the parameter is matched, after its values have been collected.
//
// AddArgument returns a nil argument and an error wrapping [ErrDuplicate] if name or abbr is already
// declared on p.
//
// Supported value types are strings, booleans, integers, floats, [time.Duration], types with one
// of those underlying kinds, and types whose pointer implements [flag.Value] or
// [encoding.TextUnmarshaler]. The [Switch] flag is only valid with bool.
func AddArgument[T any](p *Parser, name, abbr, help string, flags Flags, callback func(*Argument[T])) (*Argument[T], error) {
	if err := validateParameter(name, abbr); err != nil {
		return nil, err
	}
	if err := checkType[T](); err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}
	flags &^= Found
	a := &Argument[T]{
		descriptor: newDescriptor(name, abbr, help, flags),
		callback:   callback,
	}
	if flags.Has(Switch) {
		var zero T
		if _, ok := any(zero).(bool); !ok {
			return nil, fmt.Errorf("parameter %q: %w: switch requires bool, got %T", name, ErrUnsupportedType, zero)
		}
		a.flags &^= MultipleValues
		a.values = []T{zero}
	}
	if err := p.add(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddSwitch declares a presence-only parameter. Its value is false until the parameter is matched
// and true afterwards.
func AddSwitch(p *Parser, name, abbr, help string, flags Flags, callback func(*Argument[bool])) (*Argument[bool], error) {
	return AddArgument(p, name, abbr, help, flags|Switch, callback)
}

// NumValues returns the number of collected values. It is always 1 for switches.
func (a *Argument[T]) NumValues() int {
	return len(a.values)
}

// Value returns the value at index i, or the zero value of T if i is out of range.
func (a *Argument[T]) Value(i int) T {
	if i < 0 || i >= len(a.values) {
		var zero T
		return zero
	}
	return a.values[i]
}

// Values returns a copy of the collected values.
func (a *Argument[T]) Values() []T {
	if a.values == nil {
		return nil
	}
	return append([]T(nil), a.values...)
}

func (a *Argument[T]) register(index int, c *cursor) error {
	switch {
	case a.flags.Has(Switch):
		a.values[0] = any(true).(T)
	case a.flags.Has(MultipleValues):
		n := 0
		for {
			tok, ok := c.next()
			if !ok {
				break
			}
			if isNamed(tok) {
				c.unread()
				break
			}
			if err := a.push(tok, c.index()); err != nil {
				return err
			}
			n++
		}
		if n == 0 {
			return &MissingValuesError{Name: a.name, Index: index}
		}
	default:
		tok, ok := c.peek()
		if !ok || isNamed(tok) {
			return &MissingValuesError{Name: a.name, Index: index}
		}
		c.next()
		if err := a.push(tok, c.index()); err != nil {
			return err
		}
	}
	a.setIndex(index)
	if a.callback != nil {
		a.callback(a)
	}
	return nil
}

// push converts tok and stores it. A single-value argument keeps only its latest value.
func (a *Argument[T]) push(tok string, index int) error {
	v, err := coerce[T](tok)
	if err != nil {
		return &ValueError{Name: a.name, Token: tok, Index: index, Err: err}
	}
	if a.flags.Has(MultipleValues) {
		a.values = append(a.values, v)
		return nil
	}
	a.values = []T{v}
	return nil
}

func validateParameter(name, abbr string) error {
	if !validNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q: name must start with a letter or digit and contain only letters, numbers, dots (.), dashes (-) or underscores (_)", ErrInvalidName, name)
	}
	if utf8.RuneCountInString(abbr) != 1 {
		return fmt.Errorf("%w: %q: abbreviation must be a single character, got %q", ErrInvalidName, name, abbr)
	}
	return nil
}
