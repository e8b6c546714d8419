package cmdline

import (
	"encoding"
	"flag"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// checkType reports whether values of type T can be parsed from a token.
func checkType[T any]() error {
	var v T
	switch any(&v).(type) {
	case flag.Value, encoding.TextUnmarshaler:
		return nil
	}
	t := reflect.TypeOf(&v).Elem()
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// coerce converts tok to a value of type T. Conversions do not depend on the locale and the whole
// token must be used.
func coerce[T any](tok string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case flag.Value:
		if err := p.Set(tok); err != nil {
			return v, err
		}
		return v, nil
	case encoding.TextUnmarshaler:
		if err := p.UnmarshalText([]byte(tok)); err != nil {
			return v, err
		}
		return v, nil
	}
	if err := setValue(reflect.ValueOf(&v).Elem(), tok); err != nil {
		return v, err
	}
	return v, nil
}

func setValue(field reflect.Value, tok string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(tok)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(tok)
		if err != nil {
			return fmt.Errorf("invalid bool value %q: %w", tok, err)
		}
		field.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(tok)
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", tok, err)
			}
			field.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(tok, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q: %w", tok, err)
		}
		field.SetInt(i)
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(tok, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q: %w", tok, err)
		}
		field.SetUint(u)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q: %w", tok, err)
		}
		field.SetFloat(f)
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
}
