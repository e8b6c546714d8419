package cmdline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
)

// stopIndex is the registry slot of the built-in stop switch. The dispatcher reads it on every
// cluster character.
const stopIndex = 0

var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// Parser tokenizes a process argument list and dispatches each token to the declared parameters.
//
// A Parser is built with [New], parameters are declared with [AddArgument] and [AddSwitch], and the
// argument list is then processed by a single call to [Parser.Parse]. Three switches are always
// declared first:
//
//	-- , --ignore-rest   stop expanding flag clusters for the rest of the argument list
//	-h , --help          write the help text
//	-v , --version       write the version text
//
// A Parser is not safe for concurrent use.
type Parser struct {
	args        []string
	description string
	version     string
	separator   string
	stdout      io.Writer
	logger      *slog.Logger

	params  []Parameter
	unnamed []int
	cursor  *cursor
	parsed  bool
}

// New returns a parser for args, the full argument vector including the program path at index 0,
// typically [os.Args]. The description and version are included in the help and version text.
func New(args []string, description, version string, opts ...Option) *Parser {
	cfg := checkAndSetConfig(opts)
	p := &Parser{
		args:        args,
		description: description,
		version:     version,
		separator:   cfg.separator,
		stdout:      cfg.stdout,
		logger:      cfg.logger,
		params:      make([]Parameter, 0, 32),
	}
	mustAddSwitch(p, "ignore-rest", "-", "Stop parsing command line arguments following this flag", nil)
	mustAddSwitch(p, "help", "h", "Displays usage information", func(*Argument[bool]) { p.Help() })
	mustAddSwitch(p, "version", "v", "Displays version information", func(*Argument[bool]) { p.Version() })
	return p
}

func mustAddSwitch(p *Parser, name, abbr, help string, fn func(*Argument[bool])) {
	if _, err := AddSwitch(p, name, abbr, help, 0, fn); err != nil {
		panic(fmt.Sprintf("cmdline: built-in switch: %v", err))
	}
}

// add appends param to the registry unless its name or abbreviation is already taken.
func (p *Parser) add(param Parameter) error {
	d := param.desc()
	for _, existing := range p.params {
		e := existing.desc()
		if e.matchName(d.name) {
			return fmt.Errorf("%w: name %q already declared", ErrDuplicate, d.name)
		}
		if e.matchAbbr(d.abbr) {
			return fmt.Errorf("%w: abbreviation %q already declared by %q", ErrDuplicate, d.abbr, e.name)
		}
	}
	p.params = append(p.params, param)
	return nil
}

// Parse processes the argument list once, left to right, starting after the program path.
//
// A token starting with "-" that is not a long name is a flag cluster: each character after the
// dash is matched against parameter abbreviations in declaration order. A token of the form "--name"
// is matched against parameter names. Any other token not consumed as a value is recorded as an
// unnamed argument.
//
// Parse returns an [*UnknownFlagError], [*UnknownArgumentError], [*ValueError] or
// [*MissingValuesError] as soon as such a problem is found. If the whole list was processed but
// required parameters are missing, the returned error joins one [*MissingRequiredError] per missing
// parameter and all other matches remain available. Calling Parse again returns [ErrParsed].
func (p *Parser) Parse() error {
	if p.parsed {
		return ErrParsed
	}
	p.parsed = true
	p.cursor = newCursor(p.args)

	for {
		tok, ok := p.cursor.next()
		if !ok {
			break
		}
		index := p.cursor.index()
		switch {
		case isFlagCluster(tok):
			for off, r := range tok[1:] {
				if p.stopped() {
					break
				}
				param := p.lookupAbbr(string(r))
				if param == nil {
					return &UnknownFlagError{Flag: r, Offset: off + 1, Index: index, Token: tok}
				}
				if err := p.dispatch(param, index); err != nil {
					return err
				}
			}
		case isLongName(tok):
			param := p.Lookup(tok[2:])
			if param == nil {
				return &UnknownArgumentError{Token: tok, Index: index}
			}
			if err := p.dispatch(param, index); err != nil {
				return err
			}
		default:
			p.unnamed = append(p.unnamed, index)
		}
	}
	return p.checkRequired()
}

func (p *Parser) dispatch(param Parameter, index int) error {
	if err := param.register(index, p.cursor); err != nil {
		return err
	}
	p.logger.Debug("argument matched",
		slog.String("name", param.Name()),
		slog.String("abbr", param.Abbr()),
		slog.Int("index", index),
		slog.Int("recurrence", param.Recurrence()),
	)
	return nil
}

// stopped reports whether the stop switch has been matched.
func (p *Parser) stopped() bool {
	return p.params[stopIndex].Flags().Has(Found)
}

func (p *Parser) checkRequired() error {
	var errs []error
	for _, param := range p.params {
		if param.Flags().Has(Required) && param.Index() == InvalidIndex {
			errs = append(errs, &MissingRequiredError{Name: param.Name(), Abbr: param.Abbr()})
		}
	}
	return errors.Join(errs...)
}

func (p *Parser) lookupAbbr(abbr string) Parameter {
	for _, param := range p.params {
		if param.desc().matchAbbr(abbr) {
			return param
		}
	}
	return nil
}

// Lookup returns the parameter declared with name, or nil if there is none.
func (p *Parser) Lookup(name string) Parameter {
	for _, param := range p.params {
		if param.desc().matchName(name) {
			return param
		}
	}
	return nil
}

// Parameters returns every declared parameter, built-in switches first, in declaration order.
func (p *Parser) Parameters() []Parameter {
	return append([]Parameter(nil), p.params...)
}

// NumUnnamed returns the number of unnamed arguments recorded by [Parser.Parse].
func (p *Parser) NumUnnamed() int {
	return len(p.unnamed)
}

// UnnamedIndex returns the position in the argument list of the i-th unnamed argument.
func (p *Parser) UnnamedIndex(i int) (int, error) {
	if i < 0 || i >= len(p.unnamed) {
		return InvalidIndex, fmt.Errorf("unnamed argument %d of %d: %w", i, len(p.unnamed), ErrOutOfRange)
	}
	return p.unnamed[i], nil
}

// Unnamed returns the i-th unnamed argument.
func (p *Parser) Unnamed(i int) (string, error) {
	index, err := p.UnnamedIndex(i)
	if err != nil {
		return "", err
	}
	return p.args[index], nil
}
