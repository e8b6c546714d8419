package cmdline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Help writes the help text to the parser output. It is called when the built-in help switch is
// matched and may also be called directly, before or after [Parser.Parse].
func (p *Parser) Help() {
	_, _ = io.WriteString(p.stdout, p.HelpText())
}

// Version writes the version text to the parser output.
func (p *Parser) Version() {
	_, _ = io.WriteString(p.stdout, p.VersionText())
}

// VersionText returns the version line written by [Parser.Version].
func (p *Parser) VersionText() string {
	return "Version" + p.separator + "[" + p.version + "]\n"
}

// HelpText returns the text written by [Parser.Help]: a usage line listing every parameter in
// declaration order with optional ones in brackets, one block per parameter, the version and the
// description.
func (p *Parser) HelpText() string {
	var b strings.Builder

	b.WriteString("Usage:\n")
	b.WriteString(p.executable())
	for _, param := range p.params {
		optional := !param.Flags().Has(Required)
		b.WriteString(p.separator)
		if optional {
			b.WriteString("[")
		}
		b.WriteString("-" + param.Abbr())
		if optional {
			b.WriteString("]")
		}
	}
	b.WriteString("\n\nWhere:\n")
	for _, param := range p.params {
		fmt.Fprintf(&b, "-%s,%s--%s\n", param.Abbr(), p.separator, param.Name())
		b.WriteString(p.separator)
		if param.Flags().Has(Required) {
			b.WriteString("(required)")
		}
		b.WriteString(param.Help())
		b.WriteString("\n\n")
	}
	b.WriteString(p.VersionText())
	b.WriteString("\nDescription:\n")
	b.WriteString(p.description)
	b.WriteString("\n")
	return b.String()
}

func (p *Parser) executable() string {
	if len(p.args) == 0 || p.args[0] == "" {
		return ""
	}
	return filepath.Base(p.args[0])
}
