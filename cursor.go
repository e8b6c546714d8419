package cmdline

import "strings"

// cursor walks the argument list left to right. Position 0 is the program path and is never
// returned by next.
type cursor struct {
	args []string
	pos  int
}

func newCursor(args []string) *cursor {
	return &cursor{args: args}
}

// next advances to the following token. It returns false once the list is exhausted.
func (c *cursor) next() (string, bool) {
	if c.pos+1 >= len(c.args) {
		return "", false
	}
	c.pos++
	return c.args[c.pos], true
}

// peek returns the following token without consuming it.
func (c *cursor) peek() (string, bool) {
	if c.pos+1 >= len(c.args) {
		return "", false
	}
	return c.args[c.pos+1], true
}

// unread gives the current token back so the next call to next returns it again.
func (c *cursor) unread() {
	if c.pos > 0 {
		c.pos--
	}
}

// index returns the position of the current token in the argument list.
func (c *cursor) index() int {
	return c.pos
}

// isFlagCluster reports whether tok is a cluster of abbreviations such as "-x", "-xyz" or "--".
func isFlagCluster(tok string) bool {
	if !strings.HasPrefix(tok, "-") {
		return false
	}
	return !strings.HasPrefix(tok, "--") || len(tok) == 2
}

// isLongName reports whether tok selects a parameter by name, as in "--name".
func isLongName(tok string) bool {
	return strings.HasPrefix(tok, "--") && len(tok) > 2
}

// isNamed reports whether tok is handled by a parameter rather than being a value or unnamed
// argument.
func isNamed(tok string) bool {
	return isFlagCluster(tok) || isLongName(tok)
}
