package cmdline

// Flags is a bit set describing how a parameter is matched and what it collects.
type Flags uint32

const (
	// Required marks a parameter that must appear on the command line.
	Required Flags = 1 << iota
	// Switch marks a presence-only parameter that collects no values.
	Switch
	// MultipleValues makes a parameter greedily collect values until the next flag cluster,
	// long-name token, or the end of the argument list.
	MultipleValues
	// Found is set by the parser once the parameter has been matched.
	Found
)

// Has reports whether all bits of mask are set in f.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// InvalidIndex is the found position of a parameter that has not been matched.
const InvalidIndex = -1

// Parameter is the read-only view of a declared parameter shared by switches and typed arguments.
type Parameter interface {
	// Name returns the long identifier matched by "--name".
	Name() string
	// Abbr returns the single character matched inside a flag cluster.
	Abbr() string
	// Help returns the help text shown by [Parser.Help].
	Help() string
	// Flags returns the declaration flags, with [Found] set once matched.
	Flags() Flags
	// Index returns the position in the argument list of the latest match, or [InvalidIndex].
	Index() int
	// Recurrence returns how many times the parameter was matched.
	Recurrence() int

	desc() *descriptor
	register(index int, c *cursor) error
}

// descriptor holds the metadata and occurrence state common to every parameter.
type descriptor struct {
	name       string
	abbr       string
	help       string
	flags      Flags
	index      int
	recurrence int
}

func newDescriptor(name, abbr, help string, flags Flags) descriptor {
	return descriptor{
		name:  name,
		abbr:  abbr,
		help:  help,
		flags: flags,
		index: InvalidIndex,
	}
}

func (d *descriptor) Name() string    { return d.name }
func (d *descriptor) Abbr() string    { return d.abbr }
func (d *descriptor) Help() string    { return d.help }
func (d *descriptor) Flags() Flags    { return d.flags }
func (d *descriptor) Index() int      { return d.index }
func (d *descriptor) Recurrence() int { return d.recurrence }

// IsSet reports whether the parameter was matched at least once.
func (d *descriptor) IsSet() bool {
	return d.flags.Has(Found)
}

func (d *descriptor) desc() *descriptor { return d }

// setIndex records a match at index.
func (d *descriptor) setIndex(index int) {
	d.index = index
	d.recurrence++
	d.flags |= Found
}

func (d *descriptor) matchName(name string) bool {
	return d.name == name
}

func (d *descriptor) matchAbbr(abbr string) bool {
	return d.abbr == abbr
}
