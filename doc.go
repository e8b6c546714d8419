// Package cmdline parses a process argument vector into named arguments, switches, typed values
// and unnamed arguments.
//
// Parameters are declared on a [Parser] before parsing. Each has a long name, matched by "--name",
// and a one-character abbreviation, matched inside flag clusters such as "-abc" where every
// character selects a parameter of its own:
//
//	p := cmdline.New(os.Args, "Copies files", "1.0.0")
//	files, _ := cmdline.AddArgument[string](p, "files", "f", "source files", cmdline.Required|cmdline.MultipleValues, nil)
//	retries, _ := cmdline.AddArgument[int](p, "retries", "n", "attempts per file", 0, nil)
//	quiet, _ := cmdline.AddSwitch(p, "quiet", "q", "do not report progress", 0, nil)
//	if err := p.Parse(); err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    os.Exit(1)
//	}
//
// A value-taking argument reads the token after the one that matched it. With [MultipleValues] it
// keeps reading until the next flag cluster or long name, or the end of the list. Tokens that are
// neither flags nor consumed values are available through [Parser.Unnamed].
//
// Every parser declares three switches before any other: "--" (--ignore-rest) stops the expansion
// of flag clusters for the remainder of the list, -h (--help) writes the help text and -v
// (--version) writes the version text at the moment they are matched.
package cmdline
