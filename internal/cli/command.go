package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// helpColumn is the width of the usage column in the command list.
const helpColumn = 28

// Command is one siteswap subcommand: check, suggest, repl or print-config.
type Command struct {
	// Flags are the command's own flags. Global flags (-C, -c) are parsed
	// by Run before the command is picked.
	Flags *flag.FlagSet

	// Usage follows "siteswap" in help output; its first word is the
	// command name, e.g. "suggest [flags] <pattern>".
	Usage string

	// Short is the one-liner in "siteswap --help".
	Short string

	// Long is shown by "siteswap <cmd> --help". Short is used when empty.
	Long string

	// Examples are invocations without the leading "siteswap", such as
	// "check 441 531".
	Examples []string

	// Exec runs the command with the arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine is the command's row in the global command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-*s %s", helpColumn, c.Usage, c.Short)
}

// PrintHelp prints usage, description, examples and flags.
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: siteswap", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if len(c.Examples) > 0 {
		o.Println()
		o.Println("Examples:")

		for _, ex := range c.Examples {
			o.Println("  siteswap", ex)
		}
	}

	if c.Flags != nil && c.Flags.HasFlags() {
		o.Println()
		o.Println("Flags:")

		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()
		o.Printf("%s", buf.String())
	}
}

// Run parses flags and executes the command. Returns exit code.
// A flag error prints the error on stderr and the command help on stdout.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // pflag's own messages are replaced by ours

	err := c.Flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)
			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		o.ErrPrintln("error:", err)
		return 1
	}

	return 0
}
