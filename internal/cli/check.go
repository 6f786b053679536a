package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

var (
	errPatternRequired = errors.New("at least one pattern is required")
	errNotJSONArray    = errors.New("not a JSON array")
)

// CheckCmd returns the check command.
func CheckCmd() *Command {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.Bool("json", false, "Read each pattern as a JSON array of throws")
	fs.Bool("strict", false, "Fail unless every pattern is a valid siteswap")

	return &Command{
		Flags: fs,
		Usage: "check [flags] <pattern>...",
		Short: "Validate patterns",
		Long: `Decode each pattern and report its status, length, average ball count
and both validity checks. Characters outside 0-9a-z are ignored.

Statuses: empty, invalid (not jugglable), partial (jugglable but not a
siteswap), valid (a siteswap).`,
		Examples: []string{
			"check 441 531",
			"check --strict 97531",
			"check --json '[4, 4, 1]'",
		},
		Exec: func(_ context.Context, io *IO, args []string) error {
			return execCheck(io, fs, args)
		},
	}
}

func execCheck(io *IO, fs *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return errPatternRequired
	}

	asJSON, _ := fs.GetBool("json")
	strict, _ := fs.GetBool("strict")

	patterns := make([]siteswap.Pattern, 0, len(args))

	for _, arg := range args {
		p, err := decodeArg(arg, asJSON)
		if err != nil {
			return err
		}

		patterns = append(patterns, p)
	}

	var notValid []string

	for _, p := range patterns {
		io.Println(formatAnalysis(siteswap.Analyze(p)))

		if strict {
			_, err := siteswap.PlayablePattern(p)
			if err != nil {
				notValid = append(notValid, fmt.Sprintf("%q", p.String()))
			}
		}
	}

	if len(notValid) > 0 {
		return fmt.Errorf("%w: %s", siteswap.ErrNotSiteswap, strings.Join(notValid, ", "))
	}

	return nil
}

// decodeArg decodes a pattern argument as alphabet text or, with asJSON, as
// a JSON array whose non-integer elements are dropped.
func decodeArg(arg string, asJSON bool) (siteswap.Pattern, error) {
	if !asJSON {
		return siteswap.Decode(arg), nil
	}

	var vals []any

	err := json.Unmarshal([]byte(arg), &vals)
	if err != nil {
		return siteswap.Pattern{}, fmt.Errorf("%w: %s", errNotJSONArray, arg)
	}

	return siteswap.FromValues(vals), nil
}
