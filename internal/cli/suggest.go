package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/siteswap/internal/config"
	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

var errNotJugglable = errors.New("pattern is not jugglable")

// SuggestCmd returns the suggest command.
func SuggestCmd(cfg *config.Config) *Command {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	fs.IntP("balls", "b", cfg.Balls, "Number of balls (1-35)")
	fs.Int("height", cfg.MaxHeight, "Highest throw to append (balls-35)")
	fs.IntP("count", "n", cfg.MaxResults, "Maximum suggestions (5-100)")
	fs.IntP("length", "l", cfg.MaxLength, "Maximum throws to append (1-5)")
	fs.String("order", cfg.Order, "Search order (depth|breadth)")
	fs.Int("max-steps", cfg.MaxSteps, "Candidates to try before giving up")
	fs.String("timeout", cfg.Timeout, "Stop searching after this long (e.g. 500ms)")
	fs.Bool("json", false, "Read the pattern as a JSON array of throws")

	return &Command{
		Flags: fs,
		Usage: "suggest [flags] <pattern>",
		Short: "List completions of a pattern",
		Long: `Append throws to <pattern> and print every completion that is a valid
siteswap with the requested number of balls, one per line.

Without a pattern, complete from scratch. Depth order lists short
completions first; breadth order lists all completions of one length
before the next.`,
		Examples: []string{
			"suggest 5",
			"suggest -b 4 --height 6 -l 2 53",
			"suggest --order breadth --count 20",
		},
		Exec: func(ctx context.Context, io *IO, args []string) error {
			return execSuggest(ctx, io, *cfg, fs, args)
		},
	}
}

func execSuggest(ctx context.Context, io *IO, cfg config.Config, fs *flag.FlagSet, args []string) error {
	cfg = applySuggestFlags(cfg, fs)

	err := config.Validate(cfg)
	if err != nil {
		return err
	}

	cfg, warnings := config.Clamp(cfg)
	warnClamped(io, warnings)

	params, err := cfg.SearchParams()
	if err != nil {
		return err
	}

	asJSON, _ := fs.GetBool("json")

	p, err := decodeArg(strings.Join(args, ""), asJSON && len(args) > 0)
	if err != nil {
		return err
	}

	if !p.IsJugglable() {
		return fmt.Errorf("%w: %s", errNotJugglable, p)
	}

	ctx, cancel, err := cfg.Context(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	results, err := siteswap.Suggest(ctx, p, params)

	for _, s := range results {
		io.Println(s)
	}

	return searchOutcome(io, err)
}

// searchOutcome turns a search error into a warning when the results are
// merely partial. Cancellation by the user stays an error.
func searchOutcome(io *IO, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, siteswap.ErrStepBudget):
		io.Warn("search stopped early: "+err.Error(), "raise --max-steps, or lower --length or --height")
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		io.Warn("search stopped early: timeout reached", "raise --timeout, or lower --length or --height")
		return nil
	default:
		return err
	}
}

// applySuggestFlags overlays flags the user set on cfg.
func applySuggestFlags(cfg config.Config, fs *flag.FlagSet) config.Config {
	ints := map[string]*int{
		"balls":     &cfg.Balls,
		"height":    &cfg.MaxHeight,
		"count":     &cfg.MaxResults,
		"length":    &cfg.MaxLength,
		"max-steps": &cfg.MaxSteps,
	}

	for name, dst := range ints {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}

	if fs.Changed("order") {
		cfg.Order, _ = fs.GetString("order")
	}

	if fs.Changed("timeout") {
		cfg.Timeout, _ = fs.GetString("timeout")
	}

	return cfg
}

// formatSuggestions numbers suggestions for interactive display.
func formatSuggestions(results []string) []string {
	lines := make([]string, len(results))
	width := len(strconv.Itoa(len(results)))

	for i, s := range results {
		lines[i] = fmt.Sprintf("  %*d. %s", width, i+1, s)
	}

	return lines
}
