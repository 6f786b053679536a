package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/calvinalkan/siteswap/internal/config"
)

const (
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
	usageHint    = "Run 'siteswap --help' for usage."
)

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownFlag     = errors.New("unknown flag")
	errUnknownCommand  = errors.New("unknown command")
)

// Run is the main entry point. Returns exit code.
//
// The first signal received on sigCh cancels the running command. sigCh may
// be nil.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	o := NewIO(out, errOut)

	if len(args) > 0 {
		args = args[1:]
	}

	flags, err := parseGlobalFlags(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln(usageHint)

		return 1
	}

	cfg, warnings, err := config.Load(config.LoadInput{
		WorkDir:    flags.workDir,
		ConfigPath: flags.configPath,
		Env:        env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	warnClamped(o, warnings)

	commands := []*Command{
		CheckCmd(),
		SuggestCmd(&cfg),
		ReplCmd(&cfg, in),
		PrintConfigCmd(&cfg),
	}

	if len(flags.remaining) == 0 || flags.remaining[0] == helpFlag || flags.remaining[0] == "help" {
		printUsage(o, commands)

		return o.Finish()
	}

	name := flags.remaining[0]

	var cmd *Command

	for _, c := range commands {
		if c.Name() == name {
			cmd = c

			break
		}
	}

	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		o.ErrPrintln(usageHint)

		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	code := cmd.Run(ctx, o, flags.remaining[1:])

	if finishCode := o.Finish(); code == 0 {
		code = finishCode
	}

	return code
}

func warnClamped(o *IO, warnings []config.Warning) {
	for _, w := range warnings {
		o.Warn(w.String(), clampFix(w.Key))
	}
}

// clampFix names the accepted range of a setting and where to change it.
func clampFix(key string) string {
	switch key {
	case "balls":
		return fmt.Sprintf("balls takes %d-%d; set it in the config or with suggest -b", config.MinBalls, config.MaxBalls)
	case "max_height":
		return fmt.Sprintf("max_height takes balls-%d; set it in the config or with suggest --height", config.MaxHeight)
	case "max_results":
		return fmt.Sprintf("max_results takes %d-%d; set it in the config or with suggest -n", config.MinMaxResults, config.MaxMaxResults)
	case "max_length":
		return fmt.Sprintf("max_length takes %d-%d; set it in the config or with suggest -l", config.MinMaxLength, config.MaxMaxLength)
	case "max_steps":
		return fmt.Sprintf("max_steps takes %d-%d; set it in the config or with suggest --max-steps", config.MinMaxSteps, config.MaxMaxSteps)
	default:
		return "fix " + key + " in the config"
	}
}

type globalFlags struct {
	workDir    string
	configPath string
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if arg == "-C" || arg == "--cwd" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func printUsage(o *IO, commands []*Command) {
	o.Println(`siteswap - analyze and complete juggling patterns

Usage: siteswap [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
  -h, --help         Show this help

Commands:`)

	for _, c := range commands {
		o.Println(c.HelpLine())
	}

	o.Println(`
Run 'siteswap <command> --help' for command flags.`)
}
