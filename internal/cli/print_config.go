package cli

import (
	"context"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/siteswap/internal/config"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(cfg *config.Config) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long:  "Display the effective configuration and which files it was loaded from.",
		Examples: []string{
			"print-config",
			"-c juggling.json print-config",
		},
		Exec: func(_ context.Context, io *IO, _ []string) error {
			return execPrintConfig(io, cfg)
		},
	}
}

func execPrintConfig(io *IO, cfg *config.Config) error {
	printConfigValues(io, cfg)

	io.Println("")
	io.Println("# sources")

	if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
		io.Println("(defaults only)")
	} else {
		if cfg.Sources.Global != "" {
			io.Println("global_config=" + cfg.Sources.Global)
		}

		if cfg.Sources.Project != "" {
			io.Println("project_config=" + cfg.Sources.Project)
		}
	}

	return nil
}

func printConfigValues(io *IO, cfg *config.Config) {
	io.Println("effective_cwd=" + cfg.EffectiveCwd)
	io.Println("balls=" + strconv.Itoa(cfg.Balls))
	io.Println("max_height=" + strconv.Itoa(cfg.MaxHeight))
	io.Println("max_results=" + strconv.Itoa(cfg.MaxResults))
	io.Println("max_length=" + strconv.Itoa(cfg.MaxLength))
	io.Println("order=" + cfg.Order)
	io.Println("max_steps=" + strconv.Itoa(cfg.MaxSteps))

	if cfg.Timeout != "" {
		io.Println("timeout=" + cfg.Timeout)
	}

	if cfg.HistoryFile != "" {
		io.Println("history_file=" + cfg.HistoryFile)
	}
}
