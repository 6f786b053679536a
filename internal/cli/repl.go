package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/siteswap/internal/config"
	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

var (
	errUnknownSessionCommand = errors.New("unknown command")
	errUnknownSetting        = errors.New("unknown setting")
	errSetUsage              = errors.New("usage: :set <key> <value>")
)

// ReplCmd returns the repl command. Input is read from in; on a terminal
// the session gets line editing, history and Tab completion.
func ReplCmd(cfg *config.Config, in io.Reader) *Command {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.Bool("no-suggest", false, "Do not list suggestions after each pattern")

	return &Command{
		Flags: fs,
		Usage: "repl [flags]",
		Short: "Interactive pattern checker",
		Long: `Read patterns line by line. Each line is checked like 'siteswap check';
for jugglable input the suggestions from 'siteswap suggest' follow.
On a terminal, Tab completes the current line with a suggestion.

Session commands:
  :set <key> <value>   Change balls, max_height, max_results, max_length,
                       order or timeout for this session
  :order <order>       Shortcut for :set order <order>
  :config              Show session settings
  :help                Show this help
  :quit, :q            Leave the session (Ctrl-D also works)`,
		Examples: []string{
			"repl",
			"repl --no-suggest < patterns.txt",
		},
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execRepl(ctx, io, *cfg, in, fs)
		},
	}
}

// session is the state of one repl run.
type session struct {
	ctx     context.Context
	io      *IO
	cfg     config.Config
	hist    *history
	suggest bool
}

func execRepl(ctx context.Context, io *IO, cfg config.Config, in io.Reader, fs *flag.FlagSet) error {
	hist, err := loadHistory(cfg.HistoryFile)
	if err != nil {
		return err
	}

	noSuggest, _ := fs.GetBool("no-suggest")

	s := &session{
		ctx:     ctx,
		io:      io,
		cfg:     cfg,
		hist:    hist,
		suggest: !noSuggest,
	}

	if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) {
		err = s.runTerminal()
	} else {
		err = s.runLines(in)
	}

	return errors.Join(err, hist.save())
}

// runLines reads plain lines until EOF, for pipes and tests.
func (s *session) runLines(in io.Reader) error {
	if in == nil {
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if s.ctx.Err() != nil || !s.handle(scanner.Text()) {
			return nil
		}
	}

	return scanner.Err()
}

// runTerminal runs the session with line editing.
func (s *session) runTerminal() error {
	ln := liner.NewLiner()
	defer ln.Close()

	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	for _, line := range s.hist.lines {
		ln.AppendHistory(line)
	}

	s.io.Println("siteswap - type a pattern, Tab for suggestions, :help for commands")

	for {
		line, err := ln.Prompt("siteswap> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				s.io.Println()

				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}

		if !s.handle(line) {
			return nil
		}
	}
}

// handle processes one input line. Returns false when the session ends.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	s.hist.add(line)

	if strings.HasPrefix(line, ":") {
		return s.command(strings.Fields(line))
	}

	a := siteswap.Analyze(siteswap.Decode(line))
	s.io.Println(formatAnalysis(a))

	if !s.suggest || a.Status == siteswap.StatusEmpty || a.Status == siteswap.StatusInvalid {
		return true
	}

	results, err := s.suggestions(a.Pattern)
	for _, l := range formatSuggestions(results) {
		s.io.Println(l)
	}

	if err != nil {
		s.io.ErrPrintln("warning:", err)
	}

	return true
}

// complete is the Tab completer: the suggestions for the current line.
func (s *session) complete(line string) []string {
	results, _ := s.suggestions(siteswap.Decode(line))
	return results
}

func (s *session) suggestions(p siteswap.Pattern) ([]string, error) {
	params, err := s.cfg.SearchParams()
	if err != nil {
		return nil, err
	}

	ctx, cancel, err := s.cfg.Context(s.ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	return siteswap.Suggest(ctx, p, params)
}

// command runs a ":" session command. Returns false when the session ends.
func (s *session) command(fields []string) bool {
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return false
	case ":help":
		s.printHelp()
	case ":config":
		printConfigValues(s.io, &s.cfg)
	case ":order":
		s.set(append([]string{":set", "order"}, fields[1:]...))
	case ":set":
		s.set(fields)
	default:
		s.io.ErrPrintln("error:", fmt.Errorf("%w: %s (type :help)", errUnknownSessionCommand, fields[0]))
	}

	return true
}

func (s *session) printHelp() {
	s.io.Println(`Type a pattern (0-9, a-z) to check it and list completions.

  :set <key> <value>   balls, max_height, max_results, max_length, order, timeout
  :order <order>       depth or breadth
  :config              Show session settings
  :help                Show this help
  :quit, :q            Leave the session`)
}

// set changes one session setting. Values are validated and clamped like
// config file values.
func (s *session) set(fields []string) {
	if len(fields) != 3 {
		s.io.ErrPrintln("error:", errSetUsage)
		return
	}

	key, value := fields[1], fields[2]
	cfg := s.cfg

	ints := map[string]*int{
		"balls":       &cfg.Balls,
		"max_height":  &cfg.MaxHeight,
		"max_results": &cfg.MaxResults,
		"max_length":  &cfg.MaxLength,
	}

	switch {
	case ints[key] != nil:
		n, err := strconv.Atoi(value)
		if err != nil {
			s.io.ErrPrintln("error:", fmt.Errorf("%s: %w", key, err))
			return
		}

		*ints[key] = n
	case key == "order":
		cfg.Order = value
	case key == "timeout":
		cfg.Timeout = value
	default:
		s.io.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownSetting, key))
		return
	}

	err := config.Validate(cfg)
	if err != nil {
		s.io.ErrPrintln("error:", err)
		return
	}

	cfg, warnings := config.Clamp(cfg)
	for _, w := range warnings {
		s.io.ErrPrintln("warning:", warning{issue: w.String(), fix: clampFix(w.Key)})
	}

	s.cfg = cfg

	if n := ints[key]; n != nil {
		value = strconv.Itoa(*n)
	}

	s.io.Println(key + "=" + value)
}
