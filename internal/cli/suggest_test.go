package cli_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/siteswap/internal/cli"
)

func lines(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}

func TestSuggestCommand(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		config string
		args   []string
		want   []string
	}{
		{
			name: "depth order from scratch",
			args: []string{"suggest", "-b", "3", "--height", "4", "-l", "3", "-n", "10"},
			want: []string{"144", "234", "24", "3", "33", "333", "342", "414", "42", "423"},
		},
		{
			name: "breadth order from scratch",
			args: []string{"suggest", "--balls=3", "--height=4", "--length=3", "--count=10", "--order=breadth"},
			want: []string{"3", "24", "33", "42", "144", "234", "333", "342", "414", "423"},
		},
		{
			name: "completes base pattern",
			args: []string{"suggest", "--height", "5", "-l", "2", "5"},
			want: []string{"504", "51", "522", "531"},
		},
		{
			name: "json base pattern",
			args: []string{"suggest", "--json", "--height", "5", "-l", "2", "[5]"},
			want: []string{"504", "51", "522", "531"},
		},
		{
			name:   "settings from config file",
			config: `{"max_height": 5, "max_length": 2, "order": "breadth"}`,
			args:   []string{"suggest", "5"},
			want:   []string{"51", "504", "522", "531"},
		},
		{
			name:   "flags override config file",
			config: `{"max_height": 5, "max_length": 2, "order": "breadth"}`,
			args:   []string{"suggest", "--order", "depth", "5"},
			want:   []string{"504", "51", "522", "531"},
		},
		{
			name: "no completion in reach",
			args: []string{"suggest", "-b", "3", "-l", "1", "99"},
			want: nil,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)
			if tt.config != "" {
				c.WriteConfig(tt.config)
			}

			stdout := c.MustRun(tt.args...)
			if diff := cmp.Diff(tt.want, lines(stdout)); diff != "" {
				t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_Suggest_Fails_When_Pattern_Not_Jugglable(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	stderr := c.MustFail("suggest", "10")
	cli.AssertContains(t, stderr, "error: pattern is not jugglable: 10")
}

func Test_Suggest_Fails_When_Order_Or_Timeout_Invalid(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("suggest", "--order", "random", "5")
	cli.AssertContains(t, stderr, "unknown order")

	stderr = c.MustFail("suggest", "--timeout", "soon", "5")
	cli.AssertContains(t, stderr, "invalid timeout")

	stdout, stderr, code := c.Run("suggest", "--bogus", "5")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	cli.AssertContains(t, stderr, "error: unknown flag: --bogus")
	cli.AssertContains(t, stdout, "Usage: siteswap suggest [flags] <pattern>")
}

func Test_Suggest_Warns_When_Value_Clamped(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, stderr, code := c.Run("suggest", "-n", "1", "-b", "3", "--height", "4", "-l", "3")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (warnings)", code)
	}

	if diff := cmp.Diff([]string{"144", "234", "24", "3", "33"}, lines(strings.TrimSpace(stdout))); diff != "" {
		t.Errorf("suggestions mismatch (-want +got):\n%s", diff)
	}

	cli.AssertContains(t, stderr, "warning: max_results=1 out of range, using 5")
}

func Test_Suggest_Warns_When_Step_Budget_Exceeded(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, stderr, code := c.Run("suggest", "--max-steps", "10", "--height", "9", "-l", "5")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1 (warnings)", code)
	}

	if stdout != "" {
		t.Errorf("stdout should be empty, got %q", stdout)
	}

	cli.AssertContains(t, stderr, "warning: search stopped early")
	cli.AssertContains(t, stderr, "step budget exceeded")
	cli.AssertContains(t, stderr, "(raise --max-steps, or lower --length or --height)")
}
