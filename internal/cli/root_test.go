package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// clearEnv removes configuration overrides inherited from the environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "APP_ENV", "NODE_ENV", "CHARTPRESS_CORS_ORIGINS", "CHARTPRESS_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"serve", "render", "validate", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd == root {
				t.Errorf("Find(%q) error = %v, want registered subcommand", name, err)
			}
		})
	}
}

func TestVerboseFlag(t *testing.T) {
	tests := []struct {
		args []string
		want log.Level
	}{
		{[]string{"probe"}, log.InfoLevel},
		{[]string{"probe", "-v"}, log.DebugLevel},
		{[]string{"probe", "--verbose"}, log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			root := c.RootCommand()

			var got log.Level
			var ctxLogger *log.Logger
			root.AddCommand(&cobra.Command{
				Use: "probe",
				Run: func(cmd *cobra.Command, args []string) {
					got = c.Logger.GetLevel()
					ctxLogger = loggerFromContext(cmd.Context())
				},
			})
			root.SetArgs(tt.args)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
			if ctxLogger != c.Logger {
				t.Error("command context should carry the CLI logger")
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "chartpress version") {
		t.Errorf("version output = %q, want it to contain %q", out.String(), "chartpress version")
	}
}

func TestCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "chartpress") {
		t.Error("bash completion should mention the command name")
	}
}
