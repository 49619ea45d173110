package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/core/clock"
	"orbitalintel.ai/tools/internal/core/ports/conversion"
)

var (
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds all the dependencies for CLI commands
type CLIContainer struct {
	Clock   clock.Clock
	WorkDir string    // where <Tool>_Artifacts is created; empty for the current directory
	Console io.Writer // console log sink

	Icons        conversion.IconConverter
	QR           conversion.QRRenderer
	GifConverter func(ffmpegPath string) conversion.GifConverter

	// Interrupts derives the context cancelled by an operator interrupt
	Interrupts func(ctx context.Context) (context.Context, context.CancelFunc)
}

// NotifyInterrupts cancels the returned context on SIGINT or SIGTERM
func NotifyInterrupts(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

func (c *CLIContainer) clock() clock.Clock {
	if c.Clock == nil {
		return clock.System{}
	}
	return c.Clock
}

func (c *CLIContainer) interrupts(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Interrupts == nil {
		return NotifyInterrupts(ctx)
	}
	return c.Interrupts(ctx)
}

// newToolCommand creates the single root command of one tool binary
func newToolCommand(use, short, long, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set custom version template
	cmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// registered before cobra adds --version so -v stays with --verbose
	cmd.Flags().BoolP("verbose", "v", false, "Display verbose output\nVerbose output is disabled by default")

	return cmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// NormalizeArgs rewrites the two-letter -df alias to --destfile
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case arg == "-df":
			out = append(out, "--destfile")
		case strings.HasPrefix(arg, "-df="):
			out = append(out, "--destfile="+strings.TrimPrefix(arg, "-df="))
		default:
			out = append(out, arg)
		}
	}
	return out
}

type rawArgsKey struct{}

// commandLine rebuilds the invocation for the start report. The positional arguments
// at secretPositions are shown masked.
func commandLine(cmd *cobra.Command, secretPositions ...int) string {
	raw, _ := cmd.Context().Value(rawArgsKey{}).([]string)

	secret := make(map[int]bool, len(secretPositions))
	for _, p := range secretPositions {
		secret[p] = true
	}

	parts := []string{cmd.Name()}
	position := 0
	flagValue, terminated := false, false
	for i, arg := range NormalizeArgs(raw) {
		shown := raw[i]
		switch {
		case flagValue:
			flagValue = false
		case !terminated && arg == "--":
			terminated = true
		case !terminated && len(arg) > 1 && strings.HasPrefix(arg, "-"):
			flagValue = takesValue(cmd, arg)
		default:
			if secret[position] {
				shown = mask
			}
			position++
		}
		parts = append(parts, shown)
	}
	return strings.Join(parts, " ")
}

// takesValue reports whether the flag token consumes the following argument
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	flags := cmd.Flags()
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag := flags.Lookup(name)
		return flag != nil && flag.NoOptDefVal == ""
	}

	short := strings.TrimPrefix(arg, "-")
	if len(short) != 1 {
		return false
	}
	flag := flags.ShorthandLookup(short)
	return flag != nil && flag.NoOptDefVal == ""
}

const mask = "********"

// Execute runs a tool command and returns the process exit code. Pre-flight failures
// print "Error: <msg>" and exit 1; every conversion outcome exits 0.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(NormalizeArgs(args))
	cmd.SetErr(stderr)

	ctx = context.WithValue(ctx, rawArgsKey{}, append([]string(nil), args...))
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
