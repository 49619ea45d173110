package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"orbitalintel.ai/tools/internal/core/session"
)

// task is one guarded conversion prepared against a started session
type task struct {
	Fields    []session.Field
	Action    session.Action
	Artifacts []session.Artifact
}

// invocation carries what a command resolved before the session starts
type invocation struct {
	tool        session.Tool
	identity    session.RunIdentity
	commandLine string
	verbose     bool
}

// newInvocation fixes the run identity and reads the shared flags. secretPositions
// index the positional arguments masked in the command-line echo.
func (c *CLIContainer) newInvocation(cmd *cobra.Command, tool session.Tool, secretPositions ...int) invocation {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return invocation{
		tool:        tool,
		identity:    session.NewRunIdentity(c.clock().Now()),
		commandLine: commandLine(cmd, secretPositions...),
		verbose:     verbose,
	}
}

// runConversion begins the session, reports, guards the action and finalizes.
// Only session setup errors are returned; the conversion outcome is logged.
func (c *CLIContainer) runConversion(cmd *cobra.Command, inv invocation, prepare func(s *session.Session) task) error {
	s, err := session.Begin(session.Options{
		Tool:     inv.tool,
		Identity: inv.identity,
		WorkDir:  c.WorkDir,
		Console:  c.Console,
		Verbose:  inv.verbose,
		Clock:    c.clock(),
	})
	if err != nil {
		return fmt.Errorf("failed to start %s session: %w", inv.tool.Program, err)
	}
	defer s.Close()

	t := prepare(s)

	if err := s.ReportStart(inv.commandLine, t.Fields); err != nil {
		return err
	}

	ctx, stop := c.interrupts(cmd.Context())
	defer stop()

	outcome := s.Guard(ctx, t.Action)

	if err := s.Finalize(outcome, t.Artifacts); err != nil {
		return fmt.Errorf("failed to finalize %s report: %w", inv.tool.Program, err)
	}
	return nil
}
