package process

import (
	"context"

	"orbitalintel.ai/tools/internal/core/domain/process"
)

// Executor runs external commands to completion.
// Cancelling ctx interrupts the command; the returned error then wraps ctx.Err().
type Executor interface {
	Run(ctx context.Context, cmd process.Command) (process.Result, error)
}
