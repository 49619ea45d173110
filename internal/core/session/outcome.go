package session

import (
	"errors"
	"fmt"
	"time"
)

// Status is the terminal result of the guarded conversion
type Status string

const (
	StatusCompleted Status = "completed"
	StatusAborted   Status = "aborted"
	StatusFailed    Status = "failed"
)

// ErrAborted is the cause recorded on an aborted outcome
var ErrAborted = errors.New("aborted by user")

// Outcome is the typed result of Session.Guard
type Outcome struct {
	Status    Status
	Err       error
	Stack     string
	StartedAt time.Time
	EndedAt   time.Time
}

// Elapsed returns the wall-clock duration of the action
func (o Outcome) Elapsed() time.Duration {
	return o.EndedAt.Sub(o.StartedAt)
}

// String returns a string representation of the outcome
func (o Outcome) String() string {
	if o.Err == nil {
		return fmt.Sprintf("Outcome{Status: %s, Elapsed: %v}", o.Status, o.Elapsed())
	}
	return fmt.Sprintf("Outcome{Status: %s, Elapsed: %v, Err: %v}", o.Status, o.Elapsed(), o.Err)
}

// panicError carries a recovered panic value
type panicError struct {
	value interface{}
}

func (p panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}
