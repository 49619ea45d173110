package process

// ProcessSignal represents signals that can be sent to processes
type ProcessSignal int

const (
	SignalTerminate ProcessSignal = iota // SIGTERM
	SignalInterrupt                      // SIGINT
	SignalKill                           // SIGKILL
)

func (s ProcessSignal) String() string {
	switch s {
	case SignalTerminate:
		return "SIGTERM"
	case SignalInterrupt:
		return "SIGINT"
	case SignalKill:
		return "SIGKILL"
	default:
		return "UNKNOWN"
	}
}
