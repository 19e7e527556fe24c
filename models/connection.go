package models

import "time"

// ConnectionStatus is the reachability/auth status of one remote service.
type ConnectionStatus int

const (
	// Connecting is the initial status and the status while a request is
	// being attempted after a failure.
	Connecting ConnectionStatus = iota
	// Connected means the last request reached the service and was accepted.
	Connected
	// Disconnected means the service could not be reached.
	Disconnected
	// Error means the service rejected the credentials.
	Error
)

func (s ConnectionStatus) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s ConnectionStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ConnectionState is the state held by a connection monitor.
type ConnectionState struct {
	// Status is the current status.
	Status ConnectionStatus `json:"status"`

	// Reason is the failure detail that caused the current status.
	// Empty for Connecting and Connected.
	Reason string `json:"reason,omitempty"`

	// LastFailure is the most recent failure detail seen by the monitor.
	// It is kept across every transition, including recovery.
	LastFailure string `json:"last_failure,omitempty"`

	// Since is the time of the last state change.
	Since time.Time `json:"since"`
}

// OutcomeType categorises the result of a single transport call.
type OutcomeType int

const (
	// OutcomeAttempt is reported right before a request goes to the network.
	OutcomeAttempt OutcomeType = iota
	// OutcomeReachable means a response was received and credentials were accepted.
	OutcomeReachable
	// OutcomeUnreachable means no response was received (network error or timeout).
	OutcomeUnreachable
	// OutcomeAuthFailed means the credential was missing or rejected.
	OutcomeAuthFailed
)

func (o OutcomeType) String() string {
	switch o {
	case OutcomeAttempt:
		return "attempt"
	case OutcomeReachable:
		return "reachable"
	case OutcomeUnreachable:
		return "unreachable"
	case OutcomeAuthFailed:
		return "auth_failed"
	default:
		return "unknown"
	}
}

// Outcome is what a transport reports to its connection monitor.
type Outcome struct {
	Type   OutcomeType
	Detail string
}
