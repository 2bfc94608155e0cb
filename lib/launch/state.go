// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launch

// State is a step in the launch sequence.
type State int

const (
	StateStart State = iota
	StateArgsOK
	StateValidated
	StateEnvConfigured
	StateHandedOff
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateArgsOK:
		return "args-ok"
	case StateValidated:
		return "validated"
	case StateEnvConfigured:
		return "env-configured"
	case StateHandedOff:
		return "handed-off"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
