package tui

import "github.com/vito/progrock"

// MsgTapeUpdate wraps the raw update from progrock.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded is sent when the tape stream has ended. Err is nil on a clean EOF.
type MsgTapeEnded struct {
	Err error
}
