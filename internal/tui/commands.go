// Package tui renders lifecycle progress recorded with progrock.
package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
	"go.trai.ch/zerr"
)

// TapeSource is an interface for reading progrock updates.
// Read blocks until an update is available and returns io.EOF once the
// recording has ended.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForTape returns a Bubble Tea command that reads the next update from the tape.
// It returns MsgTapeUpdate on success or MsgTapeEnded on EOF or error.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			return MsgTapeEnded{Err: ignoreEOF(err)}
		}
		return MsgTapeUpdate{Update: update}
	}
}

// Run renders tape to out until the tape ends or ctx is cancelled.
// Keyboard input is not read; interrupts are left to the caller's context.
func Run(ctx context.Context, tape TapeSource, out io.Writer) error {
	p := tea.NewProgram(
		NewModel(tape),
		tea.WithContext(ctx),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return zerr.Wrap(err, "progress display failed")
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
