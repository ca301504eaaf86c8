package tui_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/recipe/internal/tui"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type sliceTape struct {
	updates []*progrock.StatusUpdate
}

func (s *sliceTape) Read() (*progrock.StatusUpdate, error) {
	if len(s.updates) == 0 {
		return nil, io.EOF
	}
	u := s.updates[0]
	s.updates = s.updates[1:]
	return u, nil
}

// blockingTape yields nothing until its context is done.
type blockingTape struct {
	ctx context.Context
}

func (b *blockingTape) Read() (*progrock.StatusUpdate, error) {
	<-b.ctx.Done()
	return nil, io.EOF
}

func TestRun_EndsWithTape(t *testing.T) {
	tape := &sliceTape{updates: []*progrock.StatusUpdate{{
		Vertexes: []*progrock.Vertex{{
			Id:        "1",
			Name:      "package_info",
			Completed: timestamppb.New(time.Now()),
		}},
	}}}

	var out bytes.Buffer
	require.NoError(t, tui.Run(context.Background(), tape, &out))
	assert.Contains(t, out.String(), "package_info")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tape := &blockingTape{ctx: ctx}

	var out bytes.Buffer
	assert.NoError(t, tui.Run(ctx, tape, &out))
}
