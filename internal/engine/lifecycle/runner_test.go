package lifecycle_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.trai.ch/recipe/internal/engine/lifecycle"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fakeVertex struct {
	name      string
	completed bool
	cached    bool
	err       error
	log       bytes.Buffer
}

func (v *fakeVertex) Stdout() io.Writer { return &v.log }
func (v *fakeVertex) Stderr() io.Writer { return &v.log }
func (v *fakeVertex) Log(level domain.LogLevel, msg string) {
	v.log.WriteString(level.String() + " " + msg + "\n")
}
func (v *fakeVertex) Complete(err error) { v.completed, v.err = true, err }
func (v *fakeVertex) Cached()            { v.cached = true }

type fakeTelemetry struct {
	mu       sync.Mutex
	vertices []*fakeVertex
}

func (f *fakeTelemetry) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := &fakeVertex{name: name}
	f.vertices = append(f.vertices, v)
	return ports.ContextWithVertex(ctx, v), v
}

func (f *fakeTelemetry) Close() error { return nil }

func ok(_ context.Context) (bool, error) { return false, nil }

func TestRunner_Run_AllStagesComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	tel := &fakeTelemetry{}
	runner := lifecycle.NewRunner(mockLogger, tel)

	var order []domain.Stage
	step := func(stage domain.Stage) lifecycle.Step {
		return lifecycle.Step{Stage: stage, Run: func(ctx context.Context) (bool, error) {
			_, hasVertex := ports.VertexFromContext(ctx)
			assert.True(t, hasVertex, "stage context must carry its vertex")
			order = append(order, stage)
			return false, nil
		}}
	}

	err := runner.Run(context.Background(), []lifecycle.Step{
		step(domain.StageLoadDescriptor),
		step(domain.StageConfigure),
		step(domain.StageResolve),
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.Stage{domain.StageLoadDescriptor, domain.StageConfigure, domain.StageResolve}, order)
	for _, r := range runner.Report() {
		assert.Equal(t, domain.StageStatusCompleted, r.Status, r.Stage)
	}
	require.Len(t, tel.vertices, 3)
	for _, v := range tel.vertices {
		assert.True(t, v.completed)
		assert.NoError(t, v.err)
	}
}

func TestRunner_Run_FailureSkipsLaterStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	tel := &fakeTelemetry{}
	runner := lifecycle.NewRunner(mockLogger, tel)

	stageErr := zerr.With(domain.ErrGenerateFailed, "path", "/tmp/build/conan-packages.cmake")
	mockLogger.EXPECT().Error(stageErr).Times(1)

	importRan := false
	err := runner.Run(context.Background(), []lifecycle.Step{
		{Stage: domain.StageResolve, Run: ok},
		{Stage: domain.StageGenerate, Run: func(_ context.Context) (bool, error) { return false, stageErr }},
		{Stage: domain.StageImport, Run: func(_ context.Context) (bool, error) {
			importRan = true
			return false, nil
		}},
	})

	// The original error is returned unchanged.
	assert.Same(t, stageErr, err)
	assert.False(t, importRan)

	assert.Equal(t, domain.StageStatusCompleted, runner.Status(domain.StageResolve))
	assert.Equal(t, domain.StageStatusFailed, runner.Status(domain.StageGenerate))
	assert.Equal(t, domain.StageStatusSkipped, runner.Status(domain.StageImport))

	require.Len(t, tel.vertices, 2)
	failed := tel.vertices[1]
	assert.Equal(t, string(domain.StageGenerate), failed.name)
	assert.Same(t, stageErr, failed.err)
	assert.Contains(t, failed.log.String(), "ERROR")
	assert.Contains(t, failed.log.String(), domain.ErrGenerateFailed.Error())
}

func TestRunner_Run_CachedStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := &fakeTelemetry{}
	runner := lifecycle.NewRunner(mocks.NewMockLogger(ctrl), tel)

	err := runner.Run(context.Background(), []lifecycle.Step{
		{Stage: domain.StageResolve, Run: func(_ context.Context) (bool, error) { return true, nil }},
		{Stage: domain.StageGenerate, Run: ok},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StageStatusCached, runner.Status(domain.StageResolve))
	assert.Equal(t, domain.StageStatusCompleted, runner.Status(domain.StageGenerate))
	assert.True(t, tel.vertices[0].cached)
	assert.True(t, tel.vertices[0].completed)
	assert.False(t, tel.vertices[1].cached)
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	tel := &fakeTelemetry{}
	runner := lifecycle.NewRunner(mocks.NewMockLogger(ctrl), tel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, []lifecycle.Step{
		{Stage: domain.StageLoadDescriptor, Run: ok},
		{Stage: domain.StageConfigure, Run: ok},
	})
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, domain.StageStatusSkipped, runner.Status(domain.StageLoadDescriptor))
	assert.Equal(t, domain.StageStatusSkipped, runner.Status(domain.StageConfigure))
	assert.Empty(t, tel.vertices)
}

func TestRunner_Report_ResetsBetweenRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)
	runner := lifecycle.NewRunner(mockLogger, &fakeTelemetry{})

	boom := errors.New("boom")
	require.ErrorIs(t, runner.Run(context.Background(), []lifecycle.Step{
		{Stage: domain.StageResolve, Run: func(_ context.Context) (bool, error) { return false, boom }},
		{Stage: domain.StageGenerate, Run: ok},
	}), boom)

	require.NoError(t, runner.Run(context.Background(), []lifecycle.Step{
		{Stage: domain.StagePackageInfo, Run: ok},
	}))

	assert.Equal(t, []lifecycle.StageReport{
		{Stage: domain.StagePackageInfo, Status: domain.StageStatusCompleted},
	}, runner.Report())
	assert.Equal(t, domain.StageStatusPending, runner.Status(domain.StageResolve))
}
