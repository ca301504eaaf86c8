// Package app implements the application layer for recipe.
package app

import (
	"context"
	"path/filepath"
	"time"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/engine/lifecycle"
)

// RunOptions holds the per-invocation overrides given on the command line.
type RunOptions struct {
	// RecipeDir holds name-version.txt and the optional settings file.
	RecipeDir string
	// BuildDir overrides the settings build directory when set.
	BuildDir string
	// OutputDir overrides the settings artifact output directory when set.
	OutputDir string
	// Offline replays the lockfile instead of invoking the host.
	Offline bool
}

// Result collects what a lifecycle run produced. Fields of stages that did not
// run are left zero.
type Result struct {
	Recipe        *domain.Recipe
	Settings      *domain.Settings
	Options       domain.Options
	Dependencies  []domain.ResolvedDependency
	GeneratedFile string
	Imported      []string
	Info          domain.PackageInfo
	PackageID     string
	Stages        []lifecycle.StageReport
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	descriptors  ports.DescriptorLoader
	resolver     ports.DependencyResolver
	generator    ports.BuildFileGenerator
	importer     ports.ArtifactImporter
	hasher       ports.Hasher
	store        ports.LockfileStore
	logger       ports.Logger
	runner       *lifecycle.Runner
	now          func() time.Time
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	descriptors ports.DescriptorLoader,
	resolver ports.DependencyResolver,
	generator ports.BuildFileGenerator,
	importer ports.ArtifactImporter,
	hasher ports.Hasher,
	store ports.LockfileStore,
	logger ports.Logger,
	runner *lifecycle.Runner,
) *App {
	return &App{
		configLoader: configLoader,
		descriptors:  descriptors,
		resolver:     resolver,
		generator:    generator,
		importer:     importer,
		hasher:       hasher,
		store:        store,
		logger:       logger,
		runner:       runner,
		now:          time.Now,
	}
}

// WithClock replaces the clock used to stamp lockfiles.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Install runs the whole lifecycle: resolve, generate, import and package info.
func (a *App) Install(ctx context.Context, opts RunOptions) (*Result, error) {
	r := a.newRun(opts)
	return r.execute(ctx,
		r.loadStep(),
		r.configureStep(),
		r.resolveStep(),
		r.generateStep(),
		r.importStep(),
		r.packageInfoStep(),
	)
}

// Generate resolves the dependencies and writes the build-system include file.
func (a *App) Generate(ctx context.Context, opts RunOptions) (*Result, error) {
	r := a.newRun(opts)
	return r.execute(ctx,
		r.loadStep(),
		r.configureStep(),
		r.resolveStep(),
		r.generateStep(),
	)
}

// Import resolves the dependencies and copies their runtime artifacts.
func (a *App) Import(ctx context.Context, opts RunOptions) (*Result, error) {
	r := a.newRun(opts)
	return r.execute(ctx,
		r.loadStep(),
		r.configureStep(),
		r.resolveStep(),
		r.importStep(),
	)
}

// Info reports the package metadata without contacting the host.
func (a *App) Info(ctx context.Context, opts RunOptions) (*Result, error) {
	r := a.newRun(opts)
	return r.execute(ctx,
		r.loadStep(),
		r.packageInfoStep(),
	)
}

// resolveDir anchors a relative settings path at the recipe directory.
func resolveDir(recipeDir, dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(recipeDir, dir)
}
