package app

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/engine/lifecycle"
	"go.trai.ch/zerr"
)

// run carries the state shared by the stages of one lifecycle invocation.
type run struct {
	app    *App
	opts   RunOptions
	result *Result
}

func (a *App) newRun(opts RunOptions) *run {
	if opts.RecipeDir == "" {
		opts.RecipeDir = "."
	}
	return &run{app: a, opts: opts, result: &Result{}}
}

func (r *run) execute(ctx context.Context, steps ...lifecycle.Step) (*Result, error) {
	err := r.app.runner.Run(ctx, steps)
	r.result.Stages = r.app.runner.Report()
	if err != nil {
		return r.result, err
	}
	return r.result, nil
}

func (r *run) loadStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StageLoadDescriptor, Run: func(_ context.Context) (bool, error) {
		settings, err := r.app.configLoader.Load(r.opts.RecipeDir)
		if err != nil {
			return false, err
		}
		settings.BuildDir = resolveDir(r.opts.RecipeDir, settings.BuildDir)
		settings.OutputDir = resolveDir(r.opts.RecipeDir, settings.OutputDir)
		if r.opts.BuildDir != "" {
			settings.BuildDir = r.opts.BuildDir
		}
		if r.opts.OutputDir != "" {
			settings.OutputDir = r.opts.OutputDir
		}

		desc, err := r.app.descriptors.Load(r.opts.RecipeDir)
		if err != nil {
			return false, err
		}

		r.result.Settings = settings
		r.result.Recipe = domain.DefaultRecipe(desc)
		return false, nil
	}}
}

func (r *run) configureStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StageConfigure, Run: func(_ context.Context) (bool, error) {
		opts := make(domain.Options)
		if err := r.result.Recipe.Configure(opts); err != nil {
			return false, err
		}
		r.result.Options = opts
		return false, nil
	}}
}

func (r *run) resolveStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StageResolve, Run: func(ctx context.Context) (bool, error) {
		if r.opts.Offline {
			return true, r.replayLockfile()
		}

		deps, err := r.app.resolver.Resolve(ctx, r.result.Recipe, r.result.Options, r.result.Settings)
		if err != nil {
			return false, err
		}
		r.result.Dependencies = deps
		r.writeLockfile()
		return false, nil
	}}
}

// replayLockfile loads the dependencies recorded by the last online resolution.
func (r *run) replayLockfile() error {
	buildDir := r.result.Settings.BuildDir
	lock, err := r.app.store.Get(buildDir)
	if err != nil {
		return err
	}
	if lock == nil {
		return zerr.With(domain.ErrLockfileMissing, "build_dir", buildDir)
	}

	desc := r.result.Recipe.Descriptor
	if lock.Descriptor != desc {
		err := zerr.With(domain.ErrLockfileMissing, "build_dir", buildDir)
		err = zerr.With(err, "locked", lock.Descriptor.Ref())
		return zerr.With(err, "package", desc.Ref())
	}

	r.result.Dependencies = lock.Dependencies
	r.result.PackageID = lock.PackageID
	return nil
}

// writeLockfile records the resolution. Failing to do so only costs offline runs.
func (r *run) writeLockfile() {
	recipe := r.result.Recipe
	id, err := r.app.hasher.ComputePackageID(recipe.Identity(r.result.Dependencies))
	if err != nil {
		r.app.logger.Warn("failed to compute package id for lockfile: " + err.Error())
	}

	lock := domain.Lockfile{
		Version:      domain.LockfileVersion,
		Descriptor:   recipe.Descriptor,
		Dependencies: r.result.Dependencies,
		PackageID:    id,
		ResolvedAt:   r.app.now().UTC(),
	}
	if err := r.app.store.Put(r.result.Settings.BuildDir, lock); err != nil {
		r.app.logger.Warn("failed to write lockfile: " + err.Error())
	}
}

func (r *run) generateStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StageGenerate, Run: func(_ context.Context) (bool, error) {
		path, err := r.app.generator.Generate(r.result.Dependencies, r.result.Settings.BuildDir)
		if err != nil {
			return false, err
		}
		r.result.GeneratedFile = path
		return false, nil
	}}
}

func (r *run) importStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StageImport, Run: func(_ context.Context) (bool, error) {
		imported, err := r.app.importer.Import(r.result.Dependencies, r.result.Settings.OutputDir)
		r.result.Imported = imported
		if err != nil {
			return false, err
		}
		return false, nil
	}}
}

func (r *run) packageInfoStep() lifecycle.Step {
	return lifecycle.Step{Stage: domain.StagePackageInfo, Run: func(_ context.Context) (bool, error) {
		recipe := r.result.Recipe
		id, err := r.app.hasher.ComputePackageID(recipe.Identity(r.result.Dependencies))
		if err != nil {
			return false, err
		}
		r.result.Info = recipe.PackageInfo()
		r.result.PackageID = id
		return false, nil
	}}
}
