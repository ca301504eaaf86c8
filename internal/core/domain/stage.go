package domain

// Stage names a step of the recipe lifecycle.
type Stage string

const (
	// StageLoadDescriptor reads the package name and version.
	StageLoadDescriptor Stage = "load_descriptor"
	// StageConfigure applies the dependency option overrides.
	StageConfigure Stage = "configure"
	// StageResolve asks the host to resolve the dependency graph.
	StageResolve Stage = "resolve"
	// StageGenerate writes the generated build-system include file.
	StageGenerate Stage = "generate"
	// StageImport copies runtime artifacts into the output tree.
	StageImport Stage = "import"
	// StagePackageInfo reports package metadata and identity.
	StagePackageInfo Stage = "package_info"
)

// StageStatus represents the lifecycle state of a stage.
type StageStatus string

const (
	// StageStatusPending indicates the stage has not started yet.
	StageStatusPending StageStatus = "pending"
	// StageStatusRunning indicates the stage is executing.
	StageStatusRunning StageStatus = "running"
	// StageStatusCompleted indicates the stage finished successfully.
	StageStatusCompleted StageStatus = "completed"
	// StageStatusFailed indicates the stage returned an error.
	StageStatusFailed StageStatus = "failed"
	// StageStatusCached indicates the stage was served from the lockfile.
	StageStatusCached StageStatus = "cached"
	// StageStatusSkipped indicates the stage never ran because an earlier one failed.
	StageStatusSkipped StageStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached, Skipped).
func (s StageStatus) IsTerminal() bool {
	switch s {
	case StageStatusCompleted, StageStatusFailed, StageStatusCached, StageStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
