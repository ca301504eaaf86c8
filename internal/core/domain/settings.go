package domain

// Settings configures how the recipe drives the package manager host.
type Settings struct {
	// Executable is the host CLI binary.
	Executable string
	// Profile is the host profile used for resolution; empty means the host default.
	Profile string
	// Remote restricts resolution to one remote; empty means all configured remotes.
	Remote string
	// BuildPolicy tells the host which packages to build from source (e.g. "missing").
	BuildPolicy string
	// BuildDir is where the host writes its output and where the generated file lands.
	BuildDir string
	// OutputDir is the root of the bin/ and lib/ artifact layout.
	OutputDir string
	// Env holds extra environment variables for the host process, e.g. CONAN_HOME.
	Env map[string]string
}

// DefaultSettings returns the settings used when no settings file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Executable:  "conan",
		BuildPolicy: "missing",
		BuildDir:    "build",
		OutputDir:   "build",
	}
}
