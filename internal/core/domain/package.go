package domain

import "strings"

// ResolvedDependency is a dependency as located by the package manager host.
type ResolvedDependency struct {
	// Ref is the full host reference (e.g. "glfw/3.3.7#revision").
	Ref string `json:"ref"`

	// Name is the host package identifier (e.g. "glfw").
	Name string `json:"name"`

	// BuildSystemName is the name the build system uses to find the package (e.g. "glfw3").
	BuildSystemName string `json:"build_system_name"`

	// Version is the resolved version string.
	Version string `json:"version"`

	// RootPath is the absolute install root of the package.
	RootPath string `json:"root_path"`

	// Context is "host" for runtime requirements and "build" for build-only ones.
	Context string `json:"context,omitzero"`

	// Options holds the options the host built the package with.
	Options map[string]string `json:"options,omitzero"`
}

// SlashRootPath returns RootPath with every backslash replaced by a forward slash,
// independently of the running platform.
func (d ResolvedDependency) SlashRootPath() string {
	return strings.ReplaceAll(d.RootPath, `\`, "/")
}
