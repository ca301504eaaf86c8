package domain

import "slices"

const (
	// RequiredHostVersion is the conan version range the host command line is
	// written for. It is reported, not enforced.
	RequiredHostVersion = ">=2.0"

	// GeneratorName names the build-system flavour used for package names.
	GeneratorName = "cmake_find_package"

	// SharedPackage is the dependency that is always built as a shared library.
	SharedPackage = "vulkan"
)

// Requirement is a dependency declared by the recipe.
type Requirement struct {
	Name    string
	Version string
	// BuildOnly marks requirements needed to build and test, not at runtime.
	BuildOnly bool
}

// Ref returns the "name/version" reference understood by the host.
func (r Requirement) Ref() string {
	return r.Name + "/" + r.Version
}

// PackageInfo is the metadata the packaged artifact reports to the host.
type PackageInfo struct {
	// Libs lists the libraries consumers link against.
	Libs []string `json:"libs"`
}

// Recipe is the fixed dependency declaration of the project. It is read-only
// once constructed.
type Recipe struct {
	Descriptor   Descriptor
	Requirements []Requirement
	Generator    string
	HostVersion  string
}

// DefaultRecipe returns the recipe for the given descriptor with the project's
// hard-coded requirement list.
func DefaultRecipe(d Descriptor) *Recipe {
	return &Recipe{
		Descriptor: d,
		Requirements: []Requirement{
			{Name: "vulkan", Version: "1.3.216.0"},
			{Name: "glm", Version: "0.9.9.8", BuildOnly: true},
			{Name: "gtest", Version: "1.11.0", BuildOnly: true},
			{Name: "lodepng", Version: "cci.20200615", BuildOnly: true},
			{Name: "glfw", Version: "3.3.7", BuildOnly: true},
		},
		Generator:   GeneratorName,
		HostVersion: RequiredHostVersion,
	}
}

// Requires returns the runtime requirement references in declaration order.
func (r *Recipe) Requires() []string {
	return r.refs(false)
}

// BuildRequires returns the build-only requirement references in declaration order.
func (r *Recipe) BuildRequires() []string {
	return r.refs(true)
}

func (r *Recipe) refs(buildOnly bool) []string {
	var refs []string
	for _, req := range r.Requirements {
		if req.BuildOnly == buildOnly {
			refs = append(refs, req.Ref())
		}
	}
	return refs
}

// HasRequirement reports whether the recipe declares a requirement named name.
func (r *Recipe) HasRequirement(name string) bool {
	return slices.ContainsFunc(r.Requirements, func(req Requirement) bool {
		return req.Name == name
	})
}

// Configure applies the recipe's option overrides. The shared package is
// always forced to build a shared library.
func (r *Recipe) Configure(opts Options) error {
	return opts.Set(r, SharedPackage, "shared", "True")
}

// PackageInfo reports the exported libraries: none.
func (r *Recipe) PackageInfo() PackageInfo {
	return PackageInfo{Libs: []string{}}
}

// Identity returns the package identity in header-only form, so that no
// dependency setting or option takes part in it.
func (r *Recipe) Identity(deps []ResolvedDependency) PackageIdentity {
	id := PackageIdentity{
		Name:     r.Descriptor.Name,
		Version:  r.Descriptor.Version,
		Requires: make(map[string]string, len(deps)),
		Options:  make(map[string]string),
	}
	for _, dep := range deps {
		id.Requires[dep.Name] = dep.Version
		for k, v := range dep.Options {
			id.Options[dep.Name+":"+k] = v
		}
	}
	return id.HeaderOnly()
}
