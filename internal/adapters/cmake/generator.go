// Package cmake writes the CMake include file that exposes resolved dependencies
// to the downstream build.
package cmake

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileName is the name of the generated include file.
const FileName = "conan-packages.cmake"

// Variable names set by the generated file, prefixed with the CMake project name.
const (
	ConanPackageNamesVar    = "${PROJECT_NAME}_CONAN_PACKAGE_NAMES"
	CMakePackageNamesVar    = "${PROJECT_NAME}_CMAKE_PACKAGE_NAMES"
	CMakePackageVersionsVar = "${PROJECT_NAME}_CMAKE_PACKAGE_VERSIONS"
	CMakePackagePathsVar    = "${PROJECT_NAME}_CMAKE_PACKAGE_PATHS"
)

// Generator implements ports.BuildFileGenerator.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes FileName into dir, replacing any existing file.
func (g *Generator) Generate(deps []domain.ResolvedDependency, dir string) (string, error) {
	path := filepath.Join(dir, FileName)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", path)
	}

	//nolint:gosec // generated file is read by the downstream build
	if err := os.WriteFile(path, []byte(Render(deps)), 0o644); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrGenerateFailed.Error()), "path", path)
	}
	return path, nil
}

// Render returns the content of the generated file. The four blocks are
// index-aligned with deps.
func Render(deps []domain.ResolvedDependency) string {
	var b strings.Builder

	writeBlock(&b, ConanPackageNamesVar, deps, func(d domain.ResolvedDependency) (string, bool) {
		return d.Name, false
	})
	writeBlock(&b, CMakePackageNamesVar, deps, func(d domain.ResolvedDependency) (string, bool) {
		return d.BuildSystemName, true
	})
	writeBlock(&b, CMakePackageVersionsVar, deps, func(d domain.ResolvedDependency) (string, bool) {
		return d.Version, true
	})
	writeBlock(&b, CMakePackagePathsVar, deps, func(d domain.ResolvedDependency) (string, bool) {
		return d.SlashRootPath(), true
	})

	return b.String()
}

// writeBlock writes one set(...) assignment. value returns the entry and
// whether to annotate it with the package name.
func writeBlock(
	b *strings.Builder,
	variable string,
	deps []domain.ResolvedDependency,
	value func(domain.ResolvedDependency) (string, bool),
) {
	b.WriteString(`set("` + variable + `"` + "\n")
	for _, dep := range deps {
		v, annotate := value(dep)
		b.WriteString(`    "` + v + `"`)
		if annotate {
			b.WriteString(" # " + dep.Name)
		}
		b.WriteString("\n")
	}
	b.WriteString(")\n")
}
