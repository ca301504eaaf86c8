package cmake_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/cmake"
	"go.trai.ch/recipe/internal/core/domain"
)

func testDeps() []domain.ResolvedDependency {
	return []domain.ResolvedDependency{
		{Name: "vulkan", BuildSystemName: "Vulkan", Version: "1.3.216.0", RootPath: `C:\conan\vulkan\package\abc`},
		{Name: "glm", BuildSystemName: "glm", Version: "0.9.9.8", RootPath: "/home/dev/.conan/data/glm/package/def"},
		{Name: "glfw", BuildSystemName: "glfw3", Version: "3.3.7", RootPath: `D:\p\glfw`},
	}
}

func TestRender(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "conan_packages", []byte(cmake.Render(testDeps())))
}

func TestRender_NoBackslashes(t *testing.T) {
	assert.NotContains(t, cmake.Render(testDeps()), `\`)
}

// blockEntries returns the entry lines of the set() block assigning variable.
func blockEntries(content, variable string) []string {
	var entries []string
	inBlock := false
	for _, line := range strings.Split(content, "\n") {
		switch {
		case line == `set("`+variable+`"`:
			inBlock = true
		case inBlock && line == ")":
			return entries
		case inBlock:
			entries = append(entries, line)
		}
	}
	return entries
}

func TestRender_BlocksAlignedWithDependencies(t *testing.T) {
	deps := testDeps()
	content := cmake.Render(deps)

	for _, variable := range []string{
		cmake.ConanPackageNamesVar,
		cmake.CMakePackageNamesVar,
		cmake.CMakePackageVersionsVar,
		cmake.CMakePackagePathsVar,
	} {
		entries := blockEntries(content, variable)
		require.Len(t, entries, len(deps), variable)
		for i, dep := range deps {
			assert.Contains(t, entries[i], dep.Name, "%s entry %d", variable, i)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	content := cmake.Render(nil)
	assert.Equal(t, 4, strings.Count(content, "set("))
	assert.Empty(t, blockEntries(content, cmake.ConanPackageNamesVar))
}

func TestGenerator_Generate_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, cmake.FileName)
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than nothing\n"), 0o600))

	g := cmake.NewGenerator()

	got, err := g.Generate(testDeps(), dir)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	first, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cmake.Render(testDeps()), string(first))
	assert.NotContains(t, string(first), "stale content")

	_, err = g.Generate(testDeps(), dir)
	require.NoError(t, err)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerator_Generate_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "build")

	path, err := cmake.NewGenerator().Generate(testDeps(), dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerator_Generate_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory occupying the target name makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, cmake.FileName), 0o750))

	_, err := cmake.NewGenerator().Generate(testDeps(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrGenerateFailed.Error())
}
