//nolint:testpackage // Testing internal parsing logic
package conan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const installJSON = `{
  "graph": {
    "nodes": {
      "0": {"ref": "conanfile", "name": null, "context": "host"},
      "10": {
        "ref": "glfw/3.3.7#2f5a0a8d3b1b2d7a6f4c1e2d3c4b5a69",
        "name": "glfw",
        "version": "3.3.7",
        "context": "build",
        "package_folder": "C:\\Users\\dev\\.conan2\\p\\glfw9a1b\\p",
        "cpp_info": {"root": {"properties": {"cmake_file_name": "glfw3"}}}
      },
      "1": {
        "ref": "vulkan/1.3.216.0#5e0c1d4a",
        "name": "vulkan",
        "version": "1.3.216.0",
        "context": "host",
        "package_folder": "/home/dev/.conan2/p/vulkbe9a/p",
        "options": {"shared": "True"},
        "cpp_info": {"root": {"properties": {"cmake_file_name": "Vulkan"}}}
      },
      "2": {
        "ref": "glm/0.9.9.8#a1b2",
        "context": "build",
        "package_folder": "/home/dev/.conan2/p/glm1c2d/p",
        "cpp_info": {"root": {"properties": {}}}
      }
    }
  }
}`

func TestParseInstallOutput_Success(t *testing.T) {
	deps, err := parseInstallOutput([]byte(installJSON))
	require.NoError(t, err)
	require.Len(t, deps, 3)

	// Ordered by numeric node id: 1, 2, 10
	assert.Equal(t, domain.ResolvedDependency{
		Ref:             "vulkan/1.3.216.0#5e0c1d4a",
		Name:            "vulkan",
		BuildSystemName: "Vulkan",
		Version:         "1.3.216.0",
		RootPath:        "/home/dev/.conan2/p/vulkbe9a/p",
		Context:         "host",
		Options:         map[string]string{"shared": "True"},
	}, deps[0])

	// Name and version fall back to the reference, build name to the package name.
	assert.Equal(t, "glm", deps[1].Name)
	assert.Equal(t, "0.9.9.8", deps[1].Version)
	assert.Equal(t, "glm", deps[1].BuildSystemName)

	assert.Equal(t, "glfw", deps[2].Name)
	assert.Equal(t, "glfw3", deps[2].BuildSystemName)
	assert.Equal(t, `C:\Users\dev\.conan2\p\glfw9a1b\p`, deps[2].RootPath)
}

func TestParseInstallOutput_InvalidJSON(t *testing.T) {
	_, err := parseInstallOutput([]byte(`invalid json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse conan install JSON output")
}

func TestParseInstallOutput_EmptyGraph(t *testing.T) {
	_, err := parseInstallOutput([]byte(`{"graph": {"nodes": {"0": {"ref": "conanfile"}}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHostResolveFailed.Error())
}

func TestParseInstallOutput_InvalidRef(t *testing.T) {
	_, err := parseInstallOutput([]byte(`{"graph": {"nodes": {"1": {"ref": "broken"}}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHostResolveFailed.Error())
}

func TestToResolvedDependency_UserChannelRef(t *testing.T) {
	dep, err := toResolvedDependency(nodeInfo{Ref: "lodepng/cci.20200615@exqudens/stable#abcd"})
	require.NoError(t, err)
	assert.Equal(t, "lodepng", dep.Name)
	assert.Equal(t, "cci.20200615", dep.Version)
}

func TestInstallArgs(t *testing.T) {
	r := domain.DefaultRecipe(domain.Descriptor{Name: "foo", Version: "1.0.0"})
	opts := domain.Options{}
	require.NoError(t, r.Configure(opts))

	settings := domain.DefaultSettings()
	settings.BuildDir = "out"
	settings.Profile = "release"
	settings.Remote = "conancenter"

	assert.Equal(t, []string{
		"install",
		"--requires", "vulkan/1.3.216.0",
		"--tool-requires", "glm/0.9.9.8",
		"--tool-requires", "gtest/1.11.0",
		"--tool-requires", "lodepng/cci.20200615",
		"--tool-requires", "glfw/3.3.7",
		"--options", "vulkan/*:shared=True",
		"--build", "missing",
		"--output-folder", "out",
		"--format", "json",
		"--profile", "release",
		"--remote", "conancenter",
	}, installArgs(r, opts, settings))
}

func TestHost_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	h := NewHost(runner)

	var got domain.Command
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) ([]byte, []byte, error) {
			got = cmd
			return []byte(installJSON), nil, nil
		})

	r := domain.DefaultRecipe(domain.Descriptor{Name: "foo", Version: "1.0.0"})
	deps, err := h.Resolve(context.Background(), r, domain.Options{}, nil)
	require.NoError(t, err)
	assert.Len(t, deps, 3)
	assert.Equal(t, "conan", got.Name)
	assert.Contains(t, got.Args, "--output-folder")
}

func TestHost_Resolve_PassesEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	h := NewHost(runner)

	settings := domain.DefaultSettings()
	settings.Executable = "/opt/conan/bin/conan"
	settings.Env = map[string]string{"CONAN_HOME": "/tmp/conan-home"}

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command) ([]byte, []byte, error) {
			assert.Equal(t, "/opt/conan/bin/conan", cmd.Name)
			assert.Equal(t, settings.Env, cmd.Env)
			return []byte(installJSON), nil, nil
		})

	r := domain.DefaultRecipe(domain.Descriptor{Name: "foo", Version: "1.0.0"})
	_, err := h.Resolve(context.Background(), r, domain.Options{}, settings)
	require.NoError(t, err)
}

func TestHost_Resolve_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	h := NewHost(runner)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(nil, []byte("ERROR: Package 'vulkan/1.3.216.0' not resolved\n"), errors.New("exit status 1"))

	r := domain.DefaultRecipe(domain.Descriptor{Name: "foo", Version: "1.0.0"})
	_, err := h.Resolve(context.Background(), r, domain.Options{}, domain.DefaultSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrHostResolveFailed.Error())
	assert.Contains(t, err.Error(), "exit status 1")
}
