// Package conan implements the package manager host adapter on top of the conan CLI.
package conan

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// rootNodeID is the consumer node conan places at the top of every graph.
const rootNodeID = "0"

var _ ports.DependencyResolver = (*Host)(nil)

// Host implements ports.DependencyResolver by invoking "conan install".
type Host struct {
	runner ports.CommandRunner
}

// NewHost creates a Host running conan through runner.
func NewHost(runner ports.CommandRunner) *Host {
	return &Host{runner: runner}
}

// Resolve installs the recipe's requirements into settings.BuildDir and returns
// the resolved dependencies ordered by graph node id.
func (h *Host) Resolve(
	ctx context.Context,
	recipe *domain.Recipe,
	opts domain.Options,
	settings *domain.Settings,
) ([]domain.ResolvedDependency, error) {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	args := installArgs(recipe, opts, settings)

	// conan prints the graph to stdout and its progress to stderr
	output, stderr, err := h.runner.Run(ctx, domain.Command{
		Name: settings.Executable,
		Args: args,
		Env:  settings.Env,
	})
	if err != nil {
		hostErr := zerr.Wrap(err, domain.ErrHostResolveFailed.Error())
		hostErr = zerr.With(hostErr, "package", recipe.Descriptor.Ref())
		hostErr = zerr.With(hostErr, "command", settings.Executable+" "+strings.Join(args, " "))
		return nil, zerr.With(hostErr, "stderr", strings.TrimSpace(string(stderr)))
	}

	return parseInstallOutput(output)
}

// installArgs builds the following command line:
//
//	conan install --requires a/1 --tool-requires b/2 --options a/*:shared=True
//	  --build missing --output-folder <buildDir> --format json [--profile P] [--remote R]
func installArgs(recipe *domain.Recipe, opts domain.Options, settings *domain.Settings) []string {
	args := []string{"install"}
	for _, ref := range recipe.Requires() {
		args = append(args, "--requires", ref)
	}
	for _, ref := range recipe.BuildRequires() {
		args = append(args, "--tool-requires", ref)
	}
	for _, opt := range opts.Args() {
		args = append(args, "--options", opt)
	}
	if settings.BuildPolicy != "" {
		args = append(args, "--build", settings.BuildPolicy)
	}
	args = append(args, "--output-folder", settings.BuildDir, "--format", "json")
	if settings.Profile != "" {
		args = append(args, "--profile", settings.Profile)
	}
	if settings.Remote != "" {
		args = append(args, "--remote", settings.Remote)
	}
	return args
}

// parseInstallOutput converts the host JSON graph into resolved dependencies.
func parseInstallOutput(output []byte) ([]domain.ResolvedDependency, error) {
	var m installOutput
	if err := json.Unmarshal(output, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse conan install JSON output")
	}

	ids := make([]string, 0, len(m.Graph.Nodes))
	for id := range m.Graph.Nodes {
		if id == rootNodeID {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, zerr.With(domain.ErrHostResolveFailed, "reason", "empty dependency graph")
	}
	slices.SortFunc(ids, compareNodeIDs)

	deps := make([]domain.ResolvedDependency, 0, len(ids))
	for _, id := range ids {
		dep, err := toResolvedDependency(m.Graph.Nodes[id])
		if err != nil {
			return nil, zerr.With(err, "node", id)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// compareNodeIDs orders numeric ids numerically, ahead of any non-numeric id.
func compareNodeIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func toResolvedDependency(node nodeInfo) (domain.ResolvedDependency, error) {
	name, version := node.Name, node.Version
	if name == "" || version == "" {
		// ref format: glfw/3.3.7#revision or glfw/3.3.7@user/channel#revision
		ref, _, _ := strings.Cut(node.Ref, "#")
		ref, _, _ = strings.Cut(ref, "@")
		refName, refVersion, ok := strings.Cut(ref, "/")
		if !ok {
			return domain.ResolvedDependency{}, zerr.With(domain.ErrHostResolveFailed, "invalid_ref", node.Ref)
		}
		if name == "" {
			name = refName
		}
		if version == "" {
			version = refVersion
		}
	}

	buildName := name
	if root, ok := node.CppInfo["root"]; ok && root.Properties.CMakeFileName != "" {
		buildName = root.Properties.CMakeFileName
	}

	return domain.ResolvedDependency{
		Ref:             node.Ref,
		Name:            name,
		BuildSystemName: buildName,
		Version:         version,
		RootPath:        node.PackageFolder,
		Context:         node.Context,
		Options:         node.Options,
	}, nil
}
