package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactImporter = (*Importer)(nil)

// CopyRule copies files whose name matches Pattern from the Src subtree of a
// dependency to the Dst subtree of the output, keeping relative paths.
type CopyRule struct {
	Pattern string
	Src     string
	Dst     string
}

// DefaultRules are the runtime artifacts imported from every dependency.
var DefaultRules = []CopyRule{
	{Pattern: "*.dll", Src: "bin", Dst: "bin"},
	{Pattern: "*.dylib", Src: "lib", Dst: "lib"},
	{Pattern: "*.json", Src: "bin", Dst: "bin"},
}

// Importer implements ports.ArtifactImporter.
type Importer struct {
	walker *Walker
	hasher *Hasher
	rules  []CopyRule
}

// NewImporter creates an Importer applying DefaultRules.
func NewImporter(walker *Walker, hasher *Hasher) *Importer {
	return &Importer{walker: walker, hasher: hasher, rules: DefaultRules}
}

// Import copies the artifacts of deps into outputDir. Missing source subtrees
// and patterns without matches are not errors. It returns the destination paths.
func (i *Importer) Import(deps []domain.ResolvedDependency, outputDir string) ([]string, error) {
	var imported []string
	for _, dep := range deps {
		if dep.RootPath == "" {
			continue
		}
		for _, rule := range i.rules {
			copied, err := i.importRule(dep, rule, outputDir)
			if err != nil {
				return imported, zerr.With(err, "package", dep.Name)
			}
			imported = append(imported, copied...)
		}
	}
	return imported, nil
}

func (i *Importer) importRule(dep domain.ResolvedDependency, rule CopyRule, outputDir string) ([]string, error) {
	srcRoot := filepath.Join(dep.RootPath, rule.Src)
	if info, err := os.Stat(srcRoot); err != nil || !info.IsDir() {
		return nil, nil
	}

	var copied []string
	for path, err := range i.walker.WalkFiles(srcRoot) {
		if err != nil {
			err = zerr.Wrap(err, domain.ErrImportFailed.Error())
			return copied, zerr.With(err, "src", path)
		}

		matched, err := filepath.Match(rule.Pattern, filepath.Base(path))
		if err != nil {
			return copied, zerr.With(zerr.Wrap(err, "invalid import pattern"), "pattern", rule.Pattern)
		}
		if !matched {
			continue
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return copied, zerr.With(zerr.Wrap(err, domain.ErrImportFailed.Error()), "src", path)
		}
		dst := filepath.Join(outputDir, rule.Dst, rel)

		if err := i.copyFile(path, dst); err != nil {
			return copied, err
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

// copyFile copies src to dst keeping its mode. Identical destinations are left untouched.
func (i *Importer) copyFile(src, dst string) error {
	if i.sameContent(src, dst) {
		return nil
	}

	wrap := func(err error) error {
		err = zerr.Wrap(err, domain.ErrImportFailed.Error())
		err = zerr.With(err, "src", src)
		return zerr.With(err, "dst", dst)
	}

	info, err := os.Stat(src)
	if err != nil {
		return wrap(err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return wrap(err)
	}

	in, err := os.Open(src) //nolint:gosec // src comes from the host package folder
	if err != nil {
		return wrap(err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // dst is inside the output tree
	if err != nil {
		return wrap(err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return wrap(err)
	}
	if err := out.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

func (i *Importer) sameContent(src, dst string) bool {
	if _, err := os.Stat(dst); err != nil {
		return false
	}
	srcHash, err := i.hasher.ComputeFileHash(src)
	if err != nil {
		return false
	}
	dstHash, err := i.hasher.ComputeFileHash(dst)
	if err != nil {
		return false
	}
	return srcHash == dstHash
}
