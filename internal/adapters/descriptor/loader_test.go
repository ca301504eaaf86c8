package descriptor_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/descriptor"
	"go.trai.ch/recipe/internal/core/domain"
)

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, domain.DescriptorFileName), []byte(content), 0o600)
	require.NoError(t, err)
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeDescriptor(t, "foo:1.2.3")

	d, err := descriptor.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "foo", d.Name)
	assert.Equal(t, "1.2.3", d.Version)
}

func TestLoader_Load_TrimsWhitespace(t *testing.T) {
	dir := writeDescriptor(t, " exqudens-vulkan : 1.0.0 \r\n")

	d, err := descriptor.NewLoader().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.Descriptor{Name: "exqudens-vulkan", Version: "1.0.0"}, d)
}

func TestLoader_Load_MissingColon(t *testing.T) {
	dir := writeDescriptor(t, "foo-1.2.3")

	d, err := descriptor.NewLoader().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrInvalidDescriptor.Error())
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Version)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	d, err := descriptor.NewLoader().Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, domain.Descriptor{}, d)
}
