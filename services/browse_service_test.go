package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "city.gdb"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "exports"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.sde"), []byte("connection"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0o644))

	return dir
}

func TestBrowseDetectsDatasourceTypes(t *testing.T) {
	dir := browseFixture(t)

	result, err := Browse(dir, "")
	require.NoError(t, err)
	assert.Equal(t, dir, result.CurrentPath)
	assert.Equal(t, filepath.Dir(dir), result.ParentPath)
	require.Len(t, result.Items, 4)

	types := map[string]string{}
	for _, item := range result.Items {
		types[item.Name] = item.Type
	}
	assert.Equal(t, "gdb", types["city.gdb"])
	assert.Equal(t, "sde", types["prod.sde"])
	assert.Equal(t, "folder", types["exports"])
	assert.Equal(t, "file", types["notes.txt"])
}

func TestBrowseSortsFoldersFirst(t *testing.T) {
	dir := browseFixture(t)

	result, err := Browse(dir, "")
	require.NoError(t, err)

	// city.gdb is a directory on disk but not a plain folder in the listing.
	assert.Equal(t, "exports", result.Items[0].Name)
	assert.Equal(t, "folder", result.Items[0].Type)
}

func TestBrowseFilterKeepsFoldersNavigable(t *testing.T) {
	dir := browseFixture(t)

	result, err := Browse(dir, "gdb")
	require.NoError(t, err)

	names := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		names = append(names, item.Name)
	}
	assert.Contains(t, names, "city.gdb")
	assert.Contains(t, names, "exports")
	assert.NotContains(t, names, "prod.sde")
	assert.NotContains(t, names, "notes.txt")
}

func TestBrowseMissingPath(t *testing.T) {
	_, err := Browse(filepath.Join(t.TempDir(), "does-not-exist"), "")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestBrowseEmptyPathListsRoots(t *testing.T) {
	result, err := Browse("  ", "")
	require.NoError(t, err)
	assert.Empty(t, result.CurrentPath)
	assert.NotEmpty(t, result.Drives)
	require.NotEmpty(t, result.Items)
	assert.Equal(t, "folder", result.Items[0].Type)
}

func TestIsGeodatabaseRequiresDirectory(t *testing.T) {
	dir := t.TempDir()
	fakeGdb := filepath.Join(dir, "flat.gdb")
	require.NoError(t, os.WriteFile(fakeGdb, []byte(""), 0o644))

	assert.False(t, isGeodatabase(fakeGdb))
	assert.False(t, isSdeConnection(filepath.Join(dir, "missing.sde")))
}
