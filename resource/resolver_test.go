package resource

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r Resource) string {
	t.Helper()
	in, err := r.Open()
	require.NoError(t, err)
	defer func() { _ = in.Close() }()
	b, err := io.ReadAll(in)
	require.NoError(t, err)
	return string(b)
}

func TestFileResolverBarePath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/users.properties", []byte("a=b\n"), 0o644))

	r := &FileResolver{Fs: fsys}
	res, err := r.Resolve("/etc/users.properties")
	require.NoError(t, err)
	assert.Equal(t, "a=b\n", readAll(t, res))
}

func TestFileResolverFileScheme(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/users.properties", []byte("a=b\n"), 0o644))

	r := &FileResolver{Fs: fsys}
	for _, loc := range []string{"file:/etc/users.properties", "file:///etc/users.properties"} {
		res, err := r.Resolve(loc)
		require.NoError(t, err, loc)
		assert.Equal(t, "a=b\n", readAll(t, res), loc)
	}
}

func TestFileResolverRejectsOtherSchemes(t *testing.T) {
	r := &FileResolver{Fs: afero.NewMemMapFs()}
	for _, loc := range []string{"classpath:users.properties", "https://example.com/users.properties"} {
		_, err := r.Resolve(loc)
		var ue *UnavailableError
		require.ErrorAs(t, err, &ue, loc)
		assert.Equal(t, loc, ue.Location)
	}
}

func TestFileResolverEmptyLocation(t *testing.T) {
	r := &FileResolver{Fs: afero.NewMemMapFs()}
	_, err := r.Resolve("")
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestFSResolver(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/users.properties": {Data: []byte("a=b\n")},
	}
	r := FSResolver(fsys)

	res, err := r.Resolve("conf/users.properties")
	require.NoError(t, err)
	assert.Equal(t, "a=b\n", readAll(t, res))

	// A leading slash is tolerated.
	res, err = r.Resolve("/conf/users.properties")
	require.NoError(t, err)
	assert.Equal(t, "a=b\n", readAll(t, res))
}

func TestFSResolverRejectsEscapingPaths(t *testing.T) {
	r := FSResolver(fstest.MapFS{})
	for _, loc := range []string{"", ".", "../outside"} {
		_, err := r.Resolve(loc)
		assert.ErrorIs(t, err, ErrInvalidLocation, loc)
	}
}
