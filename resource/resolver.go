package resource

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

const fileScheme = "file:"

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Resolver turns a location string into an openable Resource.
// Implementations must be safe for concurrent use by independent loaders.
type Resolver interface {
	Resolve(location string) (Resource, error)
}

// FileResolver resolves bare paths and file: locations against Fs.
// Any other scheme is rejected.
type FileResolver struct {
	Fs afero.Fs
}

// DefaultResolver resolves against the OS filesystem.
func DefaultResolver() Resolver {
	return &FileResolver{Fs: afero.NewOsFs()}
}

func (r *FileResolver) Resolve(location string) (Resource, error) {
	if location == "" {
		return nil, &UnavailableError{Location: location, Err: ErrInvalidLocation}
	}
	p := location
	if m := schemeRe.FindString(p); m != "" {
		if m != fileScheme {
			return nil, &UnavailableError{
				Location: location,
				Err:      fmt.Errorf("unsupported scheme %q", strings.TrimSuffix(m, ":")),
			}
		}
		// Accept both file:/path and file:///path.
		p = strings.TrimPrefix(p, fileScheme)
		p = strings.TrimPrefix(p, "//")
	}
	return NewFileResource(r.Fs, filepath.Clean(p)), nil
}

type fsResolver struct {
	fs afero.Fs
}

// FSResolver resolves locations inside an embedded fs.FS bundle, e.g. an
// embed.FS that ships default user files with the binary.
func FSResolver(fsys fs.FS) Resolver {
	return &fsResolver{fs: afero.FromIOFS{FS: fsys}}
}

func (r *fsResolver) Resolve(location string) (Resource, error) {
	// fs.FS paths are slash-separated, rooted, no leading slash.
	p := path.Clean(strings.TrimPrefix(location, "/"))
	if p == "." || p == "" || strings.HasPrefix(p, "..") {
		return nil, &UnavailableError{Location: location, Err: ErrInvalidLocation}
	}
	return NewFileResource(r.fs, p), nil
}
