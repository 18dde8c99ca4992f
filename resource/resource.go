package resource

import (
	"bytes"
	"io"

	"github.com/spf13/afero"
)

// Resource is an openable byte stream. The string form is used in
// diagnostics only.
type Resource interface {
	Open() (io.ReadCloser, error)
	String() string
}

// FileResource reads a path from an afero filesystem.
type FileResource struct {
	fs   afero.Fs
	path string
}

// NewFileResource wraps path on fsys. A nil fsys means the OS filesystem.
func NewFileResource(fsys afero.Fs, path string) *FileResource {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &FileResource{fs: fsys, path: path}
}

func (r *FileResource) Open() (io.ReadCloser, error) {
	f, err := r.fs.Open(r.path)
	if err != nil {
		return nil, &UnavailableError{Location: r.path, Err: err}
	}
	return f, nil
}

func (r *FileResource) String() string {
	return "file [" + r.path + "]"
}

// BytesResource serves in-memory data. Useful for callers that already hold
// the file contents, and for tests.
type BytesResource struct {
	name string
	data []byte
}

func NewBytesResource(name string, data []byte) *BytesResource {
	return &BytesResource{name: name, data: data}
}

func (r *BytesResource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(r.data)), nil
}

func (r *BytesResource) String() string {
	return "bytes [" + r.name + "]"
}
