// Package testing provides filesystem doubles and tree helpers for tests of
// the generator.
package testing

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"time"
)

// MemoryFS is a mutable in-memory fs.FS. Parent directories are created
// implicitly; Mkdir adds directories that hold no files.
type MemoryFS struct {
	files map[string]*MemoryFile
}

var (
	_ fs.ReadDirFS  = (*MemoryFS)(nil)
	_ fs.ReadFileFS = (*MemoryFS)(nil)
)

type MemoryFile struct {
	name    string
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: make(map[string]*MemoryFile),
	}
}

// NewMemoryFSFrom builds a MemoryFS holding files, keyed by slash path.
func NewMemoryFSFrom(files map[string]string) *MemoryFS {
	mfs := NewMemoryFS()
	for name, content := range files {
		mfs.WriteFile(name, []byte(content))
	}
	return mfs
}

func (mfs *MemoryFS) WriteFile(name string, data []byte) {
	name = path.Clean(name)
	mfs.files[name] = &MemoryFile{
		name:    name,
		content: data,
		mode:    0o644,
		modTime: time.Now(),
	}
	mfs.Mkdir(path.Dir(name))
}

func (mfs *MemoryFS) Mkdir(dir string) {
	dir = path.Clean(dir)
	if dir == "." || dir == "/" {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &MemoryFile{
		name:    dir,
		mode:    0o755 | fs.ModeDir,
		modTime: time.Now(),
	}
	mfs.Mkdir(path.Dir(dir))
}

func (mfs *MemoryFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name == "." {
		return &memoryFileHandle{file: &MemoryFile{name: ".", mode: 0o755 | fs.ModeDir}, mfs: mfs, path: "."}, nil
	}

	file, exists := mfs.files[name]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &memoryFileHandle{file: file, mfs: mfs, path: name}, nil
}

func (mfs *MemoryFS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	file, exists := mfs.files[name]
	if !exists {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrNotExist}
	}
	if file.IsDir() {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), file.content...), nil
}

// ReadDir lists name's direct children sorted by file name.
func (mfs *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	if name != "." {
		dir, exists := mfs.files[name]
		if !exists {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
		}
		if !dir.IsDir() {
			return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
		}
	}

	var entries []fs.DirEntry
	for filePath, file := range mfs.files {
		if path.Dir(filePath) == name {
			entries = append(entries, fs.FileInfoToDirEntry(file))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	return entries, nil
}

type memoryFileHandle struct {
	file    *MemoryFile
	mfs     *MemoryFS
	path    string
	offset  int
	pending []fs.DirEntry
}

func (f *memoryFileHandle) Read(b []byte) (int, error) {
	if f.file.IsDir() {
		return 0, &fs.PathError{Op: "read", Path: f.path, Err: fs.ErrInvalid}
	}
	if f.offset >= len(f.file.content) {
		return 0, io.EOF
	}

	n := copy(b, f.file.content[f.offset:])
	f.offset += n
	return n, nil
}

func (f *memoryFileHandle) Stat() (fs.FileInfo, error) {
	return f.file, nil
}

func (f *memoryFileHandle) Close() error {
	return nil
}

func (f *memoryFileHandle) ReadDir(n int) ([]fs.DirEntry, error) {
	if !f.file.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: f.path, Err: fs.ErrInvalid}
	}
	if f.pending == nil {
		entries, err := f.mfs.ReadDir(f.path)
		if err != nil {
			return nil, err
		}
		f.pending = append([]fs.DirEntry{}, entries...)
	}

	if n <= 0 {
		entries := f.pending
		f.pending = f.pending[:0]
		return entries, nil
	}
	if len(f.pending) == 0 {
		return nil, io.EOF
	}

	if n > len(f.pending) {
		n = len(f.pending)
	}
	entries := f.pending[:n:n]
	f.pending = f.pending[n:]
	return entries, nil
}

func (f *MemoryFile) Name() string {
	return path.Base(f.name)
}

func (f *MemoryFile) Size() int64 {
	return int64(len(f.content))
}

func (f *MemoryFile) Mode() fs.FileMode {
	return f.mode
}

func (f *MemoryFile) ModTime() time.Time {
	return f.modTime
}

func (f *MemoryFile) IsDir() bool {
	return f.mode.IsDir()
}

func (f *MemoryFile) Sys() any {
	return nil
}
