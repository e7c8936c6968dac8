// Package assets resolves game images and sounds. A user asset directory
// shadows the pack embedded in the binary, file by file.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed images/*.yaml
var embedded embed.FS

// Asset categories.
const (
	CategoryImages = "images"
	CategoryAudio  = "audio"
)

// layered is an fs.FS that opens a name from the first layer that has it.
type layered []fs.FS

func (l layered) Open(name string) (fs.File, error) {
	for _, fsys := range l {
		f, err := fsys.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// Loader loads assets by category and name and caches decoded images.
type Loader struct {
	fsys   fs.FS
	images map[string]*core.Image
}

// NewLoader returns a loader over dir layered on top of the embedded pack.
// An empty dir uses the embedded pack only.
func NewLoader(dir string) *Loader {
	var fsys layered
	if dir != "" {
		fsys = append(fsys, os.DirFS(dir))
	}
	fsys = append(fsys, embedded)
	return NewLoaderFS(fsys)
}

// NewLoaderFS returns a loader reading from fsys.
func NewLoaderFS(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		images: make(map[string]*core.Image),
	}
}

// FS returns the file system the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// Open opens category/name.
func (l *Loader) Open(category, name string) (fs.File, error) {
	f, err := l.fsys.Open(path.Join(category, name))
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return f, nil
}

// ReadFile reads category/name in full.
func (l *Loader) ReadFile(category, name string) ([]byte, error) {
	f, err := l.Open(category, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s/%s: %w", category, name, err)
	}
	return data, nil
}

// Image returns the sprite images/<name>.yaml. Each sprite is decoded once;
// callers must not modify the returned image.
func (l *Loader) Image(name string) (*core.Image, error) {
	if img, ok := l.images[name]; ok {
		return img, nil
	}

	data, err := l.ReadFile(CategoryImages, name+".yaml")
	if err != nil {
		return nil, err
	}
	img, err := DecodeSprite(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	l.images[name] = img
	return img, nil
}
