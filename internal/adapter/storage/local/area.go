package local

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/swapaudio/internal/domain"
	"github.com/bnema/swapaudio/internal/port"
)

const maxNameAttempts = 5

var errNameExhausted = errors.New("could not find a free file name")

// Area is the flat directory holding staged uploads and produced artifacts.
type Area struct {
	dir string
	now func() time.Time
}

func NewArea(dir string) (*Area, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &domain.StorageError{Op: "resolve", Err: err}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, &domain.StorageError{Op: "create", Err: err}
	}
	return &Area{dir: abs, now: time.Now}, nil
}

func (a *Area) Dir() string {
	return a.dir
}

func (a *Area) Path(name string) string {
	return filepath.Join(a.dir, name)
}

// Stage copies src into a new file named after role. An existing file is
// never overwritten; a name collision draws a new name.
func (a *Area) Stage(role domain.AssetRole, originalName string, src io.Reader) (*domain.UploadedAsset, error) {
	var (
		name string
		f    *os.File
		err  error
	)
	for range maxNameAttempts {
		name = domain.NewStorageName(string(role), originalName, a.now())
		f, err = os.OpenFile(a.Path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil || !errors.Is(err, fs.ErrExist) {
			break
		}
	}
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = errNameExhausted
		}
		return nil, &domain.StorageError{Op: "stage " + string(role), Err: err}
	}

	size, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(a.Path(name))
		return nil, &domain.StorageError{Op: "stage " + string(role), Err: err}
	}

	return &domain.UploadedAsset{
		Role:         role,
		OriginalName: originalName,
		Name:         name,
		Size:         size,
		Path:         a.Path(name),
	}, nil
}

// Reserve picks an unused artifact name. The file itself is created by
// whoever writes it.
func (a *Area) Reserve(purpose, ext string) (string, string) {
	var name string
	for range maxNameAttempts {
		name = domain.NewStorageName(purpose, ext, a.now())
		if _, err := os.Lstat(a.Path(name)); errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return name, a.Path(name)
}

func (a *Area) Remove(name string) error {
	if !domain.IsFlatName(name) {
		return fmt.Errorf("remove %q: %w", name, domain.ErrNotFound)
	}
	err := os.Remove(a.Path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.StorageError{Op: "remove", Err: err}
	}
	return nil
}

// List returns the regular files of the area. Subdirectories are skipped.
func (a *Area) List() ([]domain.StoredFile, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, &domain.StorageError{Op: "list", Err: err}
	}

	files := make([]domain.StoredFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, domain.StoredFile{
			Name:    e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

var _ port.StorageArea = (*Area)(nil)
