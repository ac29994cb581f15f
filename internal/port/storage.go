package port

import (
	"io"

	"github.com/bnema/swapaudio/internal/domain"
)

type StorageArea interface {
	Dir() string
	Path(name string) string
	Stage(role domain.AssetRole, originalName string, src io.Reader) (*domain.UploadedAsset, error)
	Reserve(purpose, ext string) (name, path string)
	Remove(name string) error
	List() ([]domain.StoredFile, error)
}
