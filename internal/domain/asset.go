package domain

import "time"

type AssetRole string

const (
	AssetRoleVideo AssetRole = "video"
	AssetRoleAudio AssetRole = "audio"
)

// UploadedAsset is one client file staged into the Storage Area. It is
// read-only once written.
type UploadedAsset struct {
	Role         AssetRole `json:"role"`
	OriginalName string    `json:"original_name"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	Path         string    `json:"-"`
}

// StoredFile is a directory entry of the Storage Area.
type StoredFile struct {
	Name    string
	Size    int64
	ModTime time.Time
}
