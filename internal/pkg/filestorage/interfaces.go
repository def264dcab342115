package filestorage

import (
	"mime/multipart"
)

// StoredFile describes a file written to storage
type StoredFile struct {
	Name         string // Stored file name (no directory)
	RelativePath string // Path relative to the storage root, slash separated
	URL          string // Public URL, e.g. /uploads/lectures/lecture-x.pdf
	OriginalName string // Client supplied file name
	Size         int64  // Size in bytes
	MimeType     string // Content type reported by the client
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileAs stores the upload under subPath using the exact name given
	SaveFileAs(fileHeader *multipart.FileHeader, subPath, name string) (*StoredFile, error)

	// SaveFileWithPath stores the upload under subPath with a generated name
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath, prefix string) (*StoredFile, error)

	// DeleteFile removes a file given its relative path or public URL
	DeleteFile(pathOrURL string) error

	// GetFullPath returns the filesystem path for a relative path or public URL
	GetFullPath(pathOrURL string) string

	// PublicURL builds the public URL for a path relative to the storage root
	PublicURL(relativePath string) string
}
