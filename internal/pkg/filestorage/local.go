package filestorage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

// ErrInvalidPath is returned for paths that escape the storage root
var ErrInvalidPath = errors.New("invalid file path")

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath  string // The root directory where files will be stored
	urlPrefix string // URL prefix the root is served under, e.g. /uploads
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the directory on the server; urlPrefix defaults to /uploads.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	if urlPrefix == "" {
		urlPrefix = "/uploads"
	}
	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// BasePath returns the storage root directory
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// TimestampedName builds "<unix millis>_<sanitized base><ext>" for an upload.
// Characters outside [a-zA-Z0-9_-] are dropped from the base name.
func TimestampedName(original string, now time.Time) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = unsafeNameChars.ReplaceAllString(base, "")
	return fmt.Sprintf("%d_%s%s", now.UnixMilli(), base, ext)
}

// SaveFileWithPath saves a file to subPath with a "<prefix><uuid><ext>" name
func (ls *LocalStorage) SaveFileWithPath(fileHeader *multipart.FileHeader, subPath, prefix string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, nil
	}
	name := prefix + uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	return ls.SaveFileAs(fileHeader, subPath, name)
}

// SaveFileAs saves a file to subPath under the given name
func (ls *LocalStorage) SaveFileAs(fileHeader *multipart.FileHeader, subPath, name string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, nil
	}
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	relDir := strings.Trim(path.Clean("/"+filepath.ToSlash(subPath)), "/")
	fullDirPath := filepath.Join(ls.basePath, filepath.FromSlash(relDir))
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dstPath := filepath.Join(fullDirPath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	rel := name
	if relDir != "" {
		rel = relDir + "/" + name
	}
	stored := &StoredFile{
		Name:         name,
		RelativePath: rel,
		URL:          ls.PublicURL(rel),
		OriginalName: fileHeader.Filename,
		Size:         written,
		MimeType:     fileHeader.Header.Get("Content-Type"),
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", rel).Msg("File saved successfully")
	return stored, nil
}

// PublicURL joins the URL prefix with a path relative to the storage root
func (ls *LocalStorage) PublicURL(relativePath string) string {
	return ls.urlPrefix + "/" + strings.TrimLeft(filepath.ToSlash(relativePath), "/")
}

// DeleteFile removes a file from the storage filesystem.
// Missing files are not an error.
func (ls *LocalStorage) DeleteFile(pathOrURL string) error {
	if pathOrURL == "" {
		return nil
	}

	physicalPath := ls.GetFullPath(pathOrURL)
	if physicalPath == "" {
		return fmt.Errorf("%w: %s", ErrInvalidPath, pathOrURL)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath maps a relative path or public URL to a path under the storage
// root. It returns "" when the result would escape the root.
func (ls *LocalStorage) GetFullPath(pathOrURL string) string {
	p := filepath.ToSlash(pathOrURL)
	p = strings.TrimPrefix(p, ls.urlPrefix+"/")
	p = strings.TrimPrefix(p, strings.TrimLeft(ls.urlPrefix, "/")+"/")

	cleaned := strings.TrimLeft(path.Clean("/"+p), "/")
	if cleaned == "" || cleaned == "." {
		return ""
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(cleaned))
}
