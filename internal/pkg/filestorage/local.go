package filestorage

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/logger"
)

// ErrFileNotFound is returned when a stored file cannot be located on disk.
var ErrFileNotFound = errors.New("file not found")

// allowedMimeTypes lists the declared content types an upload may carry.
// video/mov is what some clients send for QuickTime files.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"video/mp4":       {},
	"video/quicktime": {},
	"video/mov":       {},
}

// StoredFile describes a file written by LocalStorage.
type StoredFile struct {
	Filename string // generated name on disk
	MimeType string // declared content type of the upload
	Path     string // public path recorded in the media row, e.g. /uploads/<name>
}

// FileStorage is what the upload pipelines need from a storage backend.
type FileStorage interface {
	// CheckType validates the declared MIME type without touching the disk.
	CheckType(fileHeader *multipart.FileHeader) (string, error)
	// Save writes the upload under a generated name.
	Save(fileHeader *multipart.FileHeader) (*StoredFile, error)
	// Locate maps a filename or recorded path onto an existing file on disk.
	Locate(nameOrPath string) (string, error)
}

// LocalStorage saves uploads to one directory on the local filesystem.
// Files are never deleted by the service.
type LocalStorage struct {
	basePath   string
	publicPath string
	now        func() time.Time
	suffix     func() int64
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates the storage directory if needed.
// publicPath is the URL prefix under which the directory is served.
func NewLocalStorage(basePath, publicPath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:   basePath,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		now:        time.Now,
		suffix:     func() int64 { return rand.Int64N(1e9) },
	}, nil
}

// BasePath returns the directory files are written to.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// CheckType returns the declared MIME type of the upload, or
// ErrUnsupportedFileType when it is not on the allow list.
func (ls *LocalStorage) CheckType(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrFileRequired
	}
	mimeType := strings.ToLower(strings.TrimSpace(fileHeader.Header.Get("Content-Type")))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return "", apperrors.ErrUnsupportedFileType
	}
	return mimeType, nil
}

// generateFilename builds "<unix millis>-<random>" plus the original extension.
func (ls *LocalStorage) generateFilename(original string) string {
	return fmt.Sprintf("%d-%d%s", ls.now().UnixMilli(), ls.suffix(), strings.ToLower(filepath.Ext(original)))
}

// Save writes the upload to disk. The type is checked again so a caller
// cannot skip CheckType and still get a disallowed file onto disk.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	mimeType, err := ls.CheckType(fileHeader)
	if err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := ls.generateFilename(fileHeader.Filename)
	dstPath := filepath.Join(ls.basePath, filename)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := &StoredFile{
		Filename: filename,
		MimeType: mimeType,
		Path:     path.Join(ls.publicPath, filename),
	}
	logger.Debug().Str("original", fileHeader.Filename).Str("saved_as", filename).Msg("File saved")
	return stored, nil
}

// Locate accepts either a bare filename or a recorded path such as
// /uploads/<name>. Only the base name is used, so nothing outside the storage
// directory can be reached.
func (ls *LocalStorage) Locate(nameOrPath string) (string, error) {
	name := filepath.Base(filepath.FromSlash(nameOrPath))
	if name == "" || name == "." || name == string(filepath.Separator) || name == ".." {
		return "", ErrFileNotFound
	}

	fullPath := filepath.Join(ls.basePath, name)
	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("failed to stat %s: %w", fullPath, err)
	}
	if info.IsDir() {
		return "", ErrFileNotFound
	}
	return fullPath, nil
}
