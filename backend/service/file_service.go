package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"mediavault/backend/common"
	"mediavault/backend/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// allowedMIMETypes is the exact upload allow-list.
var allowedMIMETypes = []string{
	"image/jpeg", "image/png", "image/webp", "image/gif",
	"video/mp4", "video/webm", "video/ogg", "audio/mpeg",
}

// extensionByMIME supplies a disk extension when the original filename
// carries none.
var extensionByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"video/ogg":  ".ogv",
	"audio/mpeg": ".mp3",
}

func mimeAllowed(mimeType string) bool {
	for _, allowed := range allowedMIMETypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// FileService streams uploads to the upload directory and keeps the file
// index in step with the bytes on disk.
type FileService struct {
	files     *model.FileStore
	uploadDir string
}

func NewFileService(files *model.FileStore, uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory %s: %w", uploadDir, err)
	}
	return &FileService{files: files, uploadDir: uploadDir}, nil
}

// Store writes the multipart part to disk under a fresh uuid-derived
// name, re-validates the stored bytes against the allow-list, and appends
// the index record. Rejection at any point leaves neither bytes nor a
// record behind.
func (s *FileService) Store(ownerID string, baseURL string, fh *multipart.FileHeader) (*model.FileRecord, error) {
	declared := fh.Header.Get("Content-Type")
	if !mimeAllowed(declared) {
		return nil, ErrUnsupportedType
	}

	id := uuid.New().String()
	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = extensionByMIME[declared]
	}
	filename := id + ext
	diskPath := filepath.Join(s.uploadDir, filename)

	size, err := s.saveToDisk(fh, diskPath)
	if err != nil {
		return nil, err
	}

	// The declared Content-Type is client-controlled; check what actually
	// landed on disk before the record exists.
	detected, err := mimetype.DetectFile(diskPath)
	if err != nil || !detectedAllowed(detected) {
		if removeErr := os.Remove(diskPath); removeErr != nil {
			common.SysError(fmt.Sprintf("failed to remove rejected upload %s: %s", diskPath, removeErr.Error()))
		}
		if err != nil {
			return nil, fmt.Errorf("inspect upload %s: %w", filename, err)
		}
		return nil, ErrUnsupportedType
	}

	record := model.FileRecord{
		ID:           id,
		OriginalName: fh.Filename,
		Filename:     filename,
		MimeType:     declared,
		Size:         size,
		URL:          baseURL + "/uploads/" + filename,
		OwnerID:      ownerID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.files.Append(record); err != nil {
		if removeErr := os.Remove(diskPath); removeErr != nil {
			common.SysError(fmt.Sprintf("failed to remove unrecorded upload %s: %s", diskPath, removeErr.Error()))
		}
		return nil, fmt.Errorf("record upload %s: %w", filename, err)
	}
	return &record, nil
}

func (s *FileService) saveToDisk(fh *multipart.FileHeader, diskPath string) (int64, error) {
	src, err := fh.Open()
	if err != nil {
		return 0, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(diskPath)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", diskPath, err)
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(diskPath)
		return 0, fmt.Errorf("write %s: %w", diskPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(diskPath)
		return 0, fmt.Errorf("close %s: %w", diskPath, err)
	}
	return size, nil
}

func detectedAllowed(detected *mimetype.MIME) bool {
	for _, allowed := range allowedMIMETypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

// List returns the owner's records in stored order.
func (s *FileService) List(ownerID string) []model.FileRecord {
	return s.files.ListByOwner(ownerID)
}

// Get returns the record matching id and owner.
func (s *FileService) Get(id string, ownerID string) (*model.FileRecord, bool) {
	return s.files.Get(id, ownerID)
}

// Delete removes the bytes on disk and then the index record. Bytes that
// are already gone are tolerated; any other disk error aborts with the
// record kept, so a "successful" delete always removed both.
func (s *FileService) Delete(id string, ownerID string) (bool, error) {
	record, ok := s.files.Get(id, ownerID)
	if !ok {
		return false, nil
	}

	diskPath := filepath.Join(s.uploadDir, record.Filename)
	if err := os.Remove(diskPath); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("remove %s: %w", diskPath, err)
	}

	return s.files.Remove(id, ownerID)
}
