package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// allowedExtensions is the set of image filename extensions accepted for
// post uploads, matched case-insensitively.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
	"jfif": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// UploadService persists uploaded post images under a fixed directory and
// derives the public URL stored on the post.
type UploadService interface {
	// SaveImage writes the uploaded file and returns its URL path. A file
	// whose extension is not allowed is silently ignored: the returned URL
	// is empty, the error nil, and nothing is written.
	SaveImage(file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	uploadDir string
}

func NewUploadService(uploadDir string) UploadService {
	return &uploadService{uploadDir: uploadDir}
}

func (s *uploadService) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil || !allowedFile(fileHeader.Filename) {
		return "", nil
	}

	filename := sanitizeFilename(fileHeader.Filename)
	if filename == "" {
		return "", nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// A repeated upload of the same filename overwrites the earlier file.
	dstPath := filepath.Join(s.uploadDir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write %s: %w", dstPath, err)
	}

	return path.Join("/", filepath.ToSlash(s.uploadDir), filename), nil
}

// allowedFile reports whether the filename carries a permitted image
// extension.
func allowedFile(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}
	return allowedExtensions[strings.ToLower(ext)]
}

// sanitizeFilename reduces a client-supplied filename to a safe basename:
// directory components are dropped, disallowed character runs become a
// single underscore, and leading dots or dashes are trimmed so the result
// cannot be a hidden file or look like a flag.
func sanitizeFilename(filename string) string {
	name := filename
	// clients may send either separator regardless of the server OS
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".-")
	if name == "" || name == "_" {
		return ""
	}
	return name
}
