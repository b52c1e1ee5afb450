package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalClient stores uploaded files on the local filesystem under a base
// directory that Echo serves back at /uploads/*.
type LocalClient struct {
	baseDir string
}

type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

func (c *LocalClient) UploadFile(ctx context.Context, src io.Reader, originalName, folder string) (*UploadResult, error) {
	folder = sanitizeFolder(folder)

	dir := filepath.Join(c.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &UploadResult{
		URL:      "/uploads/" + folder + "/" + name,
		Filename: name,
		Size:     size,
	}, nil
}

func (c *LocalClient) BaseDir() string {
	return c.baseDir
}

func sanitizeFolder(folder string) string {
	folder = filepath.Base(folder)

	var valid []rune
	for _, char := range folder {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			valid = append(valid, char)
		}
	}

	if len(valid) == 0 {
		return "images"
	}
	return string(valid)
}
