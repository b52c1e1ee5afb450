package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"gameclub/internal/infrastructure/storage"
	"gameclub/pkg/response"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type UploadHandler struct {
	storage *storage.LocalClient
}

func NewUploadHandler(storageClient *storage.LocalClient) *UploadHandler {
	return &UploadHandler{
		storage: storageClient,
	}
}

// UploadImage accepts a multipart "image" field and an optional "folder"
// field, and returns the relative URL the storefront can embed.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "An image file is required")
	}

	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "Image must be smaller than 5MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "Unsupported image format")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	result, err := h.storage.UploadFile(c.Request().Context(), src, fileHeader.Filename, c.FormValue("folder"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Image uploaded", result)
}
