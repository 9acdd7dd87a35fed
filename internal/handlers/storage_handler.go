package handlers

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tai550/training-menu-platform/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const maxUploadSizeBytes = 10 * 1024 * 1024

type StorageHandler struct {
	storage  services.StorageService
	validate *validator.Validate
}

func NewStorageHandler(storage services.StorageService) *StorageHandler {
	return &StorageHandler{storage: storage, validate: validator.New()}
}

type uploadRequest struct {
	FileBase64 string `json:"file_base64" validate:"required"`
	MimeType   string `json:"mime_type" validate:"required"`
	Filename   string `json:"filename" validate:"required"`
}

// Upload accepts base64-encoded bytes, stores them under a key derived from
// the caller, the current time and the original extension, and returns the
// public URL.
func (h *StorageHandler) Upload(c *fiber.Ctx) error {
	if h.storage == nil {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(fiber.Map{"error": "Storage service is not configured"})
	}

	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var req uploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	content, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file_base64 is not valid base64"})
	}
	if len(content) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is empty"})
	}
	if len(content) > maxUploadSizeBytes {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File exceeds 10MB limit"})
	}

	filename := buildUploadFilename(userID, req.Filename)
	url, err := h.storage.UploadBytes(c.Context(), content, req.MimeType, filename, "uploads")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to upload file"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": url})
}

func buildUploadFilename(userID string, original string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("%s-%d%s", userID, time.Now().UnixNano(), ext)
}
