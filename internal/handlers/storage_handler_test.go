package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type stubStorage struct {
	url         string
	err         error
	lastContent []byte
	lastType    string
	lastName    string
	lastFolder  string
}

func (s *stubStorage) UploadBytes(_ context.Context, content []byte, contentType, filename, folder string) (string, error) {
	s.lastContent = content
	s.lastType = contentType
	s.lastName = filename
	s.lastFolder = folder
	return s.url, s.err
}

func TestUploadReturnsPublicURL(t *testing.T) {
	storage := &stubStorage{url: "https://cdn.example.com/uploads/u1-1.png"}
	handler := &StorageHandler{storage: storage, validate: validator.New()}

	app := newAuthedApp("u1", "user")
	app.Post("/api/v1/storage/upload", handler.Upload)

	encoded := base64.StdEncoding.EncodeToString([]byte("png bytes"))
	body, _ := json.Marshal(map[string]string{
		"file_base64": encoded,
		"mime_type":   "image/png",
		"filename":    "avatar.PNG",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/upload", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if string(storage.lastContent) != "png bytes" {
		t.Fatalf("unexpected content %q", storage.lastContent)
	}
	if storage.lastType != "image/png" || storage.lastFolder != "uploads" {
		t.Fatalf("unexpected call %q %q", storage.lastType, storage.lastFolder)
	}
	if !strings.HasPrefix(storage.lastName, "u1-") || !strings.HasSuffix(storage.lastName, ".png") {
		t.Fatalf("unexpected filename %q", storage.lastName)
	}

	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["url"] != storage.url {
		t.Fatalf("unexpected url %q", out["url"])
	}
}

func TestUploadRejectsInvalidBase64(t *testing.T) {
	storage := &stubStorage{}
	handler := &StorageHandler{storage: storage, validate: validator.New()}

	app := newAuthedApp("u1", "user")
	app.Post("/api/v1/storage/upload", handler.Upload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/upload", strings.NewReader(`{
		"file_base64": "not!!base64",
		"mime_type": "image/png",
		"filename": "avatar.png"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if storage.lastContent != nil {
		t.Fatalf("storage should not be called")
	}
}

// newUploadApp mirrors the server's body limit so encoded payloads near the
// decoded cap reach the handler instead of dying at the transport.
func newUploadApp(handler *StorageHandler) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: 15 * 1024 * 1024})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "u1")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/storage/upload", handler.Upload)
	return app
}

func uploadBody(t *testing.T, content []byte) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"file_base64": base64.StdEncoding.EncodeToString(content),
		"mime_type":   "application/octet-stream",
		"filename":    "block.bin",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return string(body)
}

func TestUploadAcceptsFileAtSizeCap(t *testing.T) {
	storage := &stubStorage{url: "https://cdn.example.com/uploads/u1-2.bin"}
	handler := &StorageHandler{storage: storage, validate: validator.New()}
	app := newUploadApp(handler)

	content := make([]byte, maxUploadSizeBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/upload", strings.NewReader(uploadBody(t, content)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if len(storage.lastContent) != maxUploadSizeBytes {
		t.Fatalf("expected %d bytes stored, got %d", maxUploadSizeBytes, len(storage.lastContent))
	}
}

func TestUploadRejectsFileOverSizeCap(t *testing.T) {
	storage := &stubStorage{}
	handler := &StorageHandler{storage: storage, validate: validator.New()}
	app := newUploadApp(handler)

	content := make([]byte, maxUploadSizeBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/upload", strings.NewReader(uploadBody(t, content)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "File exceeds 10MB limit" {
		t.Fatalf("unexpected error message %q", body["error"])
	}
	if storage.lastContent != nil {
		t.Fatalf("storage should not be called")
	}
}

func TestUploadWithoutStorageConfigured(t *testing.T) {
	handler := &StorageHandler{storage: nil, validate: validator.New()}

	app := newAuthedApp("u1", "user")
	app.Post("/api/v1/storage/upload", handler.Upload)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/upload", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
}

func TestBuildUploadFilenameFallbackExtension(t *testing.T) {
	name := buildUploadFilename("u1", "avatar")
	if !strings.HasSuffix(name, ".bin") {
		t.Fatalf("expected .bin fallback, got %q", name)
	}
}
