package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	appMiddleware "github.com/anviet/showcase/internal/middleware"
	"github.com/anviet/showcase/internal/storage"
)

const testPassword = "letmein"

// mockProvider is an in-memory storage.Provider that counts calls and can
// be primed with objects or errors.
type mockProvider struct {
	objects map[string][]storage.ObjectInfo // bucket -> listing
	files   map[string][]byte               // "bucket/key" -> body
	meta    map[string]map[string]string    // "bucket/key" -> user metadata

	listErr     error
	uploadErr   error
	downloadErr error
	removeErr   error
	bucketsErr  error

	listCalls     int
	uploadCalls   int
	downloadCalls int
	removeCalls   int
	signCalls     int
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		objects: make(map[string][]storage.ObjectInfo),
		files:   make(map[string][]byte),
		meta:    make(map[string]map[string]string),
	}
}

func (m *mockProvider) List(_ context.Context, bucket string) ([]storage.ObjectInfo, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.objects[bucket], nil
}

func (m *mockProvider) Upload(_ context.Context, bucket, key string, reader io.Reader, size int64, contentType string, meta map[string]string) error {
	m.uploadCalls++
	if m.uploadErr != nil {
		return m.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.files[bucket+"/"+key] = data
	m.meta[bucket+"/"+key] = meta
	return nil
}

func (m *mockProvider) Download(_ context.Context, bucket, key string) ([]byte, string, error) {
	m.downloadCalls++
	if m.downloadErr != nil {
		return nil, "", m.downloadErr
	}
	data, ok := m.files[bucket+"/"+key]
	if !ok {
		return nil, "", fmt.Errorf("object not found")
	}
	return data, "application/octet-stream", nil
}

func (m *mockProvider) Remove(_ context.Context, bucket, key string) error {
	m.removeCalls++
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.files, bucket+"/"+key)
	return nil
}

func (m *mockProvider) EnsureBucket(_ context.Context, bucket string) error { return nil }

func (m *mockProvider) ListBuckets(_ context.Context) ([]string, error) {
	if m.bucketsErr != nil {
		return nil, m.bucketsErr
	}
	return Buckets, nil
}

func (m *mockProvider) PublicURL(bucket, key string) string {
	return "http://cdn.test/" + bucket + "/" + key
}

func (m *mockProvider) SignedUploadURL(_ context.Context, bucket, key string, _ time.Duration) (string, error) {
	m.signCalls++
	return "http://storage.test/" + bucket + "/" + key + "?signed=1", nil
}

// newRouter mounts the handler the way cmd/api does.
func newRouter(h *Handler, password string) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/health", h.Health)
	r.Get("/api/content/{bucket}", h.List)
	r.Patch("/api/content/{bucket}/{filename}", h.PatchMetadata)
	r.Delete("/api/content/{bucket}/{filename}", h.Delete)
	r.Post("/api/upload", h.Upload)
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RequirePassword(password))
		r.Post("/api/signed-upload", h.SignedUpload)
	})
	return r
}

func decodeMessage(t *testing.T, body *bytes.Buffer) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	return payload.Message
}

func TestListEmptyBucket(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("GET", "/api/content/2DImage", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty bucket should return [], got %s", got)
	}
}

func TestListReturnsURLsAndMetadata(t *testing.T) {
	provider := newMockProvider()
	provider.objects["videos"] = []storage.ObjectInfo{
		{Name: "10-b.mp4", Size: 9, CreatedAt: time.Unix(10, 0), Title: "second"},
		{Name: "5-a.mp4", Size: 4, CreatedAt: time.Unix(5, 0), Description: "first clip"},
	}
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("GET", "/api/content/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var items []struct {
		Name     string `json:"name"`
		URL      string `json:"url"`
		Metadata struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.URL == "" {
			t.Errorf("item %q has empty url", item.Name)
		}
		if strings.HasSuffix(item.Name, "/") {
			t.Errorf("directory marker leaked into listing: %q", item.Name)
		}
	}
	if items[0].Metadata.Title != "second" || items[1].Metadata.Description != "first clip" {
		t.Errorf("metadata not passed through: %+v", items)
	}
}

func TestListUnknownBucket(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("GET", "/api/content/secrets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown bucket, got %d", w.Code)
	}
	if provider.listCalls != 0 {
		t.Errorf("no provider call expected, got %d", provider.listCalls)
	}
}

func TestListUnconfigured(t *testing.T) {
	router := newRouter(NewHandler(nil, testPassword), testPassword)

	req := httptest.NewRequest("GET", "/api/content/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 without storage config, got %d", w.Code)
	}
}

func TestListUpstreamError(t *testing.T) {
	provider := newMockProvider()
	provider.listErr = errors.New("bucket is on fire")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("GET", "/api/content/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decodeMessage(t, w.Body); !strings.Contains(msg, "bucket is on fire") {
		t.Errorf("provider message should pass through, got %q", msg)
	}
}

// multipartUpload builds a multipart body with an explicit part content type.
func multipartUpload(t *testing.T, filename, mimeType, kind, title, password string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write([]byte("file-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}

	_ = mw.WriteField("kind", kind)
	if title != "" {
		_ = mw.WriteField("title", title)
	}
	_ = mw.WriteField("password", password)
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestUploadWrongPassword(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body, contentType := multipartUpload(t, "x.png", "image/png", "2DImage", "", "nope")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if provider.uploadCalls != 0 {
		t.Errorf("upload must not reach the provider on bad password, got %d calls", provider.uploadCalls)
	}
}

func TestUploadEmptyConfiguredPassword(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, ""), "")

	body, contentType := multipartUpload(t, "x.png", "image/png", "2DImage", "", "")
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("unset password must reject all uploads, got %d", w.Code)
	}
}

func TestUploadMissingFile(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	_ = mw.WriteField("kind", "2DImage")
	_ = mw.WriteField("password", testPassword)
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing file, got %d", w.Code)
	}
}

func TestUploadModelExtensionFallback(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	// GLB reported as generic octet-stream passes on extension.
	body, contentType := multipartUpload(t, "x.glb", "application/octet-stream", "models", "", testPassword)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("glb upload should succeed, got %d: %s", w.Code, w.Body.String())
	}

	// The same octet-stream MIME with a .txt name is rejected.
	body, contentType = multipartUpload(t, "x.txt", "application/octet-stream", "models", "", testPassword)
	req = httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf(".txt model should be rejected, got %d", w.Code)
	}
}

func TestUploadStoresTitleAndReturnsURL(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body, contentType := multipartUpload(t, "trailer.mp4", "video/mp4", "videos", "", testPassword)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK   bool   `json:"ok"`
		Kind string `json:"kind"`
		URL  string `json:"url"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.Kind != "videos" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.HasSuffix(resp.Path, ".mp4") {
		t.Errorf("generated name should keep the extension, got %q", resp.Path)
	}
	if !strings.HasPrefix(resp.URL, "http://cdn.test/videos/") {
		t.Errorf("url should be the public url, got %q", resp.URL)
	}

	// Title defaults to the original filename when none was given.
	meta := provider.meta["videos/"+resp.Path]
	if meta["title"] != "trailer.mp4" {
		t.Errorf("expected title fallback to filename, got %q", meta["title"])
	}
}

func TestUploadUpstreamError(t *testing.T) {
	provider := newMockProvider()
	provider.uploadErr = errors.New("quota exceeded")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body, contentType := multipartUpload(t, "x.png", "image/png", "2DImage", "", testPassword)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decodeMessage(t, w.Body); !strings.Contains(msg, "quota exceeded") {
		t.Errorf("provider message should pass through, got %q", msg)
	}
}

func patchBody(title, description, password string) *bytes.Buffer {
	b, _ := json.Marshal(map[string]string{
		"title":       title,
		"description": description,
		"password":    password,
	})
	return bytes.NewBuffer(b)
}

func TestPatchWrongPassword(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("PATCH", "/api/content/videos/a.mp4", patchBody("t", "", "nope"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if provider.downloadCalls != 0 || provider.uploadCalls != 0 {
		t.Errorf("no provider call expected on bad password")
	}
}

func TestPatchRewritesMetadata(t *testing.T) {
	provider := newMockProvider()
	provider.files["videos/a.mp4"] = []byte("original-bytes")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("PATCH", "/api/content/videos/a.mp4", patchBody("New Title", "desc", testPassword))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if provider.downloadCalls != 1 || provider.uploadCalls != 1 {
		t.Errorf("expected one download and one re-upload, got %d/%d", provider.downloadCalls, provider.uploadCalls)
	}
	if got := string(provider.files["videos/a.mp4"]); got != "original-bytes" {
		t.Errorf("object bytes must survive the patch, got %q", got)
	}
	meta := provider.meta["videos/a.mp4"]
	if meta["title"] != "New Title" || meta["description"] != "desc" {
		t.Errorf("metadata not updated: %v", meta)
	}
}

func TestPatchMissingObject(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	req := httptest.NewRequest("PATCH", "/api/content/videos/ghost.mp4", patchBody("t", "", testPassword))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A missing object surfaces as the provider's download error, not a 404.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for missing object, got %d", w.Code)
	}
}

// Two patches on the same key race in production; the later writer wins and
// the earlier metadata is silently discarded. This pins the current
// behavior, it is not a guarantee worth relying on.
func TestPatchLastWriterWins(t *testing.T) {
	provider := newMockProvider()
	provider.files["videos/a.mp4"] = []byte("bytes")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	for _, title := range []string{"first", "second"} {
		req := httptest.NewRequest("PATCH", "/api/content/videos/a.mp4", patchBody(title, "", testPassword))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("patch %q: expected 200, got %d", title, w.Code)
		}
	}

	if got := provider.meta["videos/a.mp4"]["title"]; got != "second" {
		t.Errorf("exactly the later title should persist, got %q", got)
	}
}

func TestDeleteWrongPassword(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body := bytes.NewBufferString(`{"password":"nope"}`)
	req := httptest.NewRequest("DELETE", "/api/content/videos/a.mp4", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if provider.removeCalls != 0 {
		t.Errorf("remove must not reach the provider on bad password")
	}
}

func TestDeleteRemovesObject(t *testing.T) {
	provider := newMockProvider()
	provider.files["videos/a.mp4"] = []byte("bytes")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body := bytes.NewBufferString(`{"password":"` + testPassword + `"}`)
	req := httptest.NewRequest("DELETE", "/api/content/videos/a.mp4", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if _, ok := provider.files["videos/a.mp4"]; ok {
		t.Errorf("object should be gone")
	}
}

func TestDeleteUpstreamError(t *testing.T) {
	provider := newMockProvider()
	provider.removeErr = errors.New("object locked by provider")
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	body := bytes.NewBufferString(`{"password":"` + testPassword + `"}`)
	req := httptest.NewRequest("DELETE", "/api/content/videos/abc.mp4", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decodeMessage(t, w.Body); !strings.Contains(msg, "object locked by provider") {
		t.Errorf("provider message should pass through, got %q", msg)
	}
}

func TestHealth(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		router := newRouter(NewHandler(newMockProvider(), testPassword), testPassword)
		req := httptest.NewRequest("GET", "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Status != "ok" {
			t.Errorf("expected status ok, got %q", body.Status)
		}
	})

	t.Run("unconfigured", func(t *testing.T) {
		router := newRouter(NewHandler(nil, testPassword), testPassword)
		req := httptest.NewRequest("GET", "/api/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestSignedUpload(t *testing.T) {
	provider := newMockProvider()
	router := newRouter(NewHandler(provider, testPassword), testPassword)

	t.Run("wrong password", func(t *testing.T) {
		body := bytes.NewBufferString(`{"bucket":"videos","filename":"clip.mp4"}`)
		req := httptest.NewRequest("POST", "/api/signed-upload", body)
		req.Header.Set(appMiddleware.PasswordHeader, "nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if provider.signCalls != 0 {
			t.Errorf("no presign call expected on bad password")
		}
	})

	t.Run("unknown bucket", func(t *testing.T) {
		body := bytes.NewBufferString(`{"bucket":"secrets","filename":"clip.mp4"}`)
		req := httptest.NewRequest("POST", "/api/signed-upload", body)
		req.Header.Set(appMiddleware.PasswordHeader, testPassword)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("issues url", func(t *testing.T) {
		body := bytes.NewBufferString(`{"bucket":"videos","filename":"my clip.mp4","folder":"trailers"}`)
		req := httptest.NewRequest("POST", "/api/signed-upload", body)
		req.Header.Set(appMiddleware.PasswordHeader, testPassword)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			OK        bool   `json:"ok"`
			Path      string `json:"path"`
			UploadURL string `json:"uploadUrl"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !resp.OK || resp.UploadURL == "" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if !strings.HasPrefix(resp.Path, "trailers/") || !strings.HasSuffix(resp.Path, "-my clip.mp4") {
			t.Errorf("unexpected object path %q", resp.Path)
		}
	})
}
