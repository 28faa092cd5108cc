package content

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/anviet/showcase/internal/response"
	"github.com/anviet/showcase/internal/storage"
)

// maxUploadSize caps proxied upload bodies at 200MB.
const maxUploadSize = 200 << 20

// signedURLExpiry bounds how long a signed-upload URL stays valid.
const signedURLExpiry = 15 * time.Minute

// Handler holds HTTP handlers for the content API. provider is nil when
// storage credentials were absent at startup; every handler then degrades
// to 503 instead of the process having refused to start.
type Handler struct {
	provider storage.Provider
	password string
}

// NewHandler creates a content Handler. password is the shared secret
// gating all mutating operations; an empty password rejects every mutation.
func NewHandler(provider storage.Provider, password string) *Handler {
	return &Handler{provider: provider, password: password}
}

// EnsureBuckets creates any missing bucket from the fixed set. Failures are
// logged and skipped: a missing bucket surfaces later as a per-request
// upstream error rather than preventing startup.
func EnsureBuckets(ctx context.Context, provider storage.Provider) {
	for _, bucket := range Buckets {
		if err := provider.EnsureBucket(ctx, bucket); err != nil {
			log.Printf("storage: ensure bucket %q: %v", bucket, err)
		}
	}
}

func (h *Handler) checkPassword(pw string) bool {
	return h.password != "" && pw == h.password
}

type objectMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

type listItem struct {
	Name      string     `json:"name"`
	Path      string     `json:"path"`
	URL       string     `json:"url"`
	Size      int64      `json:"size"`
	CreatedAt time.Time  `json:"created_at"`
	Metadata  objectMeta `json:"metadata"`
}

type uploadData struct {
	OK      bool   `json:"ok"`
	Kind    string `json:"kind"`
	URL     string `json:"url"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

type okData struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type healthData struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type patchRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

type deleteRequest struct {
	Password string `json:"password"`
}

type signedUploadRequest struct {
	Bucket   string `json:"bucket"`
	Filename string `json:"filename"`
	Folder   string `json:"folder"`
}

type signedUploadData struct {
	OK        bool   `json:"ok"`
	Path      string `json:"path"`
	UploadURL string `json:"uploadUrl"`
}

// Health godoc
//
//	@Summary		Health check
//	@Description	Verifies the storage provider is reachable by listing buckets.
//	@Tags			content
//	@Produce		json
//	@Success		200	{object}	healthData
//	@Failure		503	{object}	healthData
//	@Router			/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		response.JSON(w, http.StatusServiceUnavailable, healthData{
			Status:  "error",
			Message: "storage not configured, set the storage environment variables",
		})
		return
	}
	buckets, err := h.provider.ListBuckets(r.Context())
	if err != nil {
		response.JSON(w, http.StatusServiceUnavailable, healthData{
			Status:  "error",
			Message: "storage not reachable: " + err.Error(),
		})
		return
	}
	log.Printf("health: storage buckets %v", buckets)
	response.OK(w, healthData{Status: "ok", Message: "server is healthy and storage is connected"})
}

// List godoc
//
//	@Summary		List bucket contents
//	@Description	Returns the objects in a bucket, newest first, with public URLs and metadata.
//	@Tags			content
//	@Produce		json
//	@Param			bucket	path		string	true	"bucket name"
//	@Success		200		{array}		listItem
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Failure		503		{object}	response.ErrorBody
//	@Router			/content/{bucket} [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	bucket := chi.URLParam(r, "bucket")
	if !ValidBucket(bucket) {
		response.BadRequest(w, "unknown bucket")
		return
	}
	if h.provider == nil {
		response.Unavailable(w, "storage not configured, set the storage environment variables")
		return
	}

	objects, err := h.provider.List(r.Context(), bucket)
	if err != nil {
		response.Upstream(w, err.Error())
		return
	}

	items := make([]listItem, 0, len(objects))
	for _, obj := range objects {
		items = append(items, listItem{
			Name:      obj.Name,
			Path:      obj.Name,
			URL:       h.provider.PublicURL(bucket, obj.Name),
			Size:      obj.Size,
			CreatedAt: obj.CreatedAt,
			Metadata: objectMeta{
				Title:       obj.Title,
				Description: obj.Description,
			},
		})
	}
	response.OK(w, items)
}

// Upload godoc
//
//	@Summary		Upload a file
//	@Description	Accepts a multipart upload, validates its type against the kind's allow-list and stores it under a generated unique name.
//	@Tags			content
//	@Accept			mpfd
//	@Produce		json
//	@Param			file		formData	file	true	"file to upload"
//	@Param			kind		formData	string	true	"one of 2DImage, 3DImage, videos, models"
//	@Param			title		formData	string	false	"display title"
//	@Param			password	formData	string	true	"shared upload password"
//	@Success		200			{object}	uploadData
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Failure		503			{object}	response.ErrorBody
//	@Router			/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		response.Unavailable(w, "storage not configured, set the storage environment variables")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		response.BadRequest(w, "invalid multipart request")
		return
	}

	if !h.checkPassword(r.FormValue("password")) {
		response.Unauthorized(w, "wrong password")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	kind, ok := ParseKind(r.FormValue("kind"))
	if !ok {
		response.BadRequest(w, "invalid kind")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if err := ValidateFile(kind, header.Filename, contentType); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	name := NewObjectName(header.Filename)
	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}

	bucket := kind.Bucket()
	err = h.provider.Upload(r.Context(), bucket, name, file, header.Size, contentType, map[string]string{
		"title": title,
	})
	if err != nil {
		response.Upstream(w, "upload error: "+err.Error())
		return
	}

	response.OK(w, uploadData{
		OK:      true,
		Kind:    string(kind),
		URL:     h.provider.PublicURL(bucket, name),
		Path:    name,
		Message: "upload successful",
	})
}

// PatchMetadata godoc
//
//	@Summary		Update object metadata
//	@Description	Rewrites an object's title and description by downloading it and re-uploading the same bytes under the same key.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			bucket		path		string			true	"bucket name"
//	@Param			filename	path		string			true	"object key"
//	@Param			request		body		patchRequest	true	"new metadata plus the shared password"
//	@Success		200			{object}	okData
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Failure		503			{object}	response.ErrorBody
//	@Router			/content/{bucket}/{filename} [patch]
func (h *Handler) PatchMetadata(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		response.Unavailable(w, "storage not configured, set the storage environment variables")
		return
	}

	bucket := chi.URLParam(r, "bucket")
	filename := chi.URLParam(r, "filename")
	if !ValidBucket(bucket) {
		response.BadRequest(w, "unknown bucket")
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !h.checkPassword(req.Password) {
		response.Unauthorized(w, "wrong password")
		return
	}

	// Read-modify-write without a concurrency token: concurrent patches on
	// the same key race and the later upload wins.
	data, contentType, err := h.provider.Download(r.Context(), bucket, filename)
	if err != nil {
		response.Upstream(w, "download error: "+err.Error())
		return
	}

	title := req.Title
	if title == "" {
		title = filename
	}
	err = h.provider.Upload(r.Context(), bucket, filename, bytes.NewReader(data), int64(len(data)), contentType, map[string]string{
		"title":       title,
		"description": req.Description,
	})
	if err != nil {
		response.Upstream(w, "update error: "+err.Error())
		return
	}

	response.OK(w, okData{OK: true, Message: "update successful"})
}

// Delete godoc
//
//	@Summary		Delete an object
//	@Description	Removes a single object from a bucket.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			bucket		path		string			true	"bucket name"
//	@Param			filename	path		string			true	"object key"
//	@Param			request		body		deleteRequest	true	"shared password"
//	@Success		200			{object}	okData
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Failure		503			{object}	response.ErrorBody
//	@Router			/content/{bucket}/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		response.Unavailable(w, "storage not configured, set the storage environment variables")
		return
	}

	bucket := chi.URLParam(r, "bucket")
	filename := chi.URLParam(r, "filename")
	if !ValidBucket(bucket) {
		response.BadRequest(w, "unknown bucket")
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !h.checkPassword(req.Password) {
		response.Unauthorized(w, "wrong password")
		return
	}

	if err := h.provider.Remove(r.Context(), bucket, filename); err != nil {
		response.Upstream(w, "delete error: "+err.Error())
		return
	}

	response.OK(w, okData{OK: true, Message: "delete successful"})
}

// SignedUpload godoc
//
//	@Summary		Request a signed upload URL
//	@Description	Issues a short-lived URL for uploading directly to storage, bypassing this process. For deployments that cap request body size.
//	@Tags			content
//	@Accept			json
//	@Produce		json
//	@Param			X-Upload-Password	header		string				true	"shared upload password"
//	@Param			request				body		signedUploadRequest	true	"target bucket and filename"
//	@Success		200					{object}	signedUploadData
//	@Failure		400					{object}	response.ErrorBody
//	@Failure		401					{object}	response.ErrorBody
//	@Failure		500					{object}	response.ErrorBody
//	@Failure		503					{object}	response.ErrorBody
//	@Router			/signed-upload [post]
func (h *Handler) SignedUpload(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		response.Unavailable(w, "storage not configured, set the storage environment variables")
		return
	}

	var req signedUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.Bucket == "" || req.Filename == "" {
		response.BadRequest(w, "missing bucket or filename")
		return
	}
	if !ValidBucket(req.Bucket) {
		response.BadRequest(w, "unknown bucket")
		return
	}

	objectPath := SignedObjectPath(req.Folder, req.Filename)
	uploadURL, err := h.provider.SignedUploadURL(r.Context(), req.Bucket, objectPath, signedURLExpiry)
	if err != nil {
		response.Upstream(w, err.Error())
		return
	}

	response.OK(w, signedUploadData{OK: true, Path: objectPath, UploadURL: uploadURL})
}
