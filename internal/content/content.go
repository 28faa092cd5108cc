// Package content implements the file-hosting API: bucket listings,
// password-gated uploads, metadata patches and deletes, all proxied to an
// S3-compatible storage provider.
package content

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind selects the target bucket of an upload.
type Kind string

const (
	Kind2DImage Kind = "2DImage"
	Kind3DImage Kind = "3DImage"
	KindVideos  Kind = "videos"
	KindModels  Kind = "models"
)

// Buckets is the fixed bucket set served by the API. BehindTheScene holds
// curated gallery extras and has no upload kind; the other four map 1:1 to
// upload kinds. Bootstrap ensures all of them exist.
var Buckets = []string{"2DImage", "3DImage", "BehindTheScene", "videos", "models"}

// ValidBucket reports whether name belongs to the fixed bucket set.
func ValidBucket(name string) bool {
	for _, b := range Buckets {
		if b == name {
			return true
		}
	}
	return false
}

// ParseKind validates an upload kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case Kind2DImage, Kind3DImage, KindVideos, KindModels:
		return Kind(s), true
	}
	return "", false
}

// Bucket returns the bucket a kind uploads into.
func (k Kind) Bucket() string {
	return string(k)
}

// allowedTypes is the MIME allow-list per kind. Octet-stream is deliberately
// absent from the models list: GLB binaries often arrive as
// application/octet-stream, and only the extension fallback in ValidateFile
// may admit those, so a stray octet-stream .txt stays rejected.
var allowedTypes = map[Kind][]string{
	Kind2DImage: {"image/png", "image/jpeg", "image/jpg"},
	Kind3DImage: {"image/png", "image/jpeg", "image/jpg"},
	KindVideos:  {"video/mp4", "video/webm"},
	KindModels:  {"model/gltf+json", "model/gltf-binary"},
}

// ValidateFile checks filename and MIME type against the kind's allow-list.
// For models an allow-listed extension passes regardless of the reported
// MIME type.
func ValidateFile(kind Kind, filename, mimeType string) error {
	if kind == KindModels {
		lower := strings.ToLower(filename)
		if containsString(allowedTypes[kind], mimeType) ||
			strings.HasSuffix(lower, ".glb") || strings.HasSuffix(lower, ".gltf") {
			return nil
		}
		return fmt.Errorf("invalid model file type, only GLB and GLTF are supported")
	}
	if !containsString(allowedTypes[kind], mimeType) {
		return fmt.Errorf("invalid file type %q for kind %q", mimeType, kind)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// NewObjectName generates a unique storage key for an uploaded file:
// "{unixMillis}-{9 random alphanumerics}{original extension}".
func NewObjectName(originalName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(9), path.Ext(originalName))
}

func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

var unsafeFilenameChars = regexp.MustCompile(`[^\w.\-()\[\] ]`)

// SanitizeFilename replaces characters outside a conservative allow-list
// with underscores, preventing path traversal in client-supplied names.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// SignedObjectPath builds the storage key for a signed-upload hand-off:
// a timestamp-prefixed sanitized filename, optionally under a folder.
func SignedObjectPath(folder, filename string) string {
	safe := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeFilename(filename))
	if f := strings.Trim(folder, "/"); f != "" {
		return f + "/" + safe
	}
	return safe
}
