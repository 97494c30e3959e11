package services

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/storage"
)

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

type UploadedMedia struct {
	URL         string `json:"url"`
	ObjectName  string `json:"object_name"`
	ContentType string `json:"content_type"`
}

// ProcessUploads runs the media pipeline over a batch of uploaded files.
// Images are resized and re-encoded before upload, audio and video go up
// as-is, everything else is skipped silently. Any upload failure aborts the
// whole batch; objects already uploaded are not rolled back.
func ProcessUploads(ctx context.Context, files []*multipart.FileHeader) ([]UploadedMedia, error) {
	uploaded := []UploadedMedia{}

	for _, fh := range files {
		contentType := fh.Header.Get("Content-Type")

		var (
			media UploadedMedia
			err   error
		)
		switch {
		case strings.HasPrefix(contentType, "image/"):
			media, err = uploadOptimizedImage(ctx, fh)
		case strings.HasPrefix(contentType, "video/"), strings.HasPrefix(contentType, "audio/"):
			media, err = uploadRaw(ctx, fh, contentType)
		default:
			continue
		}
		if err != nil {
			log.Printf("media upload failed for %s: %v", fh.Filename, err)
			return nil, httperr.Internal("Error uploading files")
		}

		uploaded = append(uploaded, media)
	}

	return uploaded, nil
}

// FirstImageURL picks the image that ends up on the event record.
func FirstImageURL(media []UploadedMedia) string {
	for _, m := range media {
		if strings.HasPrefix(m.ContentType, "image/") {
			return m.URL
		}
	}
	return ""
}

// uploadOptimizedImage bounds the image to maxImageWidth, re-encodes it as
// JPEG into a temp file and uploads that. The temp file is removed on every
// exit path.
func uploadOptimizedImage(ctx context.Context, fh *multipart.FileHeader) (UploadedMedia, error) {
	src, err := fh.Open()
	if err != nil {
		return UploadedMedia{}, err
	}
	defer src.Close()

	tmpPath, err := optimizeImage(src)
	if err != nil {
		return UploadedMedia{}, err
	}
	defer removeTemp(tmpPath)

	objectName := "events/" + uuid.NewString() + ".jpg"
	url, err := storage.UploadLocalFile(ctx, objectName, tmpPath, "image/jpeg")
	if err != nil {
		return UploadedMedia{}, err
	}

	return UploadedMedia{URL: url, ObjectName: objectName, ContentType: "image/jpeg"}, nil
}

// optimizeImage writes the bounded, re-encoded JPEG to a temp file and
// returns its path. The caller owns removal of the temp file.
func optimizeImage(src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}
	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	tmp, err := os.CreateTemp("", "optimized-*.jpg")
	if err != nil {
		return "", err
	}

	err = imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		removeTemp(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}

// uploadRaw spools the upload to a temp file and pushes it up untouched.
func uploadRaw(ctx context.Context, fh *multipart.FileHeader, contentType string) (UploadedMedia, error) {
	src, err := fh.Open()
	if err != nil {
		return UploadedMedia{}, err
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return UploadedMedia{}, err
	}
	defer removeTemp(tmp.Name())

	_, err = io.Copy(tmp, src)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return UploadedMedia{}, err
	}

	objectName := "events/" + uuid.NewString() + ext
	url, err := storage.UploadLocalFile(ctx, objectName, tmp.Name(), contentType)
	if err != nil {
		return UploadedMedia{}, err
	}

	return UploadedMedia{URL: url, ObjectName: objectName, ContentType: contentType}, nil
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("failed to remove temp file %s: %v", path, err)
	}
}
