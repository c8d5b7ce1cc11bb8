package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ImageUploader stores one image and returns the URL it is served from.
type ImageUploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// LocalImageStore writes images under Dir; the router serves Dir at BaseURL.
type LocalImageStore struct {
	Dir     string
	BaseURL string
}

func (s LocalImageStore) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	filename := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return path.Join(s.BaseURL, filename), nil
}

// CloudinaryUploader puts images in one Cloudinary folder.
type CloudinaryUploader struct {
	Client *cloudinary.Cloudinary
	Folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{Client: cld, Folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	base := Slugify(strings.TrimSuffix(name, filepath.Ext(name)))
	if base == "" {
		base = "image"
	}

	resp, err := u.Client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:   u.Folder,
		PublicID: base + "-" + uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// ImageService checks size and content type before handing the file to the
// uploader. It runs outside any property transaction.
type ImageService struct {
	Uploader ImageUploader
	MaxBytes int64
}

func NewImageService(u ImageUploader, maxBytes int64) *ImageService {
	return &ImageService{Uploader: u, MaxBytes: maxBytes}
}

func (s *ImageService) Upload(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", invalid("No file uploaded")
	}
	if s.MaxBytes > 0 && header.Size > s.MaxBytes {
		return "", ErrUploadTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("detect content type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", invalid("Only image files can be uploaded")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := header.Filename
	if filepath.Ext(name) == "" {
		name += mtype.Extension()
	}

	url, err := s.Uploader.Upload(ctx, name, file)
	if err != nil {
		return "", err
	}
	log.Printf("✅ image uploaded name=%q size=%d url=%s", header.Filename, header.Size, url)
	return url, nil
}

// IsUploadTooLarge also recognises the reader error gin returns when the
// request body itself exceeds the limit.
func IsUploadTooLarge(err error) bool {
	if errors.Is(err, ErrUploadTooLarge) {
		return true
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "request body too large")
}
