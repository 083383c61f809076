package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/storage"
)

const maxProfileImageDimension = 512

type FileService interface {
	// UploadProfileImage stores a user's profile picture, downscaled to at
	// most 512px on the longer edge, and returns the storage path.
	UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProfileImage implements FileService.
func (s *fileServiceImpl) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	normalized, err := normalizeProfileImage(buffer)
	if err != nil {
		return "", err
	}

	// Output is always JPEG after normalization.
	newFilename := fmt.Sprintf("%s-%s.jpg", userID, uuid.New().String())
	path := filepath.Join("profiles", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(normalized), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// normalizeProfileImage decodes, downscales and re-encodes the image as JPEG.
func normalizeProfileImage(buffer []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > maxProfileImageDimension || height > maxProfileImageDimension {
		ratio := float64(maxProfileImageDimension) / float64(width)
		if height > width {
			ratio = float64(maxProfileImageDimension) / float64(height)
		}
		img = resizeImage(img, int(float64(width)*ratio), int(float64(height)*ratio))
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image using high-quality interpolation.
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
