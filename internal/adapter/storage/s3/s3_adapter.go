package s3

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/burakcnaksy0/classifieds-service/internal/platform/logger"
)

// ImageStorage keeps listing images in a MinIO bucket under
// listings/<id>/<order>_<uuid>.<ext>. The numeric prefix is the display
// order, so the lexically smallest key is the listing's first image.
type ImageStorage struct {
	client *minio.Client
	bucket string
	logger logger.Logger
}

func NewImageStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool, log logger.Logger) (*ImageStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for %s: %w", endpoint, err)
	}

	err = client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(context.Background(), bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", bucket, err)
		}
	}

	return &ImageStorage{client: client, bucket: bucket, logger: log}, nil
}

func listingPrefix(listingID int64) string {
	return fmt.Sprintf("listings/%d/", listingID)
}

// Upload stores an image for the listing at the given display order and
// returns its URL.
func (s *ImageStorage) Upload(ctx context.Context, listingID int64, displayOrder int, originalFileName string, data []byte) (string, error) {
	ext := filepath.Ext(originalFileName)
	objectKey := fmt.Sprintf("%s%03d_%s%s", listingPrefix(listingID), displayOrder, uuid.New().String(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", objectKey, err)
	}

	url := s.objectURL(objectKey)
	s.logger.Infof("uploaded listing image, listing=%d key=%s", listingID, objectKey)
	return url, nil
}

// FirstImageURL resolves the URL of the listing's lowest display-order
// image. A listing without images yields an empty URL and no error.
func (s *ImageStorage) FirstImageURL(ctx context.Context, listingID int64) (string, error) {
	var keys []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    listingPrefix(listingID),
		Recursive: true,
	}) {
		if object.Err != nil {
			return "", fmt.Errorf("failed to list images of listing %d: %w", listingID, object.Err)
		}
		keys = append(keys, object.Key)
	}
	if len(keys) == 0 {
		return "", nil
	}
	sort.Strings(keys)
	return s.objectURL(keys[0]), nil
}

func (s *ImageStorage) objectURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, objectKey)
}
