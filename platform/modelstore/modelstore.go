// Package modelstore syncs trained model artifacts from object storage
// into the local model directory before they are loaded.
// This is part of the platform layer and contains no business logic.
package modelstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"leadscore_backend/platform/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArtifactFiles lists the object keys that make up a trained model.
var ArtifactFiles = []string{
	"classifier.json",
	"scaler.json",
	"encoders.json",
	"feature_names.json",
}

// Store downloads model artifacts from a MinIO bucket.
type Store struct {
	client *minio.Client
	bucket string
}

// New creates a new artifact store client.
func New(cfg config.ModelStoreConfig) (*Store, error) {
	if !cfg.IsModelStoreEnabled() {
		return nil, fmt.Errorf("model store is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &Store{client: client, bucket: cfg.GetModelBucket()}, nil
}

// Sync downloads all artifact files into dir, overwriting local copies.
// A missing object aborts the sync: partial artifact sets would leave the
// scorer in an inconsistent state.
func (s *Store) Sync(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model dir: %w", err)
	}

	for _, name := range ArtifactFiles {
		if err := s.download(ctx, name, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to sync artifact %s: %w", name, err)
		}
	}

	return nil
}

// Upload publishes a locally trained artifact set to the bucket.
func (s *Store) Upload(ctx context.Context, dir string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	for _, name := range ArtifactFiles {
		path := filepath.Join(dir, name)
		if _, err := s.client.FPutObject(ctx, s.bucket, name, path, minio.PutObjectOptions{
			ContentType: "application/json",
		}); err != nil {
			return fmt.Errorf("failed to upload artifact %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) download(ctx context.Context, key, dest string) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer obj.Close()

	file, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(file, obj); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}
