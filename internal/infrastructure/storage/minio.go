package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

var unsafeObjectChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// AudioArchive copies ingested meeting audio into an S3-compatible bucket
type AudioArchive struct {
	client *minio.Client
	bucket string
}

// NewAudioArchive creates the MinIO client and makes sure the bucket exists
func NewAudioArchive(ctx context.Context, cfg config.StorageConfig) (*AudioArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &AudioArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}
	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}
	return archive, nil
}

func (a *AudioArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Archive uploads the audio at path and returns the object name
func (a *AudioArchive) Archive(ctx context.Context, meetingID uint, filename, path string) (string, error) {
	objectName := ObjectName(meetingID, filename, uuid.NewString())
	_, err := a.client.FPutObject(ctx, a.bucket, objectName, path, minio.PutObjectOptions{
		ContentType: pkgai.AudioMIMEType(filename),
		UserMetadata: map[string]string{
			"meeting-id":        fmt.Sprint(meetingID),
			"original-filename": unsafeObjectChars.ReplaceAllString(filename, "_"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}
	return objectName, nil
}

// ObjectName builds the key for a meeting's audio: meetings/<id>/<unique>-<file>
func ObjectName(meetingID uint, filename, unique string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Trim(unsafeObjectChars.ReplaceAllString(base, "_"), "_.")
	if base == "" {
		base = "audio"
	}
	return fmt.Sprintf("meetings/%d/%s-%s", meetingID, unique, base)
}
