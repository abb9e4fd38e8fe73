package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Sandy3122/wedding-invitation-backend/internal/config"
	"github.com/Sandy3122/wedding-invitation-backend/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// Adapter is an adapter for minio implementing port.ObjectStore
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter, creating the bucket when missing
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if cfg.PublicRead {
		if err := client.SetBucketPolicy(ctx, cfg.BucketName, fmt.Sprintf(publicReadPolicy, cfg.BucketName)); err != nil {
			return nil, fmt.Errorf("failed to set public read policy: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Put uploads a local file under key with its response headers
func (a *Adapter) Put(ctx context.Context, localPath string, key string, opts domain.ObjectOptions) (*domain.StoredObject, error) {
	info, err := a.client.FPutObject(ctx, a.config.BucketName, key, localPath, minio.PutObjectOptions{
		ContentType:        opts.ContentType,
		CacheControl:       opts.CacheControl,
		ContentDisposition: opts.ContentDisposition,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}

	a.logger.Debug("object stored",
		slog.String("key", key),
		slog.Int64("size", info.Size),
		slog.String("bucket", a.config.BucketName))

	return &domain.StoredObject{
		Key:  key,
		Size: info.Size,
		ETag: info.ETag,
	}, nil
}

// DurableURL returns a long-lived read URL for the object.
// Public buckets get a plain object URL, private ones a presigned GET.
func (a *Adapter) DurableURL(ctx context.Context, object domain.StoredObject) (string, error) {
	if a.config.PublicRead {
		return a.publicURL(object.Key), nil
	}

	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, object.Key, a.config.PresignDuration, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return presignedURL.String(), nil
}

// Delete deletes an object from storage, a missing object is not an error
func (a *Adapter) Delete(ctx context.Context, key string) error {
	err := a.client.RemoveObject(ctx, a.config.BucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("key", key),
		slog.String("bucket", a.config.BucketName))

	return nil
}

// Ping checks the bucket is reachable
func (a *Adapter) Ping(ctx context.Context) error {
	_, err := a.client.BucketExists(ctx, a.config.BucketName)
	return err
}

func (a *Adapter) publicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if a.config.PublicBaseURL != "" {
		return strings.TrimRight(a.config.PublicBaseURL, "/") + "/" + escaped
	}

	scheme := "http"
	if a.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, a.config.Endpoint, a.config.BucketName, escaped)
}
