// Package storage implements the file storage port on a gocloud.dev blob
// bucket. The bucket URL decides the backend: file:// for local disk,
// s3:// for S3-compatible stores.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"million/config"
	"million/internal/domain/lifecycle"
	"million/internal/domain/service"
	"million/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the configured bucket and manages it through the Fx lifecycle.
func New(params Params) (service.FileStorage, error) {
	bucket, err := blob.OpenBucket(context.Background(), params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			accessible, err := bucket.IsAccessible(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to check blob bucket access")
			}
			if !accessible {
				return errors.New("blob bucket is not accessible")
			}

			params.Logger.Info("Blob bucket opened",
				slog.String("bucketUrl", params.Config.Blob.BucketURL),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.App.BaseURL, "/"),
	}, nil
}

// Save writes the content under a fresh key. The original filename only
// contributes its extension; the key itself is random so uploads never
// collide.
func (s *blobStorage) Save(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return key, nil
}

// Open streams a stored blob back along with its content type.
func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrap(err, "failed to read blob attributes")
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrFileNotFound
		}

		return nil, "", errors.Wrap(err, "failed to open blob reader")
	}

	return reader, attrs.ContentType, nil
}

// URL resolves a key to a fetchable URL. Buckets that can sign URLs (S3) get
// a signed link; local file buckets fall back to the API's own file route.
func (s *blobStorage) URL(ctx context.Context, key string) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, nil)
	if err == nil {
		return signed, nil
	}
	if gcerrors.Code(err) != gcerrors.Unimplemented {
		return "", errors.Wrap(err, "failed to sign blob url")
	}

	return s.baseURL + "/api/files/" + key, nil
}
