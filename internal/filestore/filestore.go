// Package filestore stores uploaded images behind a single interface, backed
// by the local fileserver or an S3 compatible bucket.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/oklog/ulid/v2"

	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/fileserver"
)

const (
	DefaultURLPrefix = "/media"
)

//go:generate go run go.uber.org/mock/mockgen -source=filestore.go -destination=mock_filestore.go -package=filestore

// Store persists images under keys such as "recipes/<ulid>.jpg". Keys are
// what the database records; URL turns one into something a browser can load.
type Store interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

var (
	_ Store = (*Local)(nil)
	_ Store = (*S3)(nil)
)

// RecipeImageKey returns a fresh key for a recipe image with the given file
// suffix (".jpg").
func RecipeImageKey(suffix string) string {
	return newKey(fileserver.RecipesDir, suffix)
}

// AvatarKey returns a fresh key for a profile avatar.
func AvatarKey(suffix string) string {
	return newKey(fileserver.AvatarsDir, suffix)
}

func newKey(dir, suffix string) string {
	return path.Join(dir, strings.ToLower(ulid.Make().String())+suffix)
}

// Local writes images to disk and serves them under urlPrefix.
type Local struct {
	urlPrefix string
	fs        *fileserver.FileServer
}

func NewLocal(baseDirectory, urlPrefix string) *Local {
	if urlPrefix == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &Local{
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		fs:        fileserver.New(baseDirectory),
	}
}

func (l *Local) Put(_ context.Context, key, _ string, data []byte) error {
	if _, err := l.fs.Write(key, data); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// Delete removes the image. A missing file is not an error.
func (l *Local) Delete(_ context.Context, key string) error {
	err := l.fs.Delete(key)
	if errors.Is(err, fileserver.ErrNotExist) {
		return nil
	}
	return err
}

func (l *Local) URL(key string) string {
	if key == "" {
		return ""
	}
	return l.urlPrefix + "/" + strings.TrimLeft(key, "/")
}

// URLPrefix is the path the images are mounted under.
func (l *Local) URLPrefix() string {
	return l.urlPrefix
}

// FileServer exposes the underlying disk store so the router can serve it.
func (l *Local) FileServer() *fileserver.FileServer {
	return l.fs
}

// S3 stores images in a bucket through the minio client.
type S3 struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewS3(conf config.S3) (*S3, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
		Region: conf.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	publicURL := conf.PublicURL
	if publicURL == "" {
		scheme := "http"
		if conf.UseSSL {
			scheme = "https"
		}
		publicURL = (&url.URL{Scheme: scheme, Host: conf.Endpoint, Path: "/" + conf.Bucket}).String()
	}

	return &S3{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// EnsureBucket creates the bucket when it does not exist yet.
func (s *S3) EnsureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *S3) Put(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("uploading %q: %w", key, err)
	}
	return nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

func (s *S3) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.publicURL + "/" + strings.TrimLeft(key, "/")
}
