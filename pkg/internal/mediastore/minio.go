package mediastore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/viper"
)

type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinio() (*MinioStore, error) {
	client, err := minio.New(viper.GetString("mediastore.endpoint"), &minio.Options{
		Creds: credentials.NewStaticV4(
			viper.GetString("mediastore.access_key"),
			viper.GetString("mediastore.secret_key"),
			"",
		),
		Secure: viper.GetBool("mediastore.use_ssl"),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create media store client: %v", err)
	}

	bucket := viper.GetString("mediastore.bucket")
	ctx := context.Background()
	if exists, err := client.BucketExists(ctx, bucket); err != nil {
		return nil, fmt.Errorf("unable to check media store bucket: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("unable to create media store bucket: %v", err)
		}
	}

	return &MinioStore{client: client, bucket: bucket}, nil
}

func (v *MinioStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := v.client.PutObject(ctx, v.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if viper.GetBool("mediastore.use_ssl") {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", scheme, v.client.EndpointURL().Host, v.bucket, key), nil
}

func (v *MinioStore) Delete(ctx context.Context, publicID string, kind Kind) error {
	return v.client.RemoveObject(ctx, v.bucket, publicID, minio.RemoveObjectOptions{})
}
