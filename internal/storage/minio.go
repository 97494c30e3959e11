package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/shaikhsiddique/EventPlaner/internal/config"
)

var MinioClient *minio.Client

var (
	endpoint string
	bucket   string
)

func InitMinio(cfg config.Config) {
	endpoint = cfg.MinioEndpoint
	bucket = cfg.MinioBucket

	useSSL := false // Set to true if using HTTPS

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: useSSL,
	})

	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	// Create a context with timeout for operations
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Create the media bucket if it doesn't exist
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("Warning: Failed to check bucket existence: %v", err)
	} else if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		if err != nil {
			log.Printf("Warning: Failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", bucket)
		}
	}

	MinioClient = client
	fmt.Println("✅ Connected to MinIO")
}

// UploadLocalFile pushes a file from disk into the media bucket and returns
// its public URL.
func UploadLocalFile(ctx context.Context, objectName, path, contentType string) (string, error) {
	_, err := MinioClient.FPutObject(ctx, bucket, objectName, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return ObjectURL(objectName), nil
}

// ObjectURL composes the public URL for an object in the media bucket.
func ObjectURL(objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", endpoint, bucket, objectName)
}
