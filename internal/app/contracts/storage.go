package contracts

import (
	"context"
	"time"
)

type Storage interface {
	UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
