package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"collecte_service/internal/domain/entities"
	"collecte_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const (
	defaultStoreImagesBucket = "collecte-store-images"
	uploadTokenTTL           = 15 * time.Minute
)

// S3UploadTokenService hands out presigned PUT URLs for store photos. The
// service never proxies image bytes; clients upload straight to the bucket
// and then register the resulting https URL on the store.
type S3UploadTokenService struct {
	presigner *s3.PresignClient
	bucket    string
	region    string
}

var _ interfaces.IUploadTokenService = (*S3UploadTokenService)(nil)

func NewS3UploadTokenService(cfg aws.Config) *S3UploadTokenService {
	bucket := os.Getenv("STORE_IMAGES_BUCKET")
	if bucket == "" {
		bucket = defaultStoreImagesBucket
	}
	client := s3.NewFromConfig(cfg)
	return &S3UploadTokenService{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		region:    cfg.Region,
	}
}

func (s *S3UploadTokenService) GenerateStoreImageUpload(ctx context.Context, storeID entities.StoreID, fileName, contentType string) (interfaces.UploadToken, error) {
	// A random object key prevents one upload from clobbering another of the
	// same file name.
	ext := path.Ext(fileName)
	objectKey := fmt.Sprintf("stores/%s/%s%s", storeID, uuid.NewString(), strings.ToLower(ext))

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	presigned, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(uploadTokenTTL))
	if err != nil {
		return interfaces.UploadToken{}, fmt.Errorf("failed to presign store image upload: %w", err)
	}

	return interfaces.UploadToken{
		UploadURL: presigned.URL,
		FileURL:   fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey),
		ExpiresAt: time.Now().UTC().Add(uploadTokenTTL),
	}, nil
}
