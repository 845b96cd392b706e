package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// UploadToS3 writes the object and returns its public URL. The write must
// complete before any database row references the key.
func UploadToS3(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return PublicURL(key), nil
}

func DeleteFromS3(ctx context.Context, key string) error {
	_, err := s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET")),
		Key:    aws.String(key),
	})
	return err
}

func PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(os.Getenv("CLOUDFRONT_URL"), "/"), key)
}

var dataURLPattern = regexp.MustCompile(`^data:image/(\w+);base64,(.+)$`)

// DecodeImageDataURL splits an image data URL ("data:image/<ext>;base64,...")
// into its decoded bytes, extension and content type.
func DecodeImageDataURL(dataURL string) (data []byte, ext, contentType string, err error) {
	matches := dataURLPattern.FindStringSubmatch(dataURL)
	if matches == nil {
		return nil, "", "", fmt.Errorf("invalid image data URL")
	}
	ext = matches[1]
	data, err = base64.StdEncoding.DecodeString(matches[2])
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to decode image: %w", err)
	}
	return data, ext, "image/" + ext, nil
}
