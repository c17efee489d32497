package blob

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Store เก็บรูป preview ของร้าน/เมนูบน S3
type Store struct {
	client *s3.Client
	bucket string
}

func NewStore(ctx context.Context, region, bucket string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Store{client: s3.NewFromConfig(cfg), bucket: bucket}, nil
}

// UploadBase64 รับ data URL ("data:image/png;base64,....") อัปขึ้น S3
// คืน public URL ของ object
func (s *Store) UploadBase64(ctx context.Context, dataURL, entityName string) (string, error) {
	parts := strings.SplitN(dataURL, ";base64,", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}

	contentType := strings.TrimPrefix(parts[0], "data:")
	ext := "jpeg"
	if i := strings.Index(contentType, "/"); i >= 0 && i+1 < len(contentType) {
		ext = contentType[i+1:]
	}

	data, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	key := fmt.Sprintf("%s-%s.%s", uuid.NewString(), entityName, ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}

// DeleteByLinks ลบ objects ตาม public URL ที่เก็บไว้ใน previewLink
func (s *Store) DeleteByLinks(ctx context.Context, links []string) error {
	objects := make([]s3types.ObjectIdentifier, 0, len(links))
	for _, link := range links {
		key := keyFromLink(link)
		if key == "" {
			continue
		}
		objects = append(objects, s3types.ObjectIdentifier{Key: aws.String(key)})
	}
	if len(objects) == 0 {
		return nil
	}

	_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(s.bucket),
		Delete: &s3types.Delete{Quiet: aws.Bool(true), Objects: objects},
	})
	return err
}

func keyFromLink(link string) string {
	_, key, ok := strings.Cut(link, ".amazonaws.com/")
	if !ok {
		return ""
	}
	return strings.ReplaceAll(key, "%2B", "+")
}
