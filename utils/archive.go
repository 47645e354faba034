// utils/archive.go
package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var archiveClient *s3.Client
var archiveBucket string

// InitArchive configures the R2 client used for run-archive snapshots.
// The archive is optional: when CLOUDFLARE_ACCOUNT_ID is unset the
// service runs with archiving disabled and uploads become no-ops.
func InitArchive() error {
	accountID := os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	if accountID == "" {
		log.Println("⚠️  CLOUDFLARE_ACCOUNT_ID not set — run archiving disabled")
		return nil
	}

	accessKeyID := os.Getenv("R2_ACCESS_KEY_ID")
	accessKeySecret := os.Getenv("R2_ACCESS_KEY_SECRET")
	archiveBucket = os.Getenv("R2_BUCKET_NAME")

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID, accessKeySecret, "",
		)),
		config.WithEndpointResolver(aws.EndpointResolverFunc(
			func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID),
				}, nil
			}),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to load R2 config: %w", err)
	}

	archiveClient = s3.NewFromConfig(cfg)
	log.Printf("📦 Run archive enabled (bucket %s)", archiveBucket)
	return nil
}

// ArchiveEnabled reports whether InitArchive configured a client.
func ArchiveEnabled() bool { return archiveClient != nil }

// UploadRunArchive stores one finished-run snapshot as a JSON object.
// No-op when archiving is disabled.
func UploadRunArchive(key string, payload map[string]any) error {
	if archiveClient == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode run archive: %w", err)
	}

	_, err = archiveClient.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(archiveBucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload run archive: %w", err)
	}

	log.Printf("📦 Run archive uploaded: %s", key)
	return nil
}
