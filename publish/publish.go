// Package publish uploads built artifacts to the distribution bucket.
package publish

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/tunedex/tunedex/constants"
)

// Upload puts each file into the bucket under its base name. The endpoint
// override lets this run against a local stack instead of real S3.
func Upload(paths ...string) error {
	cfg := &aws.Config{Region: aws.String(constants.GetS3Region())}
	if endpoint := constants.GetS3Endpoint(); endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return fmt.Errorf("creating S3 session: %w", err)
	}
	uploader := s3manager.NewUploader(sess)
	bucket := constants.GetS3Bucket()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		key := filepath.Base(path)
		fmt.Printf("Uploading %v to s3://%v/%v\n", path, bucket, key)
		_, err = uploader.Upload(&s3manager.UploadInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String("application/json"),
		})
		f.Close()
		if err != nil {
			return fmt.Errorf("uploading %v: %w", key, err)
		}
	}

	return nil
}
