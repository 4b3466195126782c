package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/Triex/0x1/internal/errors"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		region string
		prefix string
		build  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy to S3",
		Long: `Upload the build output to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  0x1 deploy --bucket=my-app --region=us-east-1
  0x1 deploy --bucket=my-app --prefix=v2 --no-build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, region, prefix, build)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket name (required)")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix inside the bucket")
	cmd.Flags().BoolVar(&build, "build", true, "Build before deploying")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

func runDeploy(bucket, region, prefix string, buildFirst bool) error {
	cfg, root, err := loadProject()
	if err != nil {
		return err
	}

	if buildFirst {
		if err := runBuild("", "", false); err != nil {
			return err
		}
		fmt.Println()
	}

	distDir := filepath.Join(root, cfg.DistDir)
	if _, err := os.Stat(distDir); err != nil {
		return errors.New("X040", errors.CategoryDeploy, "no build output at "+cfg.DistDir).
			WithHint("run `0x1 build` first")
	}

	client, err := s3Client(region)
	if err != nil {
		return err
	}

	fmt.Printf("  Deploying %s to s3://%s...\n", cfg.Name, bucket)
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var count int
	err = filepath.Walk(distDir, func(path string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		rel, err := filepath.Rel(distDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix != "" {
			key = strings.TrimSuffix(prefix, "/") + "/" + key
		}
		if err := uploadFile(ctx, client, bucket, key, path); err != nil {
			return errors.New("X041", errors.CategoryDeploy, "upload failed for "+key).Wrap(err)
		}
		info("uploaded %s", key)
		count++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println()
	success("Deployed %d files to s3://%s", count, bucket)
	return nil
}

// s3Client builds an S3 client from environment credentials. The full
// aws config loader is overkill for a static-site upload.
func s3Client(region string) (*s3.Client, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, errors.New("X042", errors.CategoryDeploy, "missing AWS credentials").
			WithHint("set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
	}

	return s3.New(s3.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     accessKey,
				SecretAccessKey: secretKey,
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	}), nil
}

func uploadFile(ctx context.Context, client *s3.Client, bucket, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	return err
}
