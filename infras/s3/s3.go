package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"rimbest/config"
	"rimbest/infras/otel"
	"rimbest/shared/constant"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	otelAttrSize     = "size"
)

// S3 stores generated artifacts in an S3 compatible bucket.
type S3 interface {
	Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	Delete(ctx context.Context, directory, objectName string) error
	GetObjectNameFromURL(url string) (objectName string)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) bucket() string {
	return svc.config.External.S3.BucketName
}

func (svc *s3Impl) Upload(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.bucket()
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
		otelAttrSize:     len(data),
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload file to S3")

		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	publicDomain := strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/")

	return fmt.Sprintf("%s/%s", publicDomain, objectKey), nil
}

func (svc *s3Impl) Delete(ctx context.Context, directory, objectName string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucket := svc.bucket()
	objectKey := path.Join(directory, objectName)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// GetObjectNameFromURL returns the object key behind a URL produced by Upload,
// or an empty string when the URL does not belong to the bucket.
func (svc *s3Impl) GetObjectNameFromURL(url string) (objectName string) {
	publicDomain := strings.TrimSuffix(svc.config.External.S3.PublicDomain, "/")
	if publicDomain != "" && strings.HasPrefix(url, publicDomain+"/") {
		return strings.TrimPrefix(url, publicDomain+"/")
	}

	bucketURL := fmt.Sprintf("%s/%s/", strings.TrimSuffix(svc.config.External.S3.APIEndpoint, "/"), svc.bucket())
	if strings.HasPrefix(url, bucketURL) {
		return strings.TrimPrefix(url, bucketURL)
	}

	return constant.Empty
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := config.External.S3.APIEndpoint; endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Impl{
		client: s3Client,
		config: config,
		otel:   otel,
	}
}
