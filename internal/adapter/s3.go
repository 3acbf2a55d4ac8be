package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/inkloth/internal/config"
	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/internal/utils"
	"github.com/MKhiriev/inkloth/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// blogImagePrefix is the key prefix of every uploaded blog image.
const blogImagePrefix = "blogs"

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) objectPutter {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// objectPutter is the part of *s3.Client used by the uploader.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type keyGenerator interface {
	ObjectKey(prefix, fileName string) string
}

type s3ImageUploader struct {
	client    objectPutter
	bucket    string
	publicURL string
	keys      keyGenerator
	logger    *logger.Logger
}

// NewImageUploader builds an [ImageUploader] for the bucket in cfg. A non-empty
// cfg.Endpoint points the client at an S3-compatible server (e.g. MinIO)
// using path-style addressing.
func NewImageUploader(ctx context.Context, cfg config.S3, log *logger.Logger) (ImageUploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewImageUploader").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3ImageUploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		keys:      utils.NewUUIDGenerator(),
		logger:    log,
	}, nil
}

func (u *s3ImageUploader) Upload(ctx context.Context, file models.ImageFile) (models.Image, error) {
	log := logger.FromContext(ctx)

	key := u.keys.ObjectKey(blogImagePrefix, file.Name)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        file.Content,
		ContentType: aws.String(file.ContentType),
	}
	if file.Size > 0 {
		input.ContentLength = aws.Int64(file.Size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		log.Err(err).Str("func", "*s3ImageUploader.Upload").Str("key", key).Msg("error putting object")
		return models.Image{}, fmt.Errorf("%w: %w", ErrUploadingImage, err)
	}

	log.Debug().Str("func", "*s3ImageUploader.Upload").Str("key", key).Msg("image uploaded")
	return models.Image{
		PublicID: key,
		URL:      u.publicURL + "/" + key,
	}, nil
}
