package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/hartmannbarbearia/booking-api/internal/config"
)

// S3API é o recorte do client S3 que o Uploader usa.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader grava logo e avatares num bucket S3-compatível. Imagens entram
// como PNG/JPEG e saem normalizadas em webp.
type Uploader struct {
	client    S3API
	bucket    string
	publicURL string
}

func NewClient(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.StorageRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
		UsePathStyle: true,
	}
	if cfg.StorageEndpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.StorageEndpoint)
	}
	return s3.New(opts)
}

func NewUploader(client S3API, cfg *config.Config) *Uploader {
	publicURL := strings.TrimSuffix(cfg.StoragePublicURL, "/")
	if publicURL == "" && cfg.StorageEndpoint != "" {
		publicURL = strings.TrimSuffix(cfg.StorageEndpoint, "/") + "/" + cfg.StorageBucket
	}
	return &Uploader{
		client:    client,
		bucket:    cfg.StorageBucket,
		publicURL: publicURL,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.client != nil && u.bucket != ""
}

// UploadImage decodifica, limita ao lado máximo e publica como webp.
// Devolve a URL pública do objeto.
func (u *Uploader) UploadImage(ctx context.Context, r io.Reader, folder string, maxSide int) (string, error) {
	if !u.Enabled() {
		return "", errors.New("storage not configured")
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("storage: decode image: %w", err)
	}

	img = shrink(img, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("storage: encode webp: %w", err)
	}

	key := fmt.Sprintf("%s/%s.webp", folder, uuid.NewString())

	if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	}); err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}

	return u.publicURL + "/" + key, nil
}

func shrink(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
