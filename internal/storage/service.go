package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/maintenix/maintenix-backend/pkg/config"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/maintenix/maintenix-backend/pkg/logger"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Service simulates the object-storage operations for maintenance images.
// No real bucket is touched; the flows demonstrate key layout and validation.
type Service interface {
	SimulateUpload(ctx context.Context, input UploadInput) (*UploadResult, error)
	SimulateList(ctx context.Context, orderID int64) (*ListResult, error)
	SimulateDelete(ctx context.Context, imagePath string) (*DeleteResult, error)
	BucketInfo(ctx context.Context) (*BucketInfoResult, error)
}

type service struct {
	cfg  config.StorageConfig
	logg *logger.Logger
}

// NewService builds a storage simulation bound to the configured bucket.
func NewService(cfg config.StorageConfig, logg *logger.Logger) (Service, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket required")
	}
	return &service{cfg: cfg, logg: logg}, nil
}

func (s *service) SimulateUpload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	imageName := strings.TrimSpace(input.ImageName)
	if err := validateImageName(imageName); err != nil {
		return nil, err
	}
	if input.OrderID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id must be positive")
	}

	objectKey := fmt.Sprintf("maintenance/%d/%s", input.OrderID, imageName)
	url := fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, objectKey)

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{"bucket": s.cfg.Bucket, "object_key": objectKey})
		s.logg.Info(logCtx, "storage.upload.simulated")
	}

	return &UploadResult{
		Status:    "success",
		Message:   "image upload simulated",
		URL:       url,
		ObjectKey: objectKey,
		Bucket:    s.cfg.Bucket,
		Region:    s.cfg.Region,
	}, nil
}

func (s *service) SimulateList(ctx context.Context, orderID int64) (*ListResult, error) {
	if orderID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id must be positive")
	}

	prefix := fmt.Sprintf("maintenance/%d/", orderID)
	images := []string{
		prefix + "IMG001.jpg",
		prefix + "IMG002.jpg",
		prefix + "IMG003.jpg",
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{"bucket": s.cfg.Bucket, "prefix": prefix})
		s.logg.Info(logCtx, "storage.list.simulated")
	}

	return &ListResult{
		Status:      "success",
		Bucket:      s.cfg.Bucket,
		Prefix:      prefix,
		TotalImages: len(images),
		Images:      images,
	}, nil
}

func (s *service) SimulateDelete(ctx context.Context, imagePath string) (*DeleteResult, error) {
	imagePath = strings.TrimSpace(imagePath)
	if len(imagePath) < 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid image path")
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{"bucket": s.cfg.Bucket, "object_key": imagePath})
		s.logg.Info(logCtx, "storage.delete.simulated")
	}

	return &DeleteResult{
		Status:        "success",
		Message:       fmt.Sprintf("image %s deleted (simulated)", imagePath),
		Bucket:        s.cfg.Bucket,
		DeletedObject: imagePath,
	}, nil
}

func (s *service) BucketInfo(ctx context.Context) (*BucketInfoResult, error) {
	return &BucketInfoResult{
		Status:     "success",
		BucketName: s.cfg.Bucket,
		Region:     s.cfg.Region,
		Accessible: true,
	}, nil
}

func validateImageName(name string) error {
	if name == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image name required")
	}
	if len(name) > 255 {
		return pkgerrors.New(pkgerrors.CodeValidation, "image name too long")
	}
	ext := strings.ToLower(path.Ext(name))
	if !allowedImageExtensions[ext] {
		return pkgerrors.New(pkgerrors.CodeValidation, "image extension not allowed").
			WithDetails(map[string]any{"extension": ext})
	}
	return nil
}
