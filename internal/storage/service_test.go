package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/maintenix/maintenix-backend/pkg/config"
	pkgerrors "github.com/maintenix/maintenix-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewService(config.StorageConfig{Bucket: "maintenix-simulated", Region: "us-east-1"}, nil)
	require.NoError(t, err)
	return svc
}

func TestSimulateUpload(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.SimulateUpload(context.Background(), UploadInput{ImageName: "IMG001.jpg", OrderID: 42})
	require.NoError(t, err)
	assert.Equal(t, "maintenance/42/IMG001.jpg", result.ObjectKey)
	assert.Equal(t, "s3://maintenix-simulated/maintenance/42/IMG001.jpg", result.URL)
	assert.Equal(t, "us-east-1", result.Region)
}

func TestSimulateUpload_RejectsExtension(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SimulateUpload(context.Background(), UploadInput{ImageName: "notes.pdf", OrderID: 1})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSimulateUpload_RejectsLongName(t *testing.T) {
	svc := newTestService(t)

	name := strings.Repeat("a", 255) + ".jpg"
	_, err := svc.SimulateUpload(context.Background(), UploadInput{ImageName: name, OrderID: 1})
	require.Error(t, err)
}

func TestSimulateList(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.SimulateList(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "maintenance/7/", result.Prefix)
	assert.Equal(t, 3, result.TotalImages)
	for _, img := range result.Images {
		assert.True(t, strings.HasPrefix(img, result.Prefix))
	}
}

func TestSimulateDelete_ValidatesPath(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SimulateDelete(context.Background(), "x")
	require.Error(t, err)

	result, err := svc.SimulateDelete(context.Background(), "maintenance/7/IMG001.jpg")
	require.NoError(t, err)
	assert.Equal(t, "maintenance/7/IMG001.jpg", result.DeletedObject)
}

func TestBucketInfo(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.BucketInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "maintenix-simulated", info.BucketName)
	assert.True(t, info.Accessible)
}
