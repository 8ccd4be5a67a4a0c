package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentsdemo/internal/config"
)

func TestNewMinIO_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{
			name:    "missing endpoint",
			cfg:     config.MinIOConfig{AccessKey: "a", SecretKey: "s", Bucket: "b"},
			wantErr: "endpoint is required",
		},
		{
			name:    "missing credentials",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "b"},
			wantErr: "credentials are required",
		},
		{
			name:    "missing bucket",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"},
			wantErr: "bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewMinIO(tt.cfg)
			assert.Nil(t, st)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAttachment(t *testing.T) {
	assert.Equal(t, `attachment; filename="students-1.json"`, Attachment("exports/students-1.json"))
	assert.Equal(t, `attachment; filename="plain.json"`, Attachment("plain.json"))
}

func TestObjectOptions(t *testing.T) {
	opt := objectOptions(PutObjectOptions{
		Size:               42,
		ContentType:        "application/json",
		ContentDisposition: Attachment("exports/a.json"),
		CacheControl:       "no-store",
		Metadata:           map[string]string{"student-count": "3"},
	})

	assert.Equal(t, "application/json", opt.ContentType)
	assert.Equal(t, `attachment; filename="a.json"`, opt.ContentDisposition)
	assert.Equal(t, "no-store", opt.CacheControl)
	assert.Equal(t, map[string]string{"student-count": "3"}, opt.UserMetadata)
}

func TestPresignParams(t *testing.T) {
	params := presignParams("exports/students-20260301T120000Z-x.json")
	require.Len(t, params, 1)
	assert.Equal(t, `attachment; filename="students-20260301T120000Z-x.json"`, params.Get("response-content-disposition"))
}
