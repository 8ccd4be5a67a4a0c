package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"studentsdemo/internal/model"
	"studentsdemo/internal/repository"
	"studentsdemo/internal/storage"
)

// ErrExportDisabled is returned when no object storage is configured.
var ErrExportDisabled = errors.New("export storage is not configured")

// ExportResult describes an uploaded snapshot.
type ExportResult struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Count     int       `json:"count"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExportService writes JSON snapshots of the collection to object storage.
type ExportService interface {
	// Export uploads every student as one JSON object and returns a presigned download URL.
	Export(ctx context.Context) (*ExportResult, error)
}

type exportService struct {
	store  storage.Storage
	repo   repository.StudentRepository
	expiry time.Duration
	now    func() time.Time
}

// NewExportService constructs an ExportService. A nil store yields ErrExportDisabled on every call.
func NewExportService(store storage.Storage, repo repository.StudentRepository, expiry time.Duration) ExportService {
	return &exportService{store: store, repo: repo, expiry: expiry, now: time.Now}
}

type snapshot struct {
	ExportedAt time.Time       `json:"exportedAt"`
	Count      int             `json:"count"`
	Students   []model.Student `json:"students"`
}

func (s *exportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}

	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	now := s.now().UTC()
	body, err := json.MarshalIndent(snapshot{ExportedAt: now, Count: len(students), Students: students}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf("exports/students-%s-%s.json", now.Format("20060102T150405Z"), uuid.NewString())
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:               int64(len(body)),
		ContentType:        "application/json",
		ContentDisposition: storage.Attachment(key),
		CacheControl:       "no-store",
		Metadata: map[string]string{
			"student-count": strconv.Itoa(len(students)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		// Rollback: an export nobody can download is just clutter.
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &ExportResult{
		Key:       info.Key,
		Size:      info.Size,
		Count:     len(students),
		URL:       url,
		ExpiresAt: now.Add(s.expiry),
	}, nil
}
