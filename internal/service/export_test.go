package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studentsdemo/internal/model"
	repoMocks "studentsdemo/internal/repository/mocks"
	"studentsdemo/internal/storage"
	storageMocks "studentsdemo/internal/storage/mocks"
)

func fixedExportService(store storage.Storage, repo *repoMocks.MockStudentRepository) *exportService {
	svc := NewExportService(store, repo, 15*time.Minute).(*exportService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestExportService_Export(t *testing.T) {
	ctx := context.Background()
	students := []model.Student{
		{Name: "Alice", Age: 23, Major: "CS", GPA: model.Float(3.7)},
		{Name: "Bob", Age: 24, Major: "EE"},
	}

	t.Run("uploads snapshot and presigns", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		mStore := new(storageMocks.MockStorage)
		svc := fixedExportService(mStore, mRepo)

		mRepo.On("List", ctx).Return(students, nil).Once()

		var uploaded []byte
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "exports/students-20260301T120000Z-") && strings.HasSuffix(key, ".json")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "application/json" &&
				strings.HasPrefix(opt.ContentDisposition, `attachment; filename="students-20260301T120000Z-`) &&
				opt.CacheControl == "no-store" &&
				opt.Metadata["student-count"] == "2"
		})).Return(func(_ context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			uploaded, _ = io.ReadAll(r)
			return storage.ObjectInfo{Key: key, Size: opt.Size}
		}, nil).Once()
		mStore.On("PresignGet", ctx, mock.AnythingOfType("string"), 15*time.Minute).
			Return("http://minio.local/signed", nil).Once()

		res, err := svc.Export(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "http://minio.local/signed", res.URL)
		assert.Equal(t, time.Date(2026, 3, 1, 12, 15, 0, 0, time.UTC), res.ExpiresAt)
		assert.Equal(t, int64(len(uploaded)), res.Size)

		var snap struct {
			Count    int             `json:"count"`
			Students []model.Student `json:"students"`
		}
		require.NoError(t, json.Unmarshal(uploaded, &snap))
		assert.Equal(t, 2, snap.Count)
		assert.Equal(t, "Alice", snap.Students[0].Name)

		mRepo.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("disabled without storage", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		svc := NewExportService(nil, mRepo, time.Minute)

		_, err := svc.Export(ctx)
		assert.ErrorIs(t, err, ErrExportDisabled)
		mRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("list error", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		mStore := new(storageMocks.MockStorage)
		svc := fixedExportService(mStore, mRepo)
		mRepo.On("List", ctx).Return(nil, errors.New("cursor closed")).Once()

		_, err := svc.Export(ctx)
		assert.EqualError(t, err, "list students: cursor closed")
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload error", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		mStore := new(storageMocks.MockStorage)
		svc := fixedExportService(mStore, mRepo)
		mRepo.On("List", ctx).Return(students, nil).Once()
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket missing")).Once()

		_, err := svc.Export(ctx)
		assert.EqualError(t, err, "upload to storage: bucket missing")
		mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presign error rolls back upload", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		mStore := new(storageMocks.MockStorage)
		svc := fixedExportService(mStore, mRepo)
		mRepo.On("List", ctx).Return(students, nil).Once()
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "exports/x.json"}, nil).Once()
		mStore.On("PresignGet", ctx, "exports/x.json", 15*time.Minute).Return("", errors.New("clock skew")).Once()
		mStore.On("Delete", ctx, "exports/x.json").Return(nil).Once()

		_, err := svc.Export(ctx)
		assert.EqualError(t, err, "presign failed: clock skew")
		mStore.AssertExpectations(t)
	})

	t.Run("rollback failure is reported", func(t *testing.T) {
		mRepo := new(repoMocks.MockStudentRepository)
		mStore := new(storageMocks.MockStorage)
		svc := fixedExportService(mStore, mRepo)
		mRepo.On("List", ctx).Return(students, nil).Once()
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{Key: "exports/x.json"}, nil).Once()
		mStore.On("PresignGet", ctx, "exports/x.json", 15*time.Minute).Return("", errors.New("clock skew")).Once()
		mStore.On("Delete", ctx, "exports/x.json").Return(errors.New("access denied")).Once()

		_, err := svc.Export(ctx)
		assert.EqualError(t, err, "presign failed: clock skew; rollback delete failed: access denied")
	})
}
