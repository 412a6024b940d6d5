package service

import (
	"net/http"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pintag-dev/pintag/internal/domain"
	internal_errors "github.com/pintag-dev/pintag/internal/errors"
)

// --- Mocks ---

type MockThreadStorage struct {
	createThreadFunc   func(thread domain.Thread) (domain.Thread, error)
	threadsByImageFunc func(imageId string) ([]domain.Thread, error)
	updatePositionFunc func(threadId string, x, y float64, requesterName string) (domain.Thread, error)
	deleteThreadFunc   func(threadId string, requesterName string) error
}

func (m *MockThreadStorage) CreateThread(thread domain.Thread) (domain.Thread, error) {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(thread)
	}
	return thread, nil
}

func (m *MockThreadStorage) ThreadsByImage(imageId string) ([]domain.Thread, error) {
	if m.threadsByImageFunc != nil {
		return m.threadsByImageFunc(imageId)
	}
	return nil, nil
}

func (m *MockThreadStorage) UpdateThreadPosition(threadId string, x, y float64, requesterName string) (domain.Thread, error) {
	if m.updatePositionFunc != nil {
		return m.updatePositionFunc(threadId, x, y, requesterName)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadStorage) DeleteThread(threadId string, requesterName string) error {
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(threadId, requesterName)
	}
	return nil
}

// --- Tests ---

func TestThreadCreateSanitizesComment(t *testing.T) {
	var stored domain.Thread
	storage := &MockThreadStorage{
		createThreadFunc: func(thread domain.Thread) (domain.Thread, error) {
			stored = thread
			return thread, nil
		},
	}
	svc := NewThread(storage, bluemonday.UGCPolicy())

	thread, err := svc.Create(domain.ThreadCreationData{
		ImageId:   "img1",
		X:         0.5,
		Y:         0.5,
		Comment:   "<script>x</script>hi",
		CreatedBy: "Bob",
	})
	require.NoError(t, err)

	assert.Equal(t, "hi", thread.Comment)
	assert.Equal(t, "hi", stored.Comment)
	assert.Equal(t, "img1", thread.ImageId)
	assert.Equal(t, "Bob", thread.CreatedByName)
	assert.NotEmpty(t, thread.Id)
}

func TestThreadCreateKeepsPlainText(t *testing.T) {
	svc := NewThread(&MockThreadStorage{}, bluemonday.UGCPolicy())

	thread, err := svc.Create(domain.ThreadCreationData{ImageId: "img1", Comment: "looks great"})
	require.NoError(t, err)
	assert.Equal(t, "looks great", thread.Comment)
}

func TestThreadCreateAllowsEmptyAfterSanitization(t *testing.T) {
	svc := NewThread(&MockThreadStorage{}, bluemonday.UGCPolicy())

	// client enforces non-empty before sending; server does not revalidate
	thread, err := svc.Create(domain.ThreadCreationData{ImageId: "img1", Comment: "<script>only</script>"})
	require.NoError(t, err)
	assert.Equal(t, "", thread.Comment)
}

func TestThreadCreatePassesThroughNotFound(t *testing.T) {
	notFound := &internal_errors.ErrorWithStatusCode{Message: "Image not found.", StatusCode: http.StatusNotFound}
	storage := &MockThreadStorage{
		createThreadFunc: func(thread domain.Thread) (domain.Thread, error) {
			return domain.Thread{}, notFound
		},
	}
	svc := NewThread(storage, bluemonday.UGCPolicy())

	_, err := svc.Create(domain.ThreadCreationData{ImageId: "missing"})
	assert.Equal(t, notFound, err)
}

func TestThreadForImage(t *testing.T) {
	want := []domain.Thread{{Id: "t1", ImageId: "img1"}}
	storage := &MockThreadStorage{
		threadsByImageFunc: func(imageId string) ([]domain.Thread, error) {
			assert.Equal(t, "img1", imageId)
			return want, nil
		},
	}
	svc := NewThread(storage, bluemonday.UGCPolicy())

	threads, err := svc.ForImage("img1")
	require.NoError(t, err)
	assert.Equal(t, want, threads)
}

func TestThreadUpdatePositionDelegates(t *testing.T) {
	storage := &MockThreadStorage{
		updatePositionFunc: func(threadId string, x, y float64, requesterName string) (domain.Thread, error) {
			assert.Equal(t, "t1", threadId)
			assert.Equal(t, 0.25, x)
			assert.Equal(t, 0.75, y)
			assert.Equal(t, "Alice", requesterName)
			return domain.Thread{Id: threadId, X: x, Y: y}, nil
		},
	}
	svc := NewThread(storage, bluemonday.UGCPolicy())

	thread, err := svc.UpdatePosition("t1", 0.25, 0.75, "Alice")
	require.NoError(t, err)
	assert.Equal(t, 0.25, thread.X)
}

func TestThreadDeleteDelegates(t *testing.T) {
	forbidden := &internal_errors.ErrorWithStatusCode{Message: "Only the thread creator can do that.", StatusCode: http.StatusForbidden}
	storage := &MockThreadStorage{
		deleteThreadFunc: func(threadId string, requesterName string) error {
			if requesterName != "Alice" {
				return forbidden
			}
			return nil
		},
	}
	svc := NewThread(storage, bluemonday.UGCPolicy())

	require.NoError(t, svc.Delete("t1", "Alice"))
	assert.Equal(t, forbidden, svc.Delete("t1", "Bob"))
}
