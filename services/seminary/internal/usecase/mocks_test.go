package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"

	"seminary/pkg/apperr"
	"seminary/pkg/queue"
	"seminary/pkg/storage"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == "" {
		user.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsWithRole(ctx context.Context, role entity.Role) (bool, error) {
	args := m.Called(ctx, role)
	return args.Bool(0), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishLectureEvent(ctx context.Context, event queue.LectureEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// memLectureRepository is an in-memory LectureRepository with the same
// ordering and paging semantics as the SQL implementation.
type memLectureRepository struct {
	mu        sync.Mutex
	lectures  map[string]*entity.Lecture
	getCalls  int
	createErr error
	updateErr error
	// afterGet runs once a record has been read, outside the lock.
	afterGet func()
}

func newMemLectureRepository() *memLectureRepository {
	return &memLectureRepository{lectures: make(map[string]*entity.Lecture)}
}

func (r *memLectureRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lectures)
}

func copyLecture(l *entity.Lecture) *entity.Lecture {
	cp := *l
	cp.Materials = append([]entity.Material{}, l.Materials...)
	return &cp
}

func (r *memLectureRepository) Create(_ context.Context, lecture *entity.Lecture) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for i := range lecture.Materials {
		lecture.Materials[i].Position = i
	}
	r.lectures[lecture.ID] = copyLecture(lecture)
	return nil
}

func (r *memLectureRepository) GetByID(_ context.Context, id string) (*entity.Lecture, error) {
	r.mu.Lock()
	r.getCalls++
	l, ok := r.lectures[id]
	var found *entity.Lecture
	if ok {
		found = copyLecture(l)
	}
	hook := r.afterGet
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	if !ok {
		return nil, apperr.NotFound("lecture not found")
	}
	return found, nil
}

func (r *memLectureRepository) List(_ context.Context, filter persistent.ListFilter) ([]entity.LectureSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Lecture
	for _, l := range r.lectures {
		if filter.Category == "" || l.Category == filter.Category {
			matched = append(matched, l)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return less(filter.Sort, matched[i], matched[j]) })

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	items := make([]entity.LectureSummary, 0, end-start)
	for _, l := range matched[start:end] {
		items = append(items, l.Summary())
	}
	return items, int64(total), nil
}

func less(key entity.SortKey, a, b *entity.Lecture) bool {
	switch key {
	case entity.SortOldest:
		if !a.RegisterDate.Equal(b.RegisterDate) {
			return a.RegisterDate.Before(b.RegisterDate)
		}
		return a.ID < b.ID
	case entity.SortSeries:
		if a.Series != b.Series {
			return a.Series < b.Series
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.ID < b.ID
	case entity.SortInstructor:
		if a.Instructor != b.Instructor {
			return a.Instructor < b.Instructor
		}
		if !a.RegisterDate.Equal(b.RegisterDate) {
			return a.RegisterDate.After(b.RegisterDate)
		}
		return a.ID > b.ID
	default:
		if !a.RegisterDate.Equal(b.RegisterDate) {
			return a.RegisterDate.After(b.RegisterDate)
		}
		return a.ID > b.ID
	}
}

func (r *memLectureRepository) Update(_ context.Context, lecture *entity.Lecture, appended []entity.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	existing, ok := r.lectures[lecture.ID]
	if !ok {
		return apperr.NotFound("lecture not found")
	}

	updated := copyLecture(lecture)
	updated.Materials = append([]entity.Material{}, existing.Materials...)
	for _, m := range appended {
		m.Position = len(updated.Materials)
		updated.Materials = append(updated.Materials, m)
	}
	r.lectures[lecture.ID] = updated
	*lecture = *copyLecture(updated)
	return nil
}

func (r *memLectureRepository) Delete(_ context.Context, id string) (*entity.Lecture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lectures[id]
	if !ok {
		return nil, apperr.NotFound("lecture not found")
	}
	delete(r.lectures, id)
	return l, nil
}

var _ persistent.LectureRepository = (*memLectureRepository)(nil)

// flakyStore wraps a store and fails every Put after the first failAfter.
type flakyStore struct {
	storage.BlobStore
	failAfter int
	puts      int
}

func (s *flakyStore) Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) (string, error) {
	s.puts++
	if s.puts > s.failAfter {
		return "", errors.New("disk full")
	}
	return s.BlobStore.Put(ctx, key, body, contentType)
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }

func upload(name, content string) Upload {
	return Upload{
		Filename: name,
		Open: func() (io.ReadSeekCloser, error) {
			return nopCloser{bytes.NewReader([]byte(content))}, nil
		},
	}
}

func strPtr(s string) *string {
	return &s
}
