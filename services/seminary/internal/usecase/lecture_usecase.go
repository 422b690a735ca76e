package usecase

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"seminary/pkg/apperr"
	"seminary/pkg/logger"
	"seminary/pkg/metrics"
	"seminary/pkg/pagination"
	"seminary/pkg/queue"
	"seminary/pkg/storage"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/repo/cache"
	"seminary/services/seminary/internal/repo/persistent"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	materialKeyPrefix     = "lectures"
	blobDeleteConcurrency = 4
)

// Upload is one file attached to a create or update request.
type Upload struct {
	Filename    string
	ContentType string
	Open        func() (io.ReadSeekCloser, error)
}

// EventPublisher receives lecture events after a mutation has committed.
type EventPublisher interface {
	PublishLectureEvent(ctx context.Context, event queue.LectureEvent) error
}

type LectureUseCase interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.LecturePage, error)
	Get(ctx context.Context, id string) (*entity.Lecture, error)
	Create(ctx context.Context, caller *entity.User, input entity.LectureInput, uploads []Upload) (*entity.Lecture, error)
	Update(ctx context.Context, caller *entity.User, id string, patch entity.LecturePatch, uploads []Upload) (*entity.Lecture, error)
	Delete(ctx context.Context, caller *entity.User, id string) error
}

type lectureUseCase struct {
	lectureRepo persistent.LectureRepository
	store       storage.BlobStore
	cache       cache.LectureCache
	events      EventPublisher
	limits      pagination.Limits
	metrics     *metrics.Metrics
	logger      *logger.Logger
	now         func() time.Time
}

// NewLectureUseCase wires the lecture services. cache and events may be nil.
func NewLectureUseCase(
	lectureRepo persistent.LectureRepository,
	store storage.BlobStore,
	lectureCache cache.LectureCache,
	events EventPublisher,
	limits pagination.Limits,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) LectureUseCase {
	return &lectureUseCase{
		lectureRepo: lectureRepo,
		store:       store,
		cache:       lectureCache,
		events:      events,
		limits:      limits,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *lectureUseCase) List(ctx context.Context, query entity.ListQuery) (*entity.LecturePage, error) {
	req := uc.limits.Normalize(query.Page, query.PageSize)
	sortKey := entity.ParseSortKey(query.SortBy)

	items, total, err := uc.lectureRepo.List(ctx, persistent.ListFilter{
		Category: query.CategoryFilter(),
		Sort:     sortKey,
		Offset:   req.Offset(),
		Limit:    req.Limit(),
	})
	if err != nil {
		uc.logger.Error("Failed to list lectures: %v", err)
		return nil, err
	}
	if items == nil {
		items = []entity.LectureSummary{}
	}

	return &entity.LecturePage{
		Items: items,
		Pagination: entity.Pagination{
			CurrentPage: req.Page,
			TotalPages:  pagination.TotalPages(total, req.PageSize),
			Category:    query.DisplayCategory(),
			PageSize:    req.PageSize,
			TotalItems:  total,
			SortBy:      sortKey,
		},
	}, nil
}

func (uc *lectureUseCase) Get(ctx context.Context, id string) (*entity.Lecture, error) {
	var gen int64
	if uc.cache != nil {
		if lecture, ok := uc.cache.Get(ctx, id); ok {
			uc.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return lecture, nil
		}
		uc.metrics.CacheLookups.WithLabelValues("miss").Inc()
		gen = uc.cache.Generation(ctx, id)
	}

	lecture, err := uc.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, lecture, gen)
	}
	return lecture, nil
}

func (uc *lectureUseCase) Create(ctx context.Context, caller *entity.User, input entity.LectureInput, uploads []Upload) (lecture *entity.Lecture, err error) {
	defer func() { uc.metrics.LectureMutations.WithLabelValues("create", metrics.Outcome(err)).Inc() }()

	if err := requireManage(caller); err != nil {
		return nil, err
	}

	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	staging := storage.NewStaging(uc.store)
	defer uc.release(ctx, staging)

	materials, err := uc.stage(ctx, staging, uploads)
	if err != nil {
		return nil, err
	}

	lecture = &entity.Lecture{
		ID:               uuid.New().String(),
		Category:         input.Category,
		Series:           input.Series,
		Number:           input.Number,
		Instructor:       input.Instructor,
		Description:      input.Description,
		Duration:         input.Duration,
		YoutubeEmbedLink: input.YoutubeEmbedLink,
		DriveEmbedLink:   input.DriveEmbedLink,
		RegisterDate:     uc.now().UTC(),
		Materials:        materials,
	}

	if err := uc.lectureRepo.Create(ctx, lecture); err != nil {
		uc.logger.Error("Failed to create lecture: %v", err)
		return nil, err
	}
	staging.Commit()
	uc.metrics.MaterialsUploaded.Add(float64(len(staging.Staged())))

	uc.publish(queue.LectureCreated, lecture, caller)
	return lecture, nil
}

func (uc *lectureUseCase) Update(ctx context.Context, caller *entity.User, id string, patch entity.LecturePatch, uploads []Upload) (lecture *entity.Lecture, err error) {
	defer func() { uc.metrics.LectureMutations.WithLabelValues("update", metrics.Outcome(err)).Inc() }()

	if err := requireManage(caller); err != nil {
		return nil, err
	}

	lecture, err = uc.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Empty() && len(uploads) == 0 {
		return lecture, nil
	}
	if err := patch.Apply(lecture); err != nil {
		return nil, err
	}

	staging := storage.NewStaging(uc.store)
	defer uc.release(ctx, staging)

	materials, err := uc.stage(ctx, staging, uploads)
	if err != nil {
		return nil, err
	}

	if err := uc.lectureRepo.Update(ctx, lecture, materials); err != nil {
		uc.logger.Error("Failed to update lecture %s: %v", id, err)
		return nil, err
	}
	staging.Commit()
	uc.metrics.MaterialsUploaded.Add(float64(len(staging.Staged())))

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}
	uc.publish(queue.LectureUpdated, lecture, caller)
	return lecture, nil
}

func (uc *lectureUseCase) Delete(ctx context.Context, caller *entity.User, id string) (err error) {
	defer func() { uc.metrics.LectureMutations.WithLabelValues("delete", metrics.Outcome(err)).Inc() }()

	if err := requireManage(caller); err != nil {
		return err
	}

	deleted, err := uc.lectureRepo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	// The record is gone; orphaned blobs are only logged.
	uc.removeBlobs(context.WithoutCancel(ctx), id, deleted.StorageKeys())

	uc.publish(queue.LectureDeleted, deleted, caller)
	return nil
}

func (uc *lectureUseCase) removeBlobs(ctx context.Context, lectureID string, keys []string) {
	var g errgroup.Group
	g.SetLimit(blobDeleteConcurrency)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			if err := uc.store.Delete(ctx, key); err != nil {
				uc.logger.Warn("Failed to delete blob %s of lecture %s: %v", key, lectureID, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func requireManage(caller *entity.User) error {
	if caller == nil {
		return apperr.Unauthorized("authentication required")
	}
	if !caller.Can(entity.CapManageLectures) {
		return apperr.Forbidden("admin role required")
	}
	return nil
}

// stage writes every upload through the staging scope and returns the
// resulting materials in upload order.
func (uc *lectureUseCase) stage(ctx context.Context, staging *storage.Staging, uploads []Upload) ([]entity.Material, error) {
	materials := make([]entity.Material, 0, len(uploads))
	for _, up := range uploads {
		name := baseName(up.Filename)
		if name == "" {
			return nil, apperr.InvalidInput("uploaded file has no name")
		}

		obj, err := uc.put(ctx, staging, name, up)
		if err != nil {
			uc.logger.Error("Failed to store material %q: %v", name, err)
			return nil, apperr.Wrap(err, apperr.KindStorageFailure, "failed to store uploaded file")
		}

		materials = append(materials, entity.Material{
			ID:         uuid.New().String(),
			Name:       name,
			URL:        obj.URL,
			Type:       storage.FileType(name),
			StorageKey: obj.Key,
		})
	}
	return materials, nil
}

func (uc *lectureUseCase) put(ctx context.Context, staging *storage.Staging, name string, up Upload) (storage.Object, error) {
	body, err := up.Open()
	if err != nil {
		return storage.Object{}, errors.Wrap(err, "open upload")
	}
	defer body.Close()

	return staging.Put(ctx, storage.NewKey(materialKeyPrefix, name), body, contentType(name, up.ContentType))
}

func (uc *lectureUseCase) release(ctx context.Context, staging *storage.Staging) {
	if err := staging.Release(ctx); err != nil {
		uc.logger.Error("Failed to roll back staged materials: %v", err)
	}
}

func (uc *lectureUseCase) publish(eventType queue.EventType, lecture *entity.Lecture, caller *entity.User) {
	if uc.events == nil {
		return
	}

	event := queue.LectureEvent{
		Type:       eventType,
		LectureID:  lecture.ID,
		Category:   lecture.Category,
		Series:     lecture.Series,
		ActorID:    caller.ID,
		OccurredAt: uc.now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.events.PublishLectureEvent(ctx, event); err != nil {
			uc.logger.Error("Failed to publish %s for lecture %s: %v", event.Type, event.LectureID, err)
		}
	}()
}

func baseName(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func contentType(name, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if t := mime.TypeByExtension(storage.Extension(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}
