package persistent

import (
	"context"
	"time"

	"seminary/pkg/apperr"
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const lectureNotFound = "lecture not found"

// ListFilter is a normalised listing request.
type ListFilter struct {
	Category string
	Sort     entity.SortKey
	Offset   int
	Limit    int
}

type LectureRepository interface {
	Create(ctx context.Context, lecture *entity.Lecture) error
	GetByID(ctx context.Context, id string) (*entity.Lecture, error)
	List(ctx context.Context, filter ListFilter) ([]entity.LectureSummary, int64, error)
	// Update overwrites the lecture columns and appends materials after the
	// existing ones. Existing materials are never modified.
	Update(ctx context.Context, lecture *entity.Lecture, appended []entity.Material) error
	// Delete removes the lecture and its material rows and returns what was
	// deleted so the caller can release the blobs.
	Delete(ctx context.Context, id string) (*entity.Lecture, error)
}

type lectureRepository struct {
	db *gorm.DB
}

func NewLectureRepository(db *gorm.DB) LectureRepository {
	return &lectureRepository{db: db}
}

// orderFor returns the ORDER BY terms of a sort key. Every ordering ends in
// id so that offset pages never overlap or skip rows.
func orderFor(key entity.SortKey) []string {
	switch key {
	case entity.SortOldest:
		return []string{"register_date ASC", "id ASC"}
	case entity.SortSeries:
		return []string{"series ASC", "number ASC", "register_date ASC", "id ASC"}
	case entity.SortInstructor:
		return []string{"instructor ASC", "register_date DESC", "id DESC"}
	default:
		return []string{"register_date DESC", "id DESC"}
	}
}

func preloadMaterials(db *gorm.DB) *gorm.DB {
	return db.Preload("Materials", func(db *gorm.DB) *gorm.DB {
		return db.Order("lecture_materials.position ASC")
	})
}

func (r *lectureRepository) Create(ctx context.Context, lecture *entity.Lecture) error {
	lectureModel := ToLectureModel(lecture)
	if lectureModel.ID == "" {
		lectureModel.ID = uuid.New().String()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Materials").Create(lectureModel).Error; err != nil {
			return err
		}
		materials, err := insertMaterials(tx, lectureModel.ID, 0, lecture.Materials)
		if err != nil {
			return err
		}
		lectureModel.Materials = materials
		return nil
	})
	if err != nil {
		return translate(err, lectureNotFound)
	}

	*lecture = *ToLectureEntity(lectureModel)
	return nil
}

func (r *lectureRepository) GetByID(ctx context.Context, id string) (*entity.Lecture, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound(lectureNotFound)
	}
	var lectureModel model.LectureModel
	if err := preloadMaterials(r.db.WithContext(ctx)).Where("id = ?", id).First(&lectureModel).Error; err != nil {
		return nil, translate(err, lectureNotFound)
	}
	return ToLectureEntity(&lectureModel), nil
}

func (r *lectureRepository) List(ctx context.Context, filter ListFilter) ([]entity.LectureSummary, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.LectureModel{})
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, translate(err, "")
	}
	if total == 0 || int64(filter.Offset) >= total {
		return []entity.LectureSummary{}, total, nil
	}

	query := scoped().Select("id", "category", "series", "number", "instructor", "duration", "register_date")
	for _, term := range orderFor(filter.Sort) {
		query = query.Order(term)
	}

	var lectureModels []model.LectureModel
	if err := query.Offset(filter.Offset).Limit(filter.Limit).Find(&lectureModels).Error; err != nil {
		return nil, 0, translate(err, "")
	}
	return ToSummaries(lectureModels), total, nil
}

func (r *lectureRepository) Update(ctx context.Context, lecture *entity.Lecture, appended []entity.Material) error {
	if _, err := uuid.Parse(lecture.ID); err != nil {
		return apperr.NotFound(lectureNotFound)
	}

	var updated model.LectureModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LectureModel{}).Where("id = ?", lecture.ID).Updates(map[string]interface{}{
			"category":           lecture.Category,
			"series":             lecture.Series,
			"number":             lecture.Number,
			"instructor":         lecture.Instructor,
			"description":        lecture.Description,
			"duration":           lecture.Duration,
			"youtube_embed_link": lecture.YoutubeEmbedLink,
			"drive_embed_link":   lecture.DriveEmbedLink,
			"updated_at":         time.Now().UTC(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if len(appended) > 0 {
			var next int
			if err := tx.Model(&model.MaterialModel{}).
				Where("lecture_id = ?", lecture.ID).
				Select("COALESCE(MAX(position) + 1, 0)").
				Row().Scan(&next); err != nil {
				return err
			}
			if _, err := insertMaterials(tx, lecture.ID, next, appended); err != nil {
				return err
			}
		}

		return preloadMaterials(tx).Where("id = ?", lecture.ID).First(&updated).Error
	})
	if err != nil {
		return translate(err, lectureNotFound)
	}

	*lecture = *ToLectureEntity(&updated)
	return nil
}

func (r *lectureRepository) Delete(ctx context.Context, id string) (*entity.Lecture, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.NotFound(lectureNotFound)
	}

	var deleted model.LectureModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := preloadMaterials(tx).Where("id = ?", id).First(&deleted).Error; err != nil {
			return err
		}
		if err := tx.Where("lecture_id = ?", id).Delete(&model.MaterialModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.LectureModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, lectureNotFound)
	}
	return ToLectureEntity(&deleted), nil
}

// insertMaterials writes materials with consecutive positions starting at
// first, preserving slice order.
func insertMaterials(tx *gorm.DB, lectureID string, first int, materials []entity.Material) ([]model.MaterialModel, error) {
	if len(materials) == 0 {
		return nil, nil
	}
	rows := make([]model.MaterialModel, len(materials))
	for i, m := range materials {
		m.Position = first + i
		rows[i] = ToMaterialModel(lectureID, m)
		if rows[i].ID == "" {
			rows[i].ID = uuid.New().String()
		}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
