package persistent

import (
	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	// An unrecognised stored role grants no more than a member.
	role, err := entity.ParseRole(m.Role)
	if err != nil {
		role = entity.RoleMember
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Password:    m.Password,
		DisplayName: m.DisplayName,
		Role:        role,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Username:    e.Username,
		Password:    e.Password,
		DisplayName: e.DisplayName,
		Role:        string(e.Role),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToLectureEntity(m *model.LectureModel) *entity.Lecture {
	if m == nil {
		return nil
	}

	materials := make([]entity.Material, len(m.Materials))
	for i := range m.Materials {
		materials[i] = ToMaterialEntity(&m.Materials[i])
	}

	return &entity.Lecture{
		ID:               m.ID,
		Category:         m.Category,
		Series:           m.Series,
		Number:           m.Number,
		Instructor:       m.Instructor,
		Description:      m.Description,
		Duration:         m.Duration,
		YoutubeEmbedLink: m.YoutubeEmbedLink,
		DriveEmbedLink:   m.DriveEmbedLink,
		RegisterDate:     m.RegisterDate,
		Materials:        materials,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToLectureModel maps the lecture columns only; materials are written
// separately so existing rows are never rewritten.
func ToLectureModel(e *entity.Lecture) *model.LectureModel {
	if e == nil {
		return nil
	}

	return &model.LectureModel{
		ID:               e.ID,
		Category:         e.Category,
		Series:           e.Series,
		Number:           e.Number,
		Instructor:       e.Instructor,
		Description:      e.Description,
		Duration:         e.Duration,
		YoutubeEmbedLink: e.YoutubeEmbedLink,
		DriveEmbedLink:   e.DriveEmbedLink,
		RegisterDate:     e.RegisterDate,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToMaterialEntity(m *model.MaterialModel) entity.Material {
	return entity.Material{
		ID:         m.ID,
		Name:       m.Name,
		URL:        m.URL,
		Type:       m.Type,
		StorageKey: m.StorageKey,
		Position:   m.Position,
		CreatedAt:  m.CreatedAt,
	}
}

func ToMaterialModel(lectureID string, e entity.Material) model.MaterialModel {
	return model.MaterialModel{
		ID:         e.ID,
		LectureID:  lectureID,
		Name:       e.Name,
		URL:        e.URL,
		StorageKey: e.StorageKey,
		Type:       e.Type,
		Position:   e.Position,
		CreatedAt:  e.CreatedAt,
	}
}

func ToSummaries(models []model.LectureModel) []entity.LectureSummary {
	items := make([]entity.LectureSummary, len(models))
	for i := range models {
		items[i] = entity.LectureSummary{
			ID:           models[i].ID,
			Category:     models[i].Category,
			Series:       models[i].Series,
			Number:       models[i].Number,
			Instructor:   models[i].Instructor,
			Duration:     models[i].Duration,
			RegisterDate: models[i].RegisterDate,
		}
	}
	return items
}
