package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LectureModel struct {
	ID               string          `gorm:"type:uuid;primary_key"`
	Category         string          `gorm:"type:varchar(100);not null;index"`
	Series           string          `gorm:"type:varchar(255);not null"`
	Number           string          `gorm:"type:varchar(100);not null"`
	Instructor       string          `gorm:"type:varchar(100);not null"`
	Description      string          `gorm:"type:text;not null;default:''"`
	Duration         string          `gorm:"type:varchar(20);not null;default:''"`
	YoutubeEmbedLink string          `gorm:"type:varchar(500);not null;default:''"`
	DriveEmbedLink   string          `gorm:"type:varchar(500);not null;default:''"`
	RegisterDate     time.Time       `gorm:"not null"`
	Materials        []MaterialModel `gorm:"foreignKey:LectureID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (LectureModel) TableName() string {
	return "lectures"
}

func (l *LectureModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type MaterialModel struct {
	ID         string `gorm:"type:uuid;primary_key"`
	LectureID  string `gorm:"type:uuid;not null;uniqueIndex:idx_material_position"`
	Name       string `gorm:"type:varchar(255);not null"`
	URL        string `gorm:"type:varchar(1000);not null"`
	StorageKey string `gorm:"type:varchar(500);not null"`
	Type       string `gorm:"type:varchar(20);not null;default:''"`
	Position   int    `gorm:"not null;uniqueIndex:idx_material_position"`
	CreatedAt  time.Time
}

func (MaterialModel) TableName() string {
	return "lecture_materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
