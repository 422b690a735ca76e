package persistent

import (
	"context"

	"seminary/services/seminary/internal/entity"
	"seminary/services/seminary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	ExistsWithRole(ctx context.Context, role entity.Role) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return translate(err, "user not found")
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, translate(gorm.ErrRecordNotFound, "user not found")
	}
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err, "user not found")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, translate(err, "user not found")
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) ExistsWithRole(ctx context.Context, role entity.Role) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("role = ?", string(role)).Count(&count).Error; err != nil {
		return false, translate(err, "")
	}
	return count > 0, nil
}
