package mysql

import (
	"CampusHub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) List() ([]model.User, error) {
	var list []model.User
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

// UpdateFields 部分更新，只写调用方给出的列
func (r *UserRepository) UpdateFields(id uint64, fields map[string]any) (*model.User, error) {
	if len(fields) > 0 {
		if err := r.DB.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(id)
}
