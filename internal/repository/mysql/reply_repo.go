package mysql

import (
	"CampusHub/internal/model"

	"gorm.io/gorm"
)

type ReplyRepository struct {
	DB *gorm.DB
}

func (r *ReplyRepository) Create(reply *model.Reply) error {
	return r.DB.Create(reply).Error
}

func (r *ReplyRepository) FindByID(id uint64) (*model.Reply, error) {
	var reply model.Reply
	err := r.DB.First(&reply, id).Error
	return &reply, err
}

func (r *ReplyRepository) List() ([]model.Reply, error) {
	var list []model.Reply
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

func (r *ReplyRepository) ListByPost(postID uint64) ([]model.Reply, error) {
	var list []model.Reply
	err := r.DB.Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}
