package service

import (
	"CampusHub/internal/model"
	"CampusHub/internal/repository/mysql"

	"gorm.io/gorm"
)

type ReplyService struct {
	repo *mysql.ReplyRepository
}

func NewReplyService(db *gorm.DB) *ReplyService {
	return &ReplyService{
		repo: &mysql.ReplyRepository{DB: db},
	}
}

func (s *ReplyService) List() ([]model.Reply, error) {
	return s.repo.List()
}

func (s *ReplyService) Get(id uint64) (*model.Reply, error) {
	return s.repo.FindByID(id)
}
