package mysql

import (
	"strings"

	"CampusHub/internal/model"

	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func (r *CommunityRepository) Create(c *model.Community) error {
	return r.DB.Create(c).Error
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

func (r *CommunityRepository) List() ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

// SearchByName 大小写不敏感的子串匹配
func (r *CommunityRepository) SearchByName(query string) ([]model.Community, error) {
	var list []model.Community
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.DB.Where("LOWER(community_name) LIKE ?", pattern).Find(&list).Error
	return list, err
}

func (r *CommunityRepository) MemberCount(communityID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).
		Where("community_id = ?", communityID).
		Count(&count).Error
	return count, err
}
