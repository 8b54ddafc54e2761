package service

import (
	"CampusHub/internal/model"
	"CampusHub/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MembershipRepository
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{
		repo:       &mysql.CommunityRepository{DB: db},
		memberRepo: &mysql.MembershipRepository{DB: db},
	}
}

func (s *CommunityService) List() ([]model.Community, error) {
	return s.repo.List()
}

// Get 返回社区和成员数
func (s *CommunityService) Get(id uint64) (*model.Community, int64, error) {
	community, err := s.repo.FindByID(id)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.repo.MemberCount(id)
	if err != nil {
		return nil, 0, err
	}
	return community, count, nil
}

// Join 幂等加入：重复请求不报错也不产生第二条记录。
// 返回 true 表示本次新加入，false 表示此前已是成员
func (s *CommunityService) Join(userID, communityID uint64) (bool, error) {
	return s.memberRepo.Join(&model.Membership{
		UserID:      userID,
		CommunityID: communityID,
		Role:        model.RoleMember,
	})
}

func (s *CommunityService) Search(query string) ([]model.Community, error) {
	return s.repo.SearchByName(query)
}
