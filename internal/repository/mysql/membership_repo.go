package mysql

import (
	"CampusHub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// Join 幂等插入：若已存在 (user_id, community_id) 则不报错；
// 返回本次是否真的新建了成员记录
func (r *MembershipRepository) Join(member *model.Membership) (bool, error) {
	tx := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "community_id"}},
		DoNothing: true,
	}).Create(member)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *MembershipRepository) IsMember(userID, communityID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Membership{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}
