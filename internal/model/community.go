package model

import "time"

type Community struct {
	ID            uint64 `gorm:"primaryKey"`
	CommunityName string `gorm:"size:128;not null;index"`
	Description   string `gorm:"type:text"`
	BannerImage   string `gorm:"size:512"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type Membership struct {
	ID          uint64 `gorm:"primaryKey"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_member_user_community"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_member_user_community"`
	Role        string `gorm:"size:16;not null;default:member"` // member / admin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Membership) TableName() string { return "memberships" }
