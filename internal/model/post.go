package model

import "time"

const (
	PostTypeQuestion = "question"
	PostTypeAdvice   = "advice"
)

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Content     string    `gorm:"type:text;not null"`
	Type        string    `gorm:"size:16;not null"` // question / advice
	AuthorID    uint64    `gorm:"not null;index"`
	CommunityID uint64    `gorm:"not null;index:idx_community_time,priority:1"`
	Upvotes     int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"index:idx_community_time,priority:2,sort:desc"`
	UpdatedAt   time.Time
}

type PostImage struct {
	ID       uint64 `gorm:"primaryKey"`
	ImageURL string `gorm:"size:512;not null"`
	PostID   uint64 `gorm:"not null;index"`
}

func (PostImage) TableName() string { return "post_images" }
