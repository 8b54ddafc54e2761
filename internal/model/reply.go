package model

import "time"

// Reply 只增不改：没有更新/删除入口
type Reply struct {
	ID        uint64 `gorm:"primaryKey"`
	Content   string `gorm:"type:text;not null"`
	AuthorID  uint64 `gorm:"not null;index"`
	PostID    uint64 `gorm:"not null;index"`
	CreatedAt time.Time
}
