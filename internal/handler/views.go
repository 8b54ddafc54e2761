package handler

import (
	"strconv"
	"time"

	"CampusHub/internal/model"
)

// UserView 认证相关接口的用户视图，永远不带密码哈希
type UserView struct {
	ID           uint64 `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// UserDetailView 用户查询接口的视图，比 UserView 多注册时间
type UserDetailView struct {
	UserView
	CreatedAt time.Time `json:"createdAt"`
}

type CommunityView struct {
	ID            uint64    `json:"id"`
	CommunityName string    `json:"communityName"`
	Description   string    `json:"description,omitempty"`
	BannerImage   string    `json:"bannerImage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReplyView struct {
	ID        uint64    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint64    `json:"authorId"`
	PostID    uint64    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView 对外的帖子形态：authorId 转字符串，comments/images 恒为数组
type PostView struct {
	ID          uint64      `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	AuthorID    string      `json:"authorId"`
	CommunityID uint64      `json:"communityId"`
	Type        string      `json:"type"`
	Upvotes     int64       `json:"upvotes"`
	TimePosted  time.Time   `json:"timePosted"`
	Comments    []ReplyView `json:"comments"`
	Images      []string    `json:"images"`
}

func newUserView(u *model.User) UserView {
	return UserView{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}
}

func newUserDetailView(u *model.User) UserDetailView {
	return UserDetailView{
		UserView:  newUserView(u),
		CreatedAt: u.CreatedAt,
	}
}

func newCommunityView(c *model.Community) CommunityView {
	return CommunityView{
		ID:            c.ID,
		CommunityName: c.CommunityName,
		Description:   c.Description,
		BannerImage:   c.BannerImage,
		CreatedAt:     c.CreatedAt,
	}
}

func newReplyView(r *model.Reply) ReplyView {
	return ReplyView{
		ID:        r.ID,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		PostID:    r.PostID,
		CreatedAt: r.CreatedAt,
	}
}

func newPostView(p *model.Post, images []model.PostImage, replies []model.Reply) PostView {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.ImageURL)
	}

	comments := make([]ReplyView, 0, len(replies))
	for i := range replies {
		comments = append(comments, newReplyView(&replies[i]))
	}

	return PostView{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		AuthorID:    strconv.FormatUint(p.AuthorID, 10),
		CommunityID: p.CommunityID,
		Type:        p.Type,
		Upvotes:     p.Upvotes,
		TimePosted:  p.CreatedAt,
		Comments:    comments,
		Images:      urls,
	}
}
