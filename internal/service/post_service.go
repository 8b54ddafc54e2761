package service

import (
	"context"

	"CampusHub/internal/model"
	"CampusHub/internal/pkg"
	"CampusHub/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	repo      *mysql.PostRepository
	replyRepo *mysql.ReplyRepository
	uploader  Uploader
}

func NewPostService(db *gorm.DB, uploader Uploader) *PostService {
	return &PostService{
		repo:      &mysql.PostRepository{DB: db},
		replyRepo: &mysql.ReplyRepository{DB: db},
		uploader:  uploader,
	}
}

type CreatePostInput struct {
	Type        string
	Title       string
	Content     string
	AuthorID    uint64
	CommunityID uint64
	Images      []string // base64，可为空
}

// Create 先上传全部图片（任一失败即整体失败，不落库），
// 再在一个事务里写帖子和图片记录
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*model.Post, []model.PostImage, error) {
	var urls []string
	if len(in.Images) > 0 {
		var err error
		urls, err = s.uploader.UploadMany(ctx, in.Images)
		if err != nil {
			return nil, nil, pkg.UploadFailure("Failed to upload image: " + err.Error())
		}
	}

	post := &model.Post{
		Title:       in.Title,
		Content:     in.Content,
		Type:        in.Type,
		AuthorID:    in.AuthorID,
		CommunityID: in.CommunityID,
	}
	images, err := s.repo.CreateWithImages(post, urls)
	if err != nil {
		return nil, nil, err
	}
	return post, images, nil
}

func (s *PostService) List() ([]model.Post, map[uint64][]model.PostImage, error) {
	posts, err := s.repo.List()
	if err != nil {
		return nil, nil, err
	}
	images, err := s.imagesFor(posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, images, nil
}

func (s *PostService) ListByCommunity(communityID uint64) ([]model.Post, map[uint64][]model.PostImage, error) {
	posts, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return nil, nil, err
	}
	images, err := s.imagesFor(posts)
	if err != nil {
		return nil, nil, err
	}
	return posts, images, nil
}

// Get 帖子详情：帖子 + 图片 + 回复（按时间正序）
func (s *PostService) Get(id uint64) (*model.Post, []model.PostImage, []model.Reply, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	images, err := s.repo.ImagesByPostID(id)
	if err != nil {
		return nil, nil, nil, err
	}
	replies, err := s.replyRepo.ListByPost(id)
	if err != nil {
		return nil, nil, nil, err
	}
	return post, images, replies, nil
}

func (s *PostService) Reply(postID, authorID uint64, content string) (*model.Reply, error) {
	// 帖子必须存在
	if _, err := s.repo.FindByID(postID); err != nil {
		return nil, err
	}

	reply := &model.Reply{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.replyRepo.Create(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Upvote 无条件原子自增，同一用户重复点击也会累加（不做去重是刻意行为）
func (s *PostService) Upvote(id uint64) (int64, error) {
	return s.repo.Upvote(id)
}

func (s *PostService) imagesFor(posts []model.Post) (map[uint64][]model.PostImage, error) {
	ids := make([]uint64, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return s.repo.ImagesByPostIDs(ids)
}
