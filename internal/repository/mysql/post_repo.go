package mysql

import (
	"CampusHub/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// CreateWithImages 帖子和图片同一事务落库：要么全部持久化，要么全不
func (r *PostRepository) CreateWithImages(post *model.Post, imageURLs []string) ([]model.PostImage, error) {
	var images []model.PostImage
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			img := model.PostImage{ImageURL: url, PostID: post.ID}
			if err := tx.Create(&img).Error; err != nil {
				return err
			}
			images = append(images, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *PostRepository) List() ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByCommunity(communityID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("community_id = ?", communityID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// Upvote 单条 SQL 原子自增，避免读改写丢更新；返回新计数
func (r *PostRepository) Upvote(id uint64) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var post model.Post
	if err := r.DB.Select("id", "upvotes").First(&post, id).Error; err != nil {
		return 0, err
	}
	return post.Upvotes, nil
}

func (r *PostRepository) ImagesByPostID(postID uint64) ([]model.PostImage, error) {
	var images []model.PostImage
	err := r.DB.Where("post_id = ?", postID).Order("id").Find(&images).Error
	return images, err
}

// ImagesByPostIDs 列表页一次取回多帖图片，按帖子分组
func (r *PostRepository) ImagesByPostIDs(postIDs []uint64) (map[uint64][]model.PostImage, error) {
	grouped := make(map[uint64][]model.PostImage)
	if len(postIDs) == 0 {
		return grouped, nil
	}

	var images []model.PostImage
	err := r.DB.Where("post_id IN ?", postIDs).Order("id").Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		grouped[img.PostID] = append(grouped[img.PostID], img)
	}
	return grouped, nil
}
