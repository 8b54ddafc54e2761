package service

import (
	"context"
	"errors"

	"CampusHub/internal/model"
	"CampusHub/internal/pkg"
	"CampusHub/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 登录失败统一返回这个错误，
// 不区分邮箱不存在和密码错误，避免撞库探测
var ErrInvalidCredentials = errors.New("invalid credentials")

// Uploader 图片上传网关；测试里用假实现替换
type Uploader interface {
	Upload(ctx context.Context, base64Image string) (string, error)
	UploadMany(ctx context.Context, base64Images []string) ([]string, error)
}

type UserService struct {
	repo     *mysql.UserRepository
	uploader Uploader
}

func NewUserService(db *gorm.DB, uploader Uploader) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		uploader: uploader,
	}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

func (s *UserService) Register(in RegisterInput) (*model.User, string, error) {
	// 先查重，唯一索引兜底
	if _, err := s.repo.FindByEmail(in.Email); err == nil {
		return nil, "", pkg.DuplicateKey("Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := pkg.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) GetByID(id uint64) (*model.User, error) {
	return s.repo.FindByID(id)
}

func (s *UserService) List() ([]model.User, error) {
	return s.repo.List()
}

// UpdateProfile 只更新传入的字段
func (s *UserService) UpdateProfile(id uint64, fields map[string]any) (*model.User, error) {
	return s.repo.UpdateFields(id, fields)
}

// UpdatePhoto 上传头像并写回 profile_image，返回公开 URL
func (s *UserService) UpdatePhoto(ctx context.Context, id uint64, base64Image string) (string, error) {
	url, err := s.uploader.Upload(ctx, base64Image)
	if err != nil {
		return "", pkg.UploadFailure("Failed to upload image: " + err.Error())
	}

	if _, err := s.repo.UpdateFields(id, map[string]any{"profile_image": url}); err != nil {
		return "", err
	}
	return url, nil
}
