package main

import (
	"errors"
	"log"

	"CampusHub/internal/config"
	"CampusHub/internal/model"
	"CampusHub/internal/repository/mysql"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 演示数据灌装，可重复执行（已存在的记录跳过）
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	db := mysql.DB

	if err := db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.Reply{},
		&model.PostImage{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	log.Println("seeding database...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatal(err)
	}

	demo := seedUser(db, &model.User{
		FirstName:    "Demo",
		LastName:     "User",
		Email:        "demo@calvin.edu",
		PasswordHash: string(hash),
		Phone:        "+1 (555) 123-4567",
	})
	alice := seedUser(db, &model.User{
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@calvin.edu",
		PasswordHash: string(hash),
	})

	rvd := seedCommunity(db, "RVD", "Rodenhouse–Van Dellen community hall")
	bht := seedCommunity(db, "BHT", "Bolt–Heyns–TerAvest community hall")
	se := seedCommunity(db, "SE", "Schultze–Eldersveld community hall")
	seedCommunity(db, "BV", "Boer-Vanderweide community hall")
	seedCommunity(db, "KE", "Kalsbeek-Eldersveld community hall")

	seedMembership(db, demo.ID, rvd.ID, model.RoleAdmin)
	seedMembership(db, alice.ID, bht.ID, model.RoleMember)

	lounge := seedPost(db, &model.Post{
		Title:       "Where is the lounge located?",
		Content:     "I am new to RVD and cannot find the community lounge. Can someone help?",
		Type:        model.PostTypeQuestion,
		AuthorID:    demo.ID,
		CommunityID: rvd.ID,
	})
	seedPost(db, &model.Post{
		Title:       "Best study spots in BHT",
		Content:     "Looking for recommendations for quiet study areas.",
		Type:        model.PostTypeQuestion,
		AuthorID:    alice.ID,
		CommunityID: bht.ID,
	})
	seedPost(db, &model.Post{
		Title:       "Laundry tips for first-years",
		Content:     "Here are some helpful tips for using the laundry facilities efficiently...",
		Type:        model.PostTypeAdvice,
		AuthorID:    alice.ID,
		CommunityID: se.ID,
	})

	seedReply(db, &model.Reply{
		Content:  "The lounge is on the second floor, next to the kitchen!",
		AuthorID: alice.ID,
		PostID:   lounge.ID,
	})

	log.Println("seed data created successfully")
}

func seedUser(db *gorm.DB, user *model.User) *model.User {
	var existing model.User
	err := db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return &existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal(err)
	}
	if err := db.Create(user).Error; err != nil {
		log.Fatal(err)
	}
	return user
}

func seedCommunity(db *gorm.DB, name, description string) *model.Community {
	var existing model.Community
	err := db.Where("community_name = ?", name).First(&existing).Error
	if err == nil {
		return &existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal(err)
	}
	community := &model.Community{CommunityName: name, Description: description}
	if err := db.Create(community).Error; err != nil {
		log.Fatal(err)
	}
	return community
}

func seedMembership(db *gorm.DB, userID, communityID uint64, role string) {
	repo := &mysql.MembershipRepository{DB: db}
	if _, err := repo.Join(&model.Membership{
		UserID:      userID,
		CommunityID: communityID,
		Role:        role,
	}); err != nil {
		log.Fatal(err)
	}
}

func seedPost(db *gorm.DB, post *model.Post) *model.Post {
	var existing model.Post
	err := db.Where("title = ? AND author_id = ?", post.Title, post.AuthorID).First(&existing).Error
	if err == nil {
		return &existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal(err)
	}
	if err := db.Create(post).Error; err != nil {
		log.Fatal(err)
	}
	return post
}

func seedReply(db *gorm.DB, reply *model.Reply) {
	var count int64
	if err := db.Model(&model.Reply{}).
		Where("post_id = ? AND author_id = ? AND content = ?", reply.PostID, reply.AuthorID, reply.Content).
		Count(&count).Error; err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		return
	}
	if err := db.Create(reply).Error; err != nil {
		log.Fatal(err)
	}
}
