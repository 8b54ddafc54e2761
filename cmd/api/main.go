package main

import (
	"log"

	"CampusHub/internal/config"
	"CampusHub/internal/model"
	"CampusHub/internal/pkg"
	"CampusHub/internal/repository/azure"
	"CampusHub/internal/repository/mysql"
	"CampusHub/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	pkg.SetSecret(cfg.JWTSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.Reply{},
		&model.PostImage{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	blobStore, err := azure.NewBlobStore(cfg.AzureConnString, cfg.AzureContainerName)
	if err != nil {
		log.Fatal("failed to init blob storage: ", err)
	}

	r := router.InitRouter(mysql.DB, blobStore)

	log.Printf("server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
