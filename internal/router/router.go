package router

import (
	"net/http"

	"CampusHub/internal/handler"
	"CampusHub/internal/middleware"
	"CampusHub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, uploader service.Uploader) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	userSvc := service.NewUserService(db, uploader)
	communitySvc := service.NewCommunityService(db)
	postSvc := service.NewPostService(db, uploader)
	replySvc := service.NewReplyService(db)

	auth := handler.NewAuthHandler(userSvc)
	community := handler.NewCommunityHandler(communitySvc, postSvc)
	post := handler.NewPostHandler(postSvc)
	comment := handler.NewCommentHandler(replySvc)
	user := handler.NewUserHandler(userSvc)
	search := handler.NewSearchHandler()

	// 认证相关接口
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), auth.Me)
		authGroup.PUT("/profile", middleware.AuthMiddleware(), auth.UpdateProfile)
		authGroup.PUT("/photo", middleware.AuthMiddleware(), auth.UpdatePhoto)
	}

	// 社区相关接口
	communityGroup := r.Group("/communities")
	{
		communityGroup.GET("", community.List)
		communityGroup.GET("/search/query", community.Search)
		communityGroup.GET("/:id", community.Get)
		communityGroup.GET("/:id/posts", community.ListPosts)
		communityGroup.POST("/:id/join", middleware.AuthMiddleware(), community.Join)
	}

	// 帖子相关接口
	postGroup := r.Group("/posts")
	{
		postGroup.GET("", post.List)
		postGroup.POST("", post.Create)
		postGroup.GET("/:id", post.Get)
		postGroup.POST("/:id/reply", post.Reply)
		postGroup.POST("/:id/upvote", post.Upvote)
	}

	// 回复查询接口
	commentGroup := r.Group("/comments")
	{
		commentGroup.GET("", comment.List)
		commentGroup.GET("/:id", comment.Get)
	}

	// 用户查询接口
	userGroup := r.Group("/users")
	{
		userGroup.GET("", user.List)
		userGroup.GET("/:id", user.Get)
	}

	r.GET("/search", search.Search)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
