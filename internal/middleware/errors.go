package middleware

import (
	"errors"
	"log"
	"net/http"

	"CampusHub/internal/pkg"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorHandler 统一错误出口：handler 用 c.Error 上抛，
// 这里按类型映射状态码，未识别的一律 500 且不泄露内部信息
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var appErr *pkg.AppError
		switch {
		case errors.As(err, &appErr):
			if appErr.Fields != nil {
				c.JSON(appErr.Status, gin.H{"error": gin.H{"fieldErrors": appErr.Fields}})
				return
			}
			c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate record"})
		default:
			log.Printf("unhandled error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
