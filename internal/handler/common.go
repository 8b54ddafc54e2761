package handler

import (
	"net/http"

	"CampusHub/internal/pkg"

	"github.com/gin-gonic/gin"
)

// bindAndValidate 解析请求体并跑 validator，失败时直接响应 400 并列出全部违规字段
func bindAndValidate(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if fields := pkg.ValidateStruct(req); fields != nil {
		appErr := pkg.ValidationFailed(fields)
		c.JSON(appErr.Status, gin.H{"error": gin.H{"fieldErrors": appErr.Fields}})
		return false
	}
	return true
}
