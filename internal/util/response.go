package util

import "github.com/gin-gonic/gin"

// Message 统一消息返回，形如 {"message": "..."}
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error 统一错误返回（与 Message 同形，单独命名以便阅读）
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}
