package utils

import "github.com/gin-gonic/gin"

func JSONError(c *gin.Context, code int, errCode, message string) {
	c.JSON(code, gin.H{"error": gin.H{"code": errCode, "message": message}})
}

func JSONErrorDetails(c *gin.Context, code int, errCode, message string, details interface{}) {
	c.JSON(code, gin.H{"error": gin.H{"code": errCode, "message": message, "details": details}})
}
