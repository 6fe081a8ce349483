package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the process is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Task Assignment API is running",
	})
}

// Root answers the bare greeting on /
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Hello, Task Assignment API!")
}
