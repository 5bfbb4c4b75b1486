package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes {status:"success", data:{...}}.
func Success(c *gin.Context, code int, data gin.H) {
	c.JSON(code, gin.H{
		"status": "success",
		"data":   data,
	})
}

// List writes {status:"success", results:n, data:{<key>:[...]}}.
func List(c *gin.Context, key string, items interface{}, n int) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": n,
		"data":    gin.H{key: items},
	})
}

// Page is the paginated list variant used by donations.
func Page(c *gin.Context, key string, items interface{}, n int, total int64, pages, currentPage int) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"results":     n,
		"total":       total,
		"pages":       pages,
		"currentPage": currentPage,
		"data":        gin.H{key: items},
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
