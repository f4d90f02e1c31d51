package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page renders an HTML page template. Every user-facing outcome, including
// validation and dependency failures, renders a page; protocol-level error
// codes are reserved for broken requests.
func Page(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect sends a 302 to the given location
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// Merge overlays extra onto base without mutating either
func Merge(base, extra gin.H) gin.H {
	merged := gin.H{}
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
