package respond

import "github.com/gin-gonic/gin"

// JSON writes a JSON response with the given status. It exists alongside
// Error so handlers read symmetrically.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}
