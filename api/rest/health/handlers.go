package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const healthOK = "ok"

// returns the server health status
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Health: healthOK,
	})
}
