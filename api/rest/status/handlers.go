package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusRunning = "running"

	// how this deployment was rolled out, surfaced for the verification demo
	deployMessage = "GKE app deployed securely using Terraform + OIDC"
)

// reports that the app is running and how it was deployed
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  statusRunning,
		Message: deployMessage,
	})
}
