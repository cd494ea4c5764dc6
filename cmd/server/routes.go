package main

import (
	"codeberg.org/algopatterns/deploycheck/api/rest/health"
	"codeberg.org/algopatterns/deploycheck/api/rest/status"
	"github.com/gin-gonic/gin"
)

// sets up all API routes
func RegisterRoutes(router *gin.Engine) {
	router.GET("/", status.Handler)
	router.GET("/health", health.Handler)
}
