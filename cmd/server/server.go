package main

import (
	"codeberg.org/algopatterns/deploycheck/internal/config"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// gin answers method mismatches with 404 unless told otherwise;
	// a defined path hit with the wrong method must return 405
	router.HandleMethodNotAllowed = true

	server := &Server{
		config: cfg,
		router: router,
	}

	RegisterRoutes(router)

	return server
}
