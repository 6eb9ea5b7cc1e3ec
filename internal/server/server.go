package server

import (
	"github.com/anmicius0/taskprogress/internal/config"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin router with the configured API handlers.
func NewRouter(cfg *config.Config, store Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	handler := newHandler(store, cfg.Reports)
	auth := authMiddleware(cfg.Auth)

	router.GET(HealthEndpoint, handler.health)
	router.GET(ProgressPath, auth, handler.progress)
	router.POST(TeamsPath, auth, handler.createTeam)
	router.POST(TeamsPath+"/:id/members", auth, handler.addMember)
	router.POST(TasksPath, auth, handler.createTask)

	return router
}
