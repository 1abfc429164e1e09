package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamesapi/middleware"
	"gamesapi/monitoring"
)

// SetupRouter wires every route onto a fresh engine.
func SetupRouter(games *GameHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(monitoring.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
	}))

	r.GET("/", Welcome)
	r.GET("/healthz", Health)
	r.GET("/metrics", monitoring.PrometheusHandler())

	r.GET("/games", games.GetGames)
	r.GET("/games/:id", games.GetGameByID)
	r.POST("/games", games.CreateGame)
	r.PUT("/games/:id", games.UpdateGame)
	r.DELETE("/games/:id", games.DeleteGame)

	return r
}
