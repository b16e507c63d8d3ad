package tui

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewStatusHandler serves health and session listings for the SSH server.
func NewStatusHandler(tracker *Tracker) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": tracker.Len()})
	})
	router.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, tracker.List())
	})
	router.GET("/sessions/:id", func(c *gin.Context) {
		s, ok := tracker.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, s)
	})

	return router
}
