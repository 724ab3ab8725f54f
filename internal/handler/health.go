package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Root returns the service banner served at /.
func Root(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":       "Renascer API - Suppliers and Clients Management System",
			"version":       version,
			"status":        "ok",
			"documentation": "/swagger/index.html",
		})
	}
}

// Health returns a JSON health check response.
// Checks DB connectivity; never exposes credentials or internals.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}
