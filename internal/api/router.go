package api

import (
	"loan-amortization/internal/api/handlers"
	"loan-amortization/internal/api/middleware"
	"loan-amortization/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires middleware and routes around st.
func NewRouter(st store.Store, allowedOrigins []string, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	scheduleHandler := handlers.NewScheduleHandler(st, log)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/schedule", scheduleHandler.CreateSchedule)
		api.POST("/schedule/compare", scheduleHandler.CompareTerms)
		api.GET("/schedule/:id", scheduleHandler.GetSchedule)
		api.GET("/schedule/:id/csv", scheduleHandler.GetScheduleCSV)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
