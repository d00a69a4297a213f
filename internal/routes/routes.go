package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alankritha/salon-booking/internal/db"
	"github.com/alankritha/salon-booking/internal/handlers"
	"github.com/alankritha/salon-booking/internal/httpresp"
)

func RegisterRoutes(r *gin.Engine, store *db.Store) {

	// A nil *db.Store must stay a nil interface for the handlers.
	var docs handlers.DocumentStore
	if store != nil {
		docs = store
	}

	bookingHandler := handlers.NewBookingHandler(docs)
	diagnosticsHandler := handlers.NewDiagnosticsHandler(docs)

	r.GET("/", func(c *gin.Context) {
		httpresp.Message(c, "Hello from the Alankritha Naturals backend!")
	})

	r.GET("/test", diagnosticsHandler.Check)

	api := r.Group("/api")
	{
		api.GET("/hello", func(c *gin.Context) {
			httpresp.Message(c, "Hello from the backend API!")
		})

		api.POST("/book", bookingHandler.Create)
	}
}
