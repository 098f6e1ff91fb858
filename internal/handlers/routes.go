package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bank-service/internal/services"
)

// NewRouter builds the gin engine serving both the JSON API and the HTML
// form flow over one BankService. main and the tests share this
// constructor, so they exercise identical routing.
func NewRouter(db *gorm.DB, templateGlob, sessionSecret string) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("bank_session", store))

	r.LoadHTMLGlob(templateGlob)

	service := services.NewBankService(db)
	api := NewBankHandler(service)
	web := NewWebHandler(service)

	// Ping endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the bank service",
		})
	})

	// HTML routes
	r.GET("/", web.Index)
	r.GET("/banks", web.ListBanks)
	r.GET("/banks/new", web.NewBankForm)
	r.POST("/banks/new", web.CreateBank)
	r.GET("/banks/:id", web.BankDetail)
	r.GET("/banks/:id/edit", web.EditBankForm)
	r.POST("/banks/:id/edit", web.UpdateBank)
	r.POST("/banks/:id/delete", web.DeleteBank)

	// API routes
	banks := r.Group("/api/banks")
	{
		banks.GET("", api.ListBanks)
		banks.POST("", api.CreateBank)
		banks.GET("/:id", api.GetBank)
		banks.PUT("/:id", api.UpdateBank)
		banks.PATCH("/:id", api.UpdateBank)
		banks.DELETE("/:id", api.DeleteBank)
	}

	return r
}
