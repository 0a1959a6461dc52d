package main

import (
	"net/http"
	"venise/src/db"
	"venise/src/lib/mailer"
	"venise/src/models"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

// contactHandlers store website contact messages and relay them by email.
func contactHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.POST("/contact", func(ctx *gin.Context) {
		var body types.ContactRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		msg := models.ContactMessage{
			Name:    body.Name,
			Email:   body.Email,
			Subject: body.Subject,
			Message: body.Message,
		}
		db := db.GetDb()
		if err := db.Create(&msg).Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		mailer.New().ForwardContactMessage(&msg)
		ctx.JSON(http.StatusCreated, gin.H{"data": msg})
	})
	return g
}

// contactAdminHandlers list stored messages for staff.
func contactAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/contact", func(ctx *gin.Context) {
		db := db.GetDb()
		var messages []models.ContactMessage
		if err := db.Order("created_at desc").Find(&messages).Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": messages, "count": len(messages)})
	})
	return g
}
