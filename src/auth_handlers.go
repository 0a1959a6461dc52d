package main

import (
	"log"
	"net/http"
	"venise/src/controllers"
	"venise/src/db"
	"venise/src/models"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

// guestAuthRoutes are the session endpoints that work without a token.
func guestAuthRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	auth := g.Group("/auth")
	auth.
		POST("/register", func(ctx *gin.Context) {
			id, status, err := controllers.AuthRegister(ctx)
			if err != nil {
				log.Printf("Error on AuthRegister: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"id": id})
		}).
		POST("/login", func(ctx *gin.Context) {
			token, status, err := controllers.AuthLogin(ctx)
			if err != nil {
				log.Printf("Error on AuthLogin: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"token": token})
		}).
		POST("/forgot-password", func(ctx *gin.Context) {
			var body struct {
				Email string `json:"email" binding:"required,email"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := controllers.ForgotPassword(body.Email); err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			// Always OK so the endpoint cannot be used to probe accounts.
			ctx.Status(http.StatusOK)
		}).
		POST("/reset-password", func(ctx *gin.Context) {
			var body struct {
				Token    string `json:"token" binding:"required"`
				Password string `json:"password" binding:"required,min=8"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := controllers.ResetPassword(body.Token, body.Password); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusOK)
		})
	return g
}

// userHandlers need an authenticated session.
func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/users/me", func(ctx *gin.Context) {
		var user models.User
		userId := ctx.GetUint("id")
		db := db.GetDb()
		if err := db.
			Where(&models.User{ID: userId}).
			First(&user).
			Error; err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"data": user})
	})
	return g
}

// superadminHandlers manage hotel administrator accounts.
func superadminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/admins", func(ctx *gin.Context) {
			id, status, err := controllers.CreateAdmin(ctx)
			if err != nil {
				log.Printf("Error on CreateAdmin: %s\n", err.Error())
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"id": id})
		}).
		GET("/admins", func(ctx *gin.Context) {
			db := db.GetDb()
			var admins []models.User
			if err := db.
				Where(&models.User{Role: string(types.ROLE_ADMIN)}).
				Find(&admins).
				Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": admins, "count": len(admins)})
		}).
		PUT("/admins/:id/toggle", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			active, err := controllers.ToggleAdmin(params.ID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"is_active": active})
		}).
		DELETE("/admins/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			result := db.
				Where(&models.User{Role: string(types.ROLE_ADMIN)}).
				Delete(&models.User{}, params.ID)
			if result.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": result.Error.Error()})
				return
			}
			if result.RowsAffected == 0 {
				ctx.Status(http.StatusNotFound)
				return
			}
			log.Printf("Admin %d deleted by user %d\n", params.ID, ctx.GetUint("id"))
			ctx.Status(http.StatusOK)
		})
	return g
}
