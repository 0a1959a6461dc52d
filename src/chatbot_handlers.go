package main

import (
	"net/http"
	"time"
	"venise/src/chatbot"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

// chatbotHandlers expose the hotel assistant. Public, no session needed.
func chatbotHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/chat", func(ctx *gin.Context) {
			var body types.ChatbotRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{
					"error":    "Message manquant",
					"response": "Veuillez fournir un message.",
				})
				return
			}
			reply := chatBot.Reply(ctx.Request.Context(), body.Message)
			ctx.JSON(http.StatusOK, gin.H{
				"response":  reply,
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}).
		GET("/chat/suggestions", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"suggestions": chatbot.Suggestions(),
				"villes":      chatbot.Cities,
			})
		}).
		GET("/chat/villes", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"villes": chatbot.Cities})
		})
	return g
}
