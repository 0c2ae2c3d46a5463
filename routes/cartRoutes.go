package routes

import (
	"github.com/AbheekRai/full-stack-shopping-cart-app/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.POST("/api/cart", controllers.AddToCart)
	server.GET("/api/cart", controllers.GetCart)
	server.PUT("/api/cart/:id", controllers.UpdateCartItem)
	server.DELETE("/api/cart/:id", controllers.RemoveCartItem)
}
