package routes

import (
	"github.com/AbheekRai/full-stack-shopping-cart-app/controllers"
	"github.com/gin-gonic/gin"
)

func CheckoutRoutes(server *gin.Engine) {
	server.POST("/api/checkout", controllers.Checkout)
}
