package routes

import (
	"github.com/AbheekRai/full-stack-shopping-cart-app/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/api/products", controllers.GetProducts)
	server.GET("/api/products/:id", controllers.GetProduct)
}
