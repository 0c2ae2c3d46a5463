package routes

import (
	"github.com/AbheekRai/full-stack-shopping-cart-app/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
