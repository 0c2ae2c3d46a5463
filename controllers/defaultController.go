package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shopping Cart API.

The following are the endpoints for this API:

PRODUCT
- GET "/api/products" - Get all products
- GET "/api/products/:id" - Get product by ID

CART
- POST "/api/cart" - Add a product to the cart
- GET "/api/cart" - Get the cart with subtotals and total
- PUT "/api/cart/:id" - Update a cart item's quantity
- DELETE "/api/cart/:id" - Remove a cart item

CHECKOUT
- POST "/api/checkout" - Check out the cart and receive a receipt`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
