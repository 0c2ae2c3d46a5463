package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AbheekRai/full-stack-shopping-cart-app/initializers"
	"github.com/AbheekRai/full-stack-shopping-cart-app/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetProducts(ctx *gin.Context) {
	products := []models.Product{}
	if result := initializers.DB.Order("id asc").Find(&products); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	result := initializers.DB.First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}
