package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AbheekRai/full-stack-shopping-cart-app/initializers"
	"github.com/AbheekRai/full-stack-shopping-cart-app/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	msgInvalidInput     = "Invalid input"
	msgCartItemNotFound = "cart item not found"
	msgQuantityTooLow   = "quantity must be greater than 0"
	msgCartFetchFailed  = "Unable to fetch cart"
	msgCartAddFailed    = "Unable to add item to cart"
	msgCartUpdateFailed = "Unable to update cart item"
	msgCartRemoveFailed = "Unable to remove cart item"
)

type addToCartRequest struct {
	ProductId uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func AddToCart(ctx *gin.Context) {
	var req addToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var item models.CartItem
	var created bool
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = upsertCartItem(tx, req.ProductId, req.Quantity, &item)
		return err
	})
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartAddFailed)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	sendJSONResponse(ctx, status, gin.H{
		"id":        item.ID,
		"productId": item.ProductId,
		"quantity":  item.Quantity,
	})
}

// upsertCartItem increments the quantity of the product's existing cart row
// or inserts a new row. A duplicate-key error on the insert means a
// concurrent add won the race on the product_id unique index, in which case
// the increment is retried against the row that now exists.
func upsertCartItem(tx *gorm.DB, productId uint, quantity int, item *models.CartItem) (bool, error) {
	increment := func() error {
		res := tx.Model(&models.CartItem{}).
			Where("product_id = ?", productId).
			Update("quantity", gorm.Expr("quantity + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("product_id = ?", productId).First(item).Error
	}

	err := increment()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	*item = models.CartItem{ProductId: productId, Quantity: quantity}
	err = tx.Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, increment()
	}
	return err == nil, err
}

// fetchCartItems returns the joined cart projection, most recently added
// first, along with the grand total. Subtotals are computed here rather
// than stored.
func fetchCartItems(tx *gorm.DB) ([]models.CartItemDetails, decimal.Decimal, error) {
	var rows []struct {
		ID          uint
		ProductId   uint
		ProductName string
		Price       decimal.Decimal
		Quantity    int
	}
	err := tx.Table("cart_items").
		Select("cart_items.id, cart_items.product_id, products.name AS product_name, products.price, cart_items.quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Order("cart_items.created_at DESC, cart_items.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]models.CartItemDetails, 0, len(rows))
	total := decimal.Zero
	for _, row := range rows {
		subtotal := row.Price.Mul(decimal.NewFromInt(int64(row.Quantity)))
		items = append(items, models.CartItemDetails{
			ID:          row.ID,
			ProductId:   row.ProductId,
			ProductName: row.ProductName,
			Price:       row.Price,
			Quantity:    row.Quantity,
			Subtotal:    subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

func GetCart(ctx *gin.Context) {
	items, total, err := fetchCartItems(initializers.DB)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartFetchFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

func UpdateCartItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var req updateCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if req.Quantity <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgQuantityTooLow)
		return
	}

	res := initializers.DB.Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", req.Quantity)
	if res.Error != nil {
		log.Println("Database error:", res.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUpdateFailed)
		return
	}
	if res.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	var item models.CartItem
	if err := initializers.DB.First(&item, id).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUpdateFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"id":        item.ID,
		"productId": item.ProductId,
		"quantity":  item.Quantity,
	})
}

func RemoveCartItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	res := initializers.DB.Delete(&models.CartItem{}, id)
	if res.Error != nil {
		log.Println("Database error:", res.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartRemoveFailed)
		return
	}
	if res.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}
