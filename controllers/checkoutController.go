package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/AbheekRai/full-stack-shopping-cart-app/initializers"
	"github.com/AbheekRai/full-stack-shopping-cart-app/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgCartEmpty      = "cart is empty"
	msgCheckoutFailed = "Unable to process checkout"
)

var errCartEmpty = errors.New(msgCartEmpty)

type checkoutRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Checkout reads the cart, clears it and returns a mock receipt. The read
// and the delete run in one transaction; the delete targets exactly the row
// ids that were read, so a concurrent checkout that already consumed them
// deletes nothing and fails with the empty-cart error instead of settling
// the same items twice.
func Checkout(ctx *gin.Context) {
	var req checkoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var receipt models.Receipt
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		items, total, err := fetchCartItems(tx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return errCartEmpty
		}

		ids := make([]uint, len(items))
		for i, item := range items {
			ids[i] = item.ID
		}
		res := tx.Where("id IN ?", ids).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return errCartEmpty
		}

		receiptItems := make([]models.ReceiptItem, len(items))
		for i, item := range items {
			receiptItems[i] = models.ReceiptItem{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Price:       item.Price,
				Subtotal:    item.Subtotal,
			}
		}

		receipt = models.Receipt{
			OrderId:       generateOrderId(),
			CustomerName:  req.Name,
			CustomerEmail: req.Email,
			Items:         receiptItems,
			Total:         total,
			Timestamp:     time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errCartEmpty) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
			return
		}
		log.Println("Checkout error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCheckoutFailed)
		return
	}

	ctx.JSON(http.StatusOK, receipt)
}

// generateOrderId builds a best-effort-unique order identifier. Order ids
// are never persisted, so uniqueness is not checked against prior ones.
func generateOrderId() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), random[:9])
}
