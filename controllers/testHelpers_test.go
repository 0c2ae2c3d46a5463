package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/AbheekRai/full-stack-shopping-cart-app/initializers"
	"github.com/AbheekRai/full-stack-shopping-cart-app/models"
	"github.com/AbheekRai/full-stack-shopping-cart-app/routes"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB points the package-level DB at a fresh in-memory sqlite
// database. The pool is capped at one connection: sqlite's in-memory mode
// gives every connection its own database, and the cap also serializes the
// concurrency tests the way a real server serializes on the storage layer.
func openTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}))
	initializers.DB = db
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	openTestDB(t)

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.CheckoutRoutes(server)
	return server
}

func seedProduct(t *testing.T, name, price string) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: "Test product",
		ImageUrl:    "https://example.com/" + name + ".jpg",
	}
	require.NoError(t, initializers.DB.Create(&product).Error)
	return product
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type cartItemResponse struct {
	ID        uint `json:"id"`
	ProductId uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type cartResponse struct {
	Items []models.CartItemDetails `json:"items"`
	Total decimal.Decimal          `json:"total"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func getCart(t *testing.T, router *gin.Engine) cartResponse {
	t.Helper()
	rec := performRequest(t, router, "GET", "/api/cart", nil)
	require.Equal(t, 200, rec.Code)
	var cart cartResponse
	decodeResponse(t, rec, &cart)
	return cart
}

func addToCart(t *testing.T, router *gin.Engine, productId uint, quantity int) cartItemResponse {
	t.Helper()
	rec := performRequest(t, router, "POST", "/api/cart", gin.H{
		"productId": productId,
		"quantity":  quantity,
	})
	require.Contains(t, []int{200, 201}, rec.Code, "unexpected status: %d body: %s", rec.Code, rec.Body.String())
	var item cartItemResponse
	decodeResponse(t, rec, &item)
	return item
}
