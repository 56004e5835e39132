package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/internal/app/service"
	"github.com/bellapizza/bellapizza-backend/internal/db"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/bellapizza/bellapizza-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartControllerTest(t *testing.T) (*gin.Engine, *gorm.DB, *model.User, *model.Pizza, string) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	cartRepo := repository.NewCartRepository(testDB)
	pizzaRepo := repository.NewPizzaRepository(testDB)
	cartService := service.NewCartService(cartRepo, pizzaRepo)
	ctrl := NewCartController(cartService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	cart := router.Group("/cart", authMiddleware.Authenticate())
	{
		cart.GET("", ctrl.GetCart)
		cart.POST("/add", ctrl.AddToCart)
		cart.POST("/remove", ctrl.RemoveFromCart)
		cart.POST("/clear", ctrl.ClearCart)
	}

	user := &model.User{Name: "Maria Silva", Email: "maria@example.com", PasswordHash: "hash"}
	testDB.Create(user)

	pizza := &model.Pizza{Name: "Margherita", Price: 45.90, Category: "tradicional"}
	testDB.Create(pizza)

	tokens, err := util.GenerateTokenPair(user.ID, user.Email, "test-secret", 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	return router, testDB, user, pizza, tokens.AccessToken
}

func authedJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)
	return w
}

func TestCartController_GetCart_Empty(t *testing.T) {
	router, _, _, _, token := setupCartControllerTest(t)

	w := authedJSON(t, router, "GET", "/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(0), response["count"])
	assert.Equal(t, float64(0), response["total"])
}

func TestCartController_AddToCart(t *testing.T) {
	router, _, _, pizza, token := setupCartControllerTest(t)

	w := authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: pizza.ID, Quantity: 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Pizza added to cart", response["message"])

	item := response["cart_item"].(map[string]interface{})
	assert.Equal(t, float64(2), item["quantity"])
	assert.InDelta(t, 2*45.90, item["subtotal"].(float64), 0.001)
}

func TestCartController_AddToCart_DefaultsQuantity(t *testing.T) {
	router, _, _, pizza, token := setupCartControllerTest(t)

	// Omitted quantity means one pizza
	w := authedJSON(t, router, "POST", "/cart/add", token, map[string]interface{}{"pizza_id": pizza.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	item := response["cart_item"].(map[string]interface{})
	assert.Equal(t, float64(1), item["quantity"])
}

func TestCartController_AddToCart_MergesLines(t *testing.T) {
	router, _, _, pizza, token := setupCartControllerTest(t)

	first := authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: pizza.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, first.Code)

	second := authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: pizza.ID, Quantity: 1})
	require.Equal(t, http.StatusCreated, second.Code)

	w := authedJSON(t, router, "GET", "/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, float64(1), response["count"])
	assert.InDelta(t, 3*45.90, response["total"].(float64), 0.001)
}

func TestCartController_AddToCart_PizzaNotFound(t *testing.T) {
	router, _, _, _, token := setupCartControllerTest(t)

	w := authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: 9999, Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PIZZA_NOT_FOUND")
}

func TestCartController_AddToCart_MissingPizzaID(t *testing.T) {
	router, _, _, _, token := setupCartControllerTest(t)

	w := authedJSON(t, router, "POST", "/cart/add", token, map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_INPUT")
}

func TestCartController_RemoveFromCart(t *testing.T) {
	router, _, _, pizza, token := setupCartControllerTest(t)

	add := authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: pizza.ID, Quantity: 2})
	require.Equal(t, http.StatusCreated, add.Code)

	w := authedJSON(t, router, "POST", "/cart/remove", token, RemoveFromCartRequest{PizzaID: pizza.ID})
	assert.Equal(t, http.StatusOK, w.Code)

	cart := authedJSON(t, router, "GET", "/cart", token, nil)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(cart.Body.Bytes(), &response))
	assert.Equal(t, float64(0), response["count"])
}

func TestCartController_RemoveFromCart_NotFound(t *testing.T) {
	router, _, _, pizza, token := setupCartControllerTest(t)

	w := authedJSON(t, router, "POST", "/cart/remove", token, RemoveFromCartRequest{PizzaID: pizza.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CART_ITEM_NOT_FOUND")
}

func TestCartController_ClearCart(t *testing.T) {
	router, testDB, _, pizza, token := setupCartControllerTest(t)

	second := &model.Pizza{Name: "Calabresa", Price: 48.90, Category: "tradicional"}
	testDB.Create(second)

	require.Equal(t, http.StatusCreated, authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: pizza.ID, Quantity: 2}).Code)
	require.Equal(t, http.StatusCreated, authedJSON(t, router, "POST", "/cart/add", token, AddToCartRequest{PizzaID: second.ID, Quantity: 1}).Code)

	w := authedJSON(t, router, "POST", "/cart/clear", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	cart := authedJSON(t, router, "GET", "/cart", token, nil)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(cart.Body.Bytes(), &response))
	assert.Equal(t, float64(0), response["count"])
}

func TestCartController_RequiresAuthentication(t *testing.T) {
	router, _, _, pizza, _ := setupCartControllerTest(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{name: "Get cart", method: "GET", path: "/cart", body: nil},
		{name: "Add to cart", method: "POST", path: "/cart/add", body: AddToCartRequest{PizzaID: pizza.ID, Quantity: 1}},
		{name: "Remove from cart", method: "POST", path: "/cart/remove", body: RemoveFromCartRequest{PizzaID: pizza.ID}},
		{name: "Clear cart", method: "POST", path: "/cart/clear", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := authedJSON(t, router, tt.method, tt.path, "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
