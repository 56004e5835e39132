package service

import (
	"testing"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (CartService, *gorm.DB, *model.User, *model.Pizza) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	cartRepo := repository.NewCartRepository(testDB)
	pizzaRepo := repository.NewPizzaRepository(testDB)
	cartService := NewCartService(cartRepo, pizzaRepo)

	user := &model.User{Name: "Maria Silva", Email: "maria@example.com", PasswordHash: "hash"}
	testDB.Create(user)

	pizza := &model.Pizza{Name: "Margherita", Price: 45.90, Category: "tradicional"}
	testDB.Create(pizza)

	return cartService, testDB, user, pizza
}

func TestCartService_AddToCart(t *testing.T) {
	cartService, _, user, pizza := setupCartServiceTest(t)

	item, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	assert.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Margherita", item.Pizza.Name)
}

func TestCartService_AddToCart_IncrementsExisting(t *testing.T) {
	cartService, _, user, pizza := setupCartServiceTest(t)

	first, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	require.NoError(t, err)

	second, err := cartService.AddToCart(user.ID, pizza.ID, 1)
	assert.NoError(t, err)

	// Same line, incremented quantity
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, _, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartService_AddToCart_DefaultQuantity(t *testing.T) {
	cartService, _, user, pizza := setupCartServiceTest(t)

	tests := []struct {
		name     string
		quantity int
	}{
		{name: "Zero quantity", quantity: 0},
		{name: "Negative quantity", quantity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, cartService.ClearCart(user.ID))

			item, err := cartService.AddToCart(user.ID, pizza.ID, tt.quantity)
			assert.NoError(t, err)
			assert.Equal(t, 1, item.Quantity)
		})
	}
}

func TestCartService_AddToCart_PizzaNotFound(t *testing.T) {
	cartService, _, user, _ := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestCartService_GetUserCart(t *testing.T) {
	cartService, testDB, user, pizza := setupCartServiceTest(t)

	second := &model.Pizza{Name: "Calabresa", Price: 48.90, Category: "tradicional"}
	testDB.Create(second)

	_, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, second.ID, 1)
	require.NoError(t, err)

	items, total, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 2*45.90+48.90, total, 0.001)
}

func TestCartService_GetUserCart_Empty(t *testing.T) {
	cartService, _, user, _ := setupCartServiceTest(t)

	items, total, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestCartService_RemoveFromCart(t *testing.T) {
	cartService, _, user, pizza := setupCartServiceTest(t)

	_, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	require.NoError(t, err)

	err = cartService.RemoveFromCart(user.ID, pizza.ID)
	assert.NoError(t, err)

	items, _, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestCartService_RemoveFromCart_NotFound(t *testing.T) {
	cartService, _, user, pizza := setupCartServiceTest(t)

	err := cartService.RemoveFromCart(user.ID, pizza.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, testDB, user, pizza := setupCartServiceTest(t)

	second := &model.Pizza{Name: "Calabresa", Price: 48.90, Category: "tradicional"}
	testDB.Create(second)

	_, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, second.ID, 1)
	require.NoError(t, err)

	err = cartService.ClearCart(user.ID)
	assert.NoError(t, err)

	items, total, err := cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestCartService_CartsAreIsolatedPerUser(t *testing.T) {
	cartService, testDB, user, pizza := setupCartServiceTest(t)

	other := &model.User{Name: "Joao Souza", Email: "joao@example.com", PasswordHash: "hash"}
	testDB.Create(other)

	_, err := cartService.AddToCart(user.ID, pizza.ID, 2)
	require.NoError(t, err)

	items, _, err := cartService.GetUserCart(other.ID)
	assert.NoError(t, err)
	assert.Empty(t, items)

	require.NoError(t, cartService.ClearCart(other.ID))

	items, _, err = cartService.GetUserCart(user.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
