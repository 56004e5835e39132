package db

import (
	"testing"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSeedTest(t *testing.T) *gorm.DB {
	testDB, err := SetupTestDB()
	require.NoError(t, err)

	previous := DB
	DB = testDB
	t.Cleanup(func() {
		DB = previous
		CleanupTestDB(testDB)
	})

	return testDB
}

func pizzaCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&model.Pizza{}).Count(&count).Error)
	return count
}

func TestSeed_InsertsStarterMenu(t *testing.T) {
	testDB := setupSeedTest(t)

	require.NoError(t, Seed())
	assert.Equal(t, int64(len(StarterMenu())), pizzaCount(t, testDB))

	var margherita model.Pizza
	require.NoError(t, testDB.Where("name = ?", "Margherita").First(&margherita).Error)
	assert.InDelta(t, 45.90, margherita.Price, 0.001)
	assert.Equal(t, "tradicional", margherita.Category)
}

func TestSeed_SecondRunLeavesCatalogUnchanged(t *testing.T) {
	testDB := setupSeedTest(t)

	require.NoError(t, Seed())
	first := pizzaCount(t, testDB)

	require.NoError(t, Seed())
	assert.Equal(t, first, pizzaCount(t, testDB))
}

func TestSeed_SkipsWhenCatalogAlreadyPopulated(t *testing.T) {
	testDB := setupSeedTest(t)

	custom := &model.Pizza{Name: "Da Casa", Price: 39.90, Category: "especial"}
	require.NoError(t, testDB.Create(custom).Error)

	// An existing catalog, seeded or not, blocks the starter menu
	require.NoError(t, Seed())
	assert.Equal(t, int64(1), pizzaCount(t, testDB))
}
