package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/service"
	apperrors "github.com/bellapizza/bellapizza-backend/internal/errors"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type PizzaController struct {
	catalogService service.CatalogService
}

func NewPizzaController(catalogService service.CatalogService) *PizzaController {
	return &PizzaController{
		catalogService: catalogService,
	}
}

func pizzaJSON(pizza *model.Pizza) gin.H {
	return gin.H{
		"id":          pizza.ID,
		"name":        pizza.Name,
		"description": pizza.Description,
		"price":       pizza.Price,
		"category":    pizza.Category,
		"image_path":  pizza.ImagePath(),
	}
}

// ListPizzas returns the full menu
// GET /api/v1/pizzas
func (ctrl *PizzaController) ListPizzas(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	pizzas, err := ctrl.catalogService.ListPizzas()
	if err != nil {
		log.Error("Failed to fetch pizza menu", err, nil)
		apperrors.InternalError(c, "Could not load the menu. Please try again later")
		return
	}

	items := make([]gin.H, 0, len(pizzas))
	for i := range pizzas {
		items = append(items, pizzaJSON(&pizzas[i]))
	}

	log.Info("Pizza menu returned", map[string]interface{}{
		"count": len(items),
	})

	c.JSON(http.StatusOK, gin.H{
		"pizzas": items,
		"count":  len(items),
	})
}

// GetPizza returns one menu entry
// GET /api/v1/pizzas/:id
func (ctrl *PizzaController) GetPizza(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	// A non-numeric id can never match a menu entry, so it reads as not found
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid pizza ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		apperrors.NotFound(c, apperrors.PizzaNotFound, "Pizza not found")
		return
	}

	pizza, err := ctrl.catalogService.GetPizzaByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrPizzaNotFound) {
			log.Warn("Pizza not found", map[string]interface{}{
				"pizza_id": id,
			})
			apperrors.NotFound(c, apperrors.PizzaNotFound, "Pizza not found")
			return
		}
		log.Error("Failed to fetch pizza", err, map[string]interface{}{
			"pizza_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get pizza")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pizza": pizzaJSON(pizza),
	})
}
