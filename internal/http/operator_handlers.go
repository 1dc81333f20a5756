package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria/internal/domain"
	"pizzeria/internal/service"
)

// @Summary Pizzaiolo login
// @Tags operator
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 201 {object} tokenResp
// @Failure 401 {object} map[string]string
// @Router /operator/sessions [post]
func (s *Server) operatorLogin(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}
	token, err := s.operator.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tokenResp{Token: token})
}

type createPizzaReq struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// @Summary Create pizza
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param input body createPizzaReq true "Pizza"
// @Success 201 {object} service.PizzaView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /operator/pizzas [post]
func (s *Server) createPizza(c *gin.Context) {
	var req createPizzaReq
	if !bindJSON(c, &req) {
		return
	}
	p, err := s.operator.CreatePizza(c, req.Name, domain.PizzaType(req.Type))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

type pizzaIngredientReq struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// @Summary Add ingredient to pizza
// @Description duplicate or forbidden ingredient is refused (added=false)
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param input body pizzaIngredientReq true "Ingredient"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /operator/pizzas/{name}/ingredients [post]
func (s *Server) addPizzaIngredient(c *gin.Context) {
	var req pizzaIngredientReq
	if !bindJSON(c, &req) {
		return
	}
	added, err := s.operator.AddIngredientToPizza(c, c.Param("name"), req.Ingredient)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

// @Summary Remove ingredient from pizza
// @Tags operator
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param ingredient path string true "Ingredient name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /operator/pizzas/{name}/ingredients/{ingredient} [delete]
func (s *Server) removePizzaIngredient(c *gin.Context) {
	if err := s.operator.RemoveIngredientFromPizza(c, c.Param("name"), c.Param("ingredient")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Ingredients forbidden for the pizza type
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Success 200 {array} string
// @Failure 404 {object} map[string]string
// @Router /operator/pizzas/{name}/conflicts [get]
func (s *Server) pizzaConflicts(c *gin.Context) {
	conflicts, err := s.operator.CheckConsistency(c, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conflicts)
}

type priceReq struct {
	Price *float64 `json:"price" binding:"required"`
}

type priceResp struct {
	Accepted     bool    `json:"accepted"`
	Price        float64 `json:"price"`
	MinimumPrice float64 `json:"minimum_price"`
}

// @Summary Set manual price
// @Description a price below the minimum is refused (accepted=false)
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param input body priceReq true "Price"
// @Success 200 {object} priceResp
// @Failure 404 {object} map[string]string
// @Router /operator/pizzas/{name}/price [put]
func (s *Server) setManualPrice(c *gin.Context) {
	var req priceReq
	if !bindJSON(c, &req) {
		return
	}
	name := c.Param("name")
	accepted, err := s.operator.SetManualPrice(c, name, *req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	price, err := s.operator.Price(c, name)
	if err != nil {
		respondError(c, err)
		return
	}
	floor, err := s.operator.MinimumPrice(c, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, priceResp{Accepted: accepted, Price: price, MinimumPrice: floor})
}

// @Summary Clear manual price
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Success 200 {object} service.PizzaView
// @Failure 404 {object} map[string]string
// @Router /operator/pizzas/{name}/price [delete]
func (s *Server) clearManualPrice(c *gin.Context) {
	p, err := s.operator.ClearManualPrice(c, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type renameReq struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Rename pizza
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param input body renameReq true "New name"
// @Success 200 {object} service.PizzaView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /operator/pizzas/{name}/name [put]
func (s *Server) renamePizza(c *gin.Context) {
	var req renameReq
	if !bindJSON(c, &req) {
		return
	}
	p, err := s.operator.RenamePizza(c, c.Param("name"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type photoReq struct {
	Photo string `json:"photo" binding:"required"`
}

// @Summary Set pizza photo
// @Tags operator
// @Accept json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param input body photoReq true "Image reference (.png, .jpg, .jpeg, .webp)"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /operator/pizzas/{name}/photo [put]
func (s *Server) setPhoto(c *gin.Context) {
	var req photoReq
	if !bindJSON(c, &req) {
		return
	}
	if err := s.operator.SetPhoto(c, c.Param("name"), req.Photo); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ingredientReq struct {
	Name     string  `json:"name"`
	UnitCost float64 `json:"unit_cost"`
}

// @Summary Create ingredient
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param input body ingredientReq true "Ingredient"
// @Success 201 {object} service.IngredientView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /operator/ingredients [post]
func (s *Server) createIngredient(c *gin.Context) {
	var req ingredientReq
	if !bindJSON(c, &req) {
		return
	}
	ing, err := s.operator.CreateIngredient(c, req.Name, req.UnitCost)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// @Summary List ingredients
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.IngredientView
// @Router /operator/ingredients [get]
func (s *Server) listIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.Ingredients(c))
}

type costReq struct {
	UnitCost float64 `json:"unit_cost"`
}

// @Summary Change ingredient cost
// @Tags operator
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Ingredient name"
// @Param input body costReq true "Cost"
// @Success 200 {object} service.IngredientView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /operator/ingredients/{name}/cost [put]
func (s *Server) changeIngredientCost(c *gin.Context) {
	var req costReq
	if !bindJSON(c, &req) {
		return
	}
	ing, err := s.operator.ChangeIngredientCost(c, c.Param("name"), req.UnitCost)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

type restrictionReq struct {
	Type string `json:"type" binding:"required"`
}

// @Summary Forbid ingredient for a pizza type
// @Tags operator
// @Accept json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Ingredient name"
// @Param input body restrictionReq true "Pizza type"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /operator/ingredients/{name}/restrictions [post]
func (s *Server) forbidIngredient(c *gin.Context) {
	var req restrictionReq
	if !bindJSON(c, &req) {
		return
	}
	if err := s.operator.Forbid(c, c.Param("name"), domain.PizzaType(req.Type)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Lift a restriction
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Ingredient name"
// @Param type path string true "Pizza type"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /operator/ingredients/{name}/restrictions/{type} [delete]
func (s *Server) permitIngredient(c *gin.Context) {
	permitted, err := s.operator.Permit(c, c.Param("name"), domain.PizzaType(c.Param("type")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"permitted": permitted})
}

// @Summary Lift all restrictions
// @Tags operator
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Ingredient name"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /operator/ingredients/{name}/restrictions [delete]
func (s *Server) resetRestrictions(c *gin.Context) {
	if err := s.operator.ResetRestrictions(c, c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Fulfil every validated order
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.OrderView
// @Router /operator/orders/collect [post]
func (s *Server) collectOrders(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.CollectValidatedOrders(c))
}

// @Summary Fulfilled orders
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param client query string false "Client email"
// @Success 200 {array} service.OrderView
// @Failure 404 {object} map[string]string
// @Router /operator/orders/fulfilled [get]
func (s *Server) fulfilledOrders(c *gin.Context) {
	email := c.Query("client")
	if email == "" {
		c.JSON(http.StatusOK, s.operator.FulfilledOrders(c))
		return
	}
	list, err := s.operator.FulfilledOrdersFor(c, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Client accounts
// @Tags operator
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.AccountView
// @Router /operator/clients [get]
func (s *Server) listClients(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.Clients(c))
}

type benefitResp struct {
	Benefit float64 `json:"benefit"`
}

// @Summary Total benefit of fulfilled orders
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} benefitResp
// @Router /operator/reports/benefits [get]
func (s *Server) totalBenefit(c *gin.Context) {
	c.JSON(http.StatusOK, benefitResp{Benefit: s.operator.TotalBenefit(c)})
}

// @Summary Unit benefit per pizza
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.PizzaBenefit
// @Router /operator/reports/benefits/pizzas [get]
func (s *Server) benefitPerPizza(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.BenefitPerPizza(c))
}

// @Summary Benefit of one order
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param id path string true "Order ID"
// @Success 200 {object} benefitResp
// @Failure 404 {object} map[string]string
// @Router /operator/reports/benefits/orders/{id} [get]
func (s *Server) orderBenefit(c *gin.Context) {
	b, err := s.operator.OrderBenefit(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, benefitResp{Benefit: b})
}

// @Summary Per-client statistics
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.ClientStat
// @Router /operator/reports/clients [get]
func (s *Server) clientStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.ClientStats(c))
}

// @Summary Statistics of one client
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param email path string true "Client email"
// @Success 200 {object} service.ClientStat
// @Failure 404 {object} map[string]string
// @Router /operator/reports/clients/{email} [get]
func (s *Server) clientStat(c *gin.Context) {
	stat, err := s.operator.StatsFor(c, c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stat)
}

// @Summary Pizzas by quantity sold
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.PizzaSales
// @Router /operator/reports/popularity [get]
func (s *Server) popularity(c *gin.Context) {
	c.JSON(http.StatusOK, s.operator.PopularityRanking(c))
}

// @Summary Quantity sold of one pizza
// @Tags reports
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Success 200 {object} service.PizzaSales
// @Failure 404 {object} map[string]string
// @Router /operator/reports/pizzas/{name}/sold [get]
func (s *Server) quantitySold(c *gin.Context) {
	name := c.Param("name")
	qty, err := s.operator.QuantitySold(c, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.PizzaSales{Pizza: name, Quantity: qty})
}
