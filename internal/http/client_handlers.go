package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizzeria/internal/domain"
	"pizzeria/internal/service"
)

type registerReq struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Address   string `json:"address"`
	Age       int    `json:"age" binding:"gte=0"`
}

// @Summary Register client account
// @Tags accounts
// @Accept json
// @Produce json
// @Param input body registerReq true "Account"
// @Success 201 {object} service.AccountView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /accounts [post]
func (s *Server) register(c *gin.Context) {
	var req registerReq
	if !bindJSON(c, &req) {
		return
	}
	info := domain.NewPersonalInfo(req.LastName, req.FirstName, req.Address, req.Age)
	if err := s.clients.Register(c, req.Email, req.Password, &info); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service.AccountView{Email: req.Email, Info: info})
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResp struct {
	Token string `json:"token"`
}

// @Summary Client login
// @Tags sessions
// @Accept json
// @Produce json
// @Param input body loginReq true "Credentials"
// @Success 201 {object} tokenResp
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /sessions [post]
func (s *Server) login(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}
	token, err := s.clients.Login(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tokenResp{Token: token})
}

// @Summary Logout
// @Tags sessions
// @Param X-Session-Token header string true "Session token"
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /sessions [delete]
func (s *Server) logout(c *gin.Context) {
	if err := s.clients.Logout(sessionToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Current account
// @Tags accounts
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} service.AccountView
// @Failure 401 {object} map[string]string
// @Router /me [get]
func (s *Server) me(c *gin.Context) {
	view, err := s.clients.Me(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Order history
// @Tags orders
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.OrderView
// @Router /me/orders [get]
func (s *Server) pastOrders(c *gin.Context) {
	list, err := s.clients.PastOrders(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Validated orders awaiting the pizzaiolo
// @Tags orders
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.OrderView
// @Router /me/orders/pending [get]
func (s *Server) pendingOrders(c *gin.Context) {
	list, err := s.clients.PendingOrders(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Cancel order
// @Tags orders
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param id path string true "Order ID"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /me/orders/{id}/cancel [post]
func (s *Server) cancelOrder(c *gin.Context) {
	o, err := s.clients.CancelOrder(c, sessionToken(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary List pizzas
// @Tags pizzas
// @Produce json
// @Success 200 {array} service.PizzaView
// @Router /pizzas [get]
func (s *Server) listPizzas(c *gin.Context) {
	c.JSON(http.StatusOK, s.clients.Pizzas(c))
}

// @Summary Get pizza by name
// @Tags pizzas
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} service.PizzaView
// @Failure 404 {object} map[string]string
// @Router /pizzas/{name} [get]
func (s *Server) getPizza(c *gin.Context) {
	p, err := s.clients.Pizza(c, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type evaluationsResp struct {
	Average     float64                  `json:"average"`
	Evaluations []service.EvaluationView `json:"evaluations"`
}

// @Summary Pizza evaluations
// @Tags pizzas
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} evaluationsResp
// @Failure 404 {object} map[string]string
// @Router /pizzas/{name}/evaluations [get]
func (s *Server) listEvaluations(c *gin.Context) {
	name := c.Param("name")
	evals, err := s.clients.Evaluations(c, name)
	if err != nil {
		respondError(c, err)
		return
	}
	avg, err := s.clients.AverageRating(c, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, evaluationsResp{Average: avg, Evaluations: evals})
}

type evaluationReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// @Summary Evaluate pizza
// @Description rating is clamped to [0,5]
// @Tags pizzas
// @Accept json
// @Param X-Session-Token header string true "Session token"
// @Param name path string true "Pizza name"
// @Param input body evaluationReq true "Evaluation"
// @Success 201
// @Failure 404 {object} map[string]string
// @Router /pizzas/{name}/evaluations [post]
func (s *Server) addEvaluation(c *gin.Context) {
	var req evaluationReq
	if !bindJSON(c, &req) {
		return
	}
	if err := s.clients.AddEvaluation(c, sessionToken(c), c.Param("name"), req.Rating, req.Comment); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// @Summary Begin new order
// @Tags cart
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 201 {object} service.OrderView
// @Router /cart [post]
func (s *Server) beginOrder(c *gin.Context) {
	o, err := s.clients.BeginOrder(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// @Summary Current order
// @Tags cart
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} map[string]string
// @Router /cart [get]
func (s *Server) activeOrder(c *gin.Context) {
	o, err := s.clients.ActiveOrder(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type orderLineReq struct {
	Pizza    string `json:"pizza" binding:"required"`
	Quantity int    `json:"quantity"`
}

type orderLineResp struct {
	Added bool              `json:"added"`
	Order service.OrderView `json:"order"`
}

// @Summary Add pizzas to current order
// @Description unknown pizza or non-positive quantity leaves the order unchanged (added=false)
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param input body orderLineReq true "Line"
// @Success 200 {object} orderLineResp
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/lines [post]
func (s *Server) addToOrder(c *gin.Context) {
	var req orderLineReq
	if !bindJSON(c, &req) {
		return
	}
	token := sessionToken(c)
	added, err := s.clients.AddToOrder(c, token, req.Pizza, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	o, err := s.clients.ActiveOrder(c, token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderLineResp{Added: added, Order: o})
}

type validateResp struct {
	Validated bool              `json:"validated"`
	Order     service.OrderView `json:"order"`
}

// @Summary Validate current order
// @Description an empty cart is not validated (validated=false)
// @Tags cart
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} validateResp
// @Failure 404 {object} map[string]string
// @Router /cart/validate [post]
func (s *Server) validateOrder(c *gin.Context) {
	o, ok, err := s.clients.ValidateOrder(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, validateResp{Validated: ok, Order: o})
}

// @Summary Cancel current order
// @Tags cart
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} service.OrderView
// @Failure 404 {object} map[string]string
// @Router /cart [delete]
func (s *Server) cancelActiveOrder(c *gin.Context) {
	o, err := s.clients.CancelOrder(c, sessionToken(c), "")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Current filters
// @Tags filters
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {object} service.FilterView
// @Router /filters [get]
func (s *Server) getFilters(c *gin.Context) {
	f, err := s.clients.Filters(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

type filtersReq struct {
	MaxPrice    *float64 `json:"max_price" binding:"omitempty,gte=0"`
	Type        *string  `json:"type"`
	Ingredients []string `json:"ingredients"`
}

// @Summary Replace filters
// @Description absent fields are left unchanged; ingredients match inclusively
// @Tags filters
// @Accept json
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param input body filtersReq true "Filters"
// @Success 200 {object} service.FilterView
// @Failure 400 {object} map[string]string
// @Router /filters [put]
func (s *Server) setFilters(c *gin.Context) {
	var req filtersReq
	if !bindJSON(c, &req) {
		return
	}
	u := service.FilterUpdate{MaxPrice: req.MaxPrice, Ingredients: req.Ingredients}
	if req.Type != nil {
		kind := domain.PizzaType(*req.Type)
		u.Type = &kind
	}
	f, err := s.clients.UpdateFilters(sessionToken(c), u)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// @Summary Clear filters
// @Tags filters
// @Param X-Session-Token header string true "Session token"
// @Success 204
// @Router /filters [delete]
func (s *Server) clearFilters(c *gin.Context) {
	if err := s.clients.ClearFilters(sessionToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pizzas matching current filters
// @Tags filters
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Success 200 {array} service.PizzaView
// @Router /filters/pizzas [get]
func (s *Server) filteredPizzas(c *gin.Context) {
	list, err := s.clients.SelectFiltered(c, sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
