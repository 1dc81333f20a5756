package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"pizzeria/internal/repository"
	"pizzeria/internal/service"
)

// SessionHeader заголовок с токеном сессии
const SessionHeader = "X-Session-Token"

const tokenKey = "session_token"

type Server struct {
	engine   *gin.Engine
	clients  *service.ClientService
	operator *service.OperatorService
	logger   *zap.Logger
}

func NewServer(clients *service.ClientService, operator *service.OperatorService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(requestLogger(logger.Named("http")), gin.Recovery())
	s := &Server{engine: r, clients: clients, operator: operator, logger: logger}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/accounts", s.register)
		v1.POST("/sessions", s.login)
		v1.GET("/pizzas", s.listPizzas)
		v1.GET("/pizzas/:name", s.getPizza)
		v1.GET("/pizzas/:name/evaluations", s.listEvaluations)

		client := v1.Group("", requireSession())
		client.DELETE("/sessions", s.logout)
		client.GET("/me", s.me)
		client.GET("/me/orders", s.pastOrders)
		client.GET("/me/orders/pending", s.pendingOrders)
		client.POST("/me/orders/:id/cancel", s.cancelOrder)
		client.POST("/pizzas/:name/evaluations", s.addEvaluation)

		cart := client.Group("/cart")
		cart.POST("", s.beginOrder)
		cart.GET("", s.activeOrder)
		cart.POST("/lines", s.addToOrder)
		cart.POST("/validate", s.validateOrder)
		cart.DELETE("", s.cancelActiveOrder)

		filters := client.Group("/filters")
		filters.GET("", s.getFilters)
		filters.PUT("", s.setFilters)
		filters.DELETE("", s.clearFilters)
		filters.GET("/pizzas", s.filteredPizzas)

		op := v1.Group("/operator")
		op.POST("/sessions", s.operatorLogin)

		auth := op.Group("", requireSession(), s.requireOperator())
		auth.DELETE("/sessions", s.logout)

		auth.POST("/pizzas", s.createPizza)
		auth.POST("/pizzas/:name/ingredients", s.addPizzaIngredient)
		auth.DELETE("/pizzas/:name/ingredients/:ingredient", s.removePizzaIngredient)
		auth.GET("/pizzas/:name/conflicts", s.pizzaConflicts)
		auth.PUT("/pizzas/:name/price", s.setManualPrice)
		auth.DELETE("/pizzas/:name/price", s.clearManualPrice)
		auth.PUT("/pizzas/:name/name", s.renamePizza)
		auth.PUT("/pizzas/:name/photo", s.setPhoto)

		auth.POST("/ingredients", s.createIngredient)
		auth.GET("/ingredients", s.listIngredients)
		auth.PUT("/ingredients/:name/cost", s.changeIngredientCost)
		auth.POST("/ingredients/:name/restrictions", s.forbidIngredient)
		auth.DELETE("/ingredients/:name/restrictions/:type", s.permitIngredient)
		auth.DELETE("/ingredients/:name/restrictions", s.resetRestrictions)

		auth.POST("/orders/collect", s.collectOrders)
		auth.GET("/orders/fulfilled", s.fulfilledOrders)
		auth.GET("/clients", s.listClients)

		reports := auth.Group("/reports")
		reports.GET("/benefits", s.totalBenefit)
		reports.GET("/benefits/pizzas", s.benefitPerPizza)
		reports.GET("/benefits/orders/:id", s.orderBenefit)
		reports.GET("/clients", s.clientStats)
		reports.GET("/clients/:email", s.clientStat)
		reports.GET("/popularity", s.popularity)
		reports.GET("/pizzas/:name/sold", s.quantitySold)
	}
}

// requestLogger пишет одну строку на запрос
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(SessionHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotAuthenticated.Error()})
			return
		}
		c.Set(tokenKey, token)
		c.Next()
	}
}

func (s *Server) requireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.operator.Authorize(sessionToken(c)); err != nil {
			c.AbortWithStatusJSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// bindJSON отвечает 400 и возвращает false, если тело не разобрано
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
	return false
}

func respondError(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrMissingArgument),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrBlankName),
		errors.Is(err, service.ErrUnknownPizzaType),
		errors.Is(err, service.ErrInvalidPhoto),
		errors.Is(err, service.ErrNonPositiveCost):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotAuthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrNoActiveOrder):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrIngredientNotOnPizza):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
