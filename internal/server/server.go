package server

import (
	"context"
	"net/http"
	"time"

	"sheetcrm/internal/handler"
	"sheetcrm/internal/middleware"
	"sheetcrm/internal/repository"
	"sheetcrm/internal/service"
	"sheetcrm/internal/sheet"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Deps is everything the HTTP layer needs; the store is opened once by the caller
type Deps struct {
	Store      sheet.Store
	Worksheets repository.Worksheets
	Logger     *zap.Logger
	Registry   *prometheus.Registry
}

// NewRouter wires repositories, services and handlers onto a gin engine
func NewRouter(d Deps) *gin.Engine {
	handler.RegisterValidation()

	repos := repository.NewRepositories(d.Store, d.Worksheets)

	userHandler := handler.NewUserHandler(service.NewUserService(repos.Users))
	customerHandler := handler.NewCustomerHandler(service.NewCustomerService(repos.Customers))
	productHandler := handler.NewProductHandler(service.NewProductService(repos.Products))
	billHandler := handler.NewBillHandler(service.NewBillService(repos.Bills, repos.Products))

	metrics := middleware.NewHTTPMetrics(d.Registry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(d.Logger))
	router.Use(middleware.AccessLog())
	router.Use(metrics.Middleware())

	userHandler.RegisterRoutes(router, "/users")
	customerHandler.RegisterRoutes(router, "/customers")
	productHandler.RegisterRoutes(router, "/products")
	billHandler.RegisterBillRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if err := d.Store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "store": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "healthy"})
	})

	return router
}

// WithCORS allows browser clients from any origin
func WithCORS(h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           86400,
	}).Handler(h)
}
