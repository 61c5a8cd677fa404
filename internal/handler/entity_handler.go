package handler

import (
	"net/http"

	"sheetcrm/internal/model"
	"sheetcrm/internal/service"

	"github.com/gin-gonic/gin"
)

// EntityHandler serves create, read, update, delete and search for one entity
type EntityHandler[T any] struct {
	service service.EntityService[T]
	entity  string
}

// NewUserHandler creates a handler for /users
func NewUserHandler(s service.UserService) *EntityHandler[model.User] {
	return &EntityHandler[model.User]{service: s, entity: "User"}
}

// NewCustomerHandler creates a handler for /customers
func NewCustomerHandler(s service.CustomerService) *EntityHandler[model.Customer] {
	return &EntityHandler[model.Customer]{service: s, entity: "Customer"}
}

// NewProductHandler creates a handler for /products
func NewProductHandler(s service.ProductService) *EntityHandler[model.Product] {
	return &EntityHandler[model.Product]{service: s, entity: "Product"}
}

func (h *EntityHandler[T]) Create(c *gin.Context) {
	var req T
	if errs := bindStrict(c, &req); len(errs) > 0 {
		unprocessable(c, errs...)
		return
	}

	if err := h.service.Create(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " created successfully"})
}

func (h *EntityHandler[T]) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *EntityHandler[T]) Update(c *gin.Context) {
	var req T
	if errs := bindStrict(c, &req); len(errs) > 0 {
		unprocessable(c, errs...)
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " updated successfully"})
}

func (h *EntityHandler[T]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.entity + " deleted successfully"})
}

func (h *EntityHandler[T]) Search(c *gin.Context) {
	query, ok := c.GetQuery("query")
	if !ok {
		unprocessable(c, validationError{Loc: []string{"query", "query"}, Msg: "field required", Type: "value_error.missing"})
		return
	}

	matches, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// RegisterRoutes mounts the entity under prefix (e.g. "/users") and its search under /search{prefix}/
func (h *EntityHandler[T]) RegisterRoutes(r gin.IRouter, prefix string) {
	group := r.Group(prefix)
	{
		group.POST("/", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
	r.GET("/search"+prefix+"/", h.Search)
}
