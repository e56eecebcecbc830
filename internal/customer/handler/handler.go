package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/internal/customer/service"
)

// RegisterCustomerRoutes mounts the customer API under /api/customers.
// Register answers with the whole collection, renew and upgradeDowngrade
// with the single updated customer.
func RegisterCustomerRoutes(r gin.IRouter, svc service.Service) {
	g := r.Group("/api/customers")

	g.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.POST("/new", func(c *gin.Context) {
		var req customer.Registration
		if !bind(c, &req) {
			return
		}
		list, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.POST("/renew/:id", func(c *gin.Context) {
		var req customer.Renewal
		if !bind(c, &req) {
			return
		}
		updated, err := svc.Renew(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})

	g.POST("/upgradeDowngrade/:id", func(c *gin.Context) {
		var req customer.PlanChange
		if !bind(c, &req) {
			return
		}
		updated, err := svc.ChangePlan(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	})
}

// bind decodes the JSON body into v. An empty body leaves v zeroed.
func bind(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return false
	}
	return true
}

func writeError(c *gin.Context, err error) {
	var ve *customer.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
	case errors.Is(err, customer.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": customer.ErrNotFound.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
