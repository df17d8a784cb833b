package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pattern_lab/internal/payment"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"patterns": s.registry.Names()})
}

func (s *Server) handleDemo(c *gin.Context) {
	name := c.Param("name")
	scenario, ok := s.registry.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "unknown pattern: " + name,
			"available": s.registry.Names(),
		})
		return
	}
	c.JSON(http.StatusOK, scenario.Demo(c.Request.Context()))
}

func (s *Server) handleTest(c *gin.Context) {
	name := c.Param("name")
	scenario, ok := s.registry.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "unknown pattern: " + name,
			"available": s.registry.Names(),
		})
		return
	}
	c.JSON(http.StatusOK, scenario.Test(c.Request.Context()))
}

// processPaymentRequest is the POST body for the resolver endpoint.
type processPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency" binding:"required"`
	ProviderKey   string  `json:"providerKey" binding:"required"`
	CustomerEmail string  `json:"customerEmail"`
}

func (s *Server) handleProcessPayment(c *gin.Context) {
	var req processPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment payload: " + err.Error()})
		return
	}

	receipt, err := s.payments.ProcessPayment(c.Request.Context(), req.ProviderKey, payment.Request{
		Amount:        decimal.NewFromFloat(req.Amount),
		Currency:      req.Currency,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, payment.ErrProviderNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

func (s *Server) handleProviders(c *gin.Context) {
	type providerView struct {
		Key        string          `json:"key"`
		Name       string          `json:"name"`
		MinAmount  decimal.Decimal `json:"min_amount"`
		Currencies []string        `json:"currencies"`
	}

	var out []providerView
	for _, p := range s.payments.Providers() {
		out = append(out, providerView{
			Key:        p.Key(),
			Name:       p.DisplayName(),
			MinAmount:  p.MinAmount(),
			Currencies: p.SupportedCurrencies(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"providers": out})
}
