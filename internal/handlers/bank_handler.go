package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bank-service/internal/services"
)

// BankHandler is the JSON adapter over BankService.
type BankHandler struct {
	Service *services.BankService
}

func NewBankHandler(service *services.BankService) *BankHandler {
	return &BankHandler{Service: service}
}

type CreateBankRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UpdateBankRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// bankID parses the :id segment. A non-integer id is a 404, not a 400:
// such a path simply names no resource.
func bankID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
		return 0, false
	}
	return id, true
}

func (h *BankHandler) ListBanks(c *gin.Context) {
	banks, err := h.Service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *BankHandler) GetBank(c *gin.Context) {
	id, ok := bankID(c)
	if !ok {
		return
	}

	bank, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) CreateBank(c *gin.Context) {
	var req CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'name' and 'location' are required."})
		return
	}

	bank, err := h.Service.Create(services.CreateBankDTO{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) || errors.Is(err, services.ErrLocationRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both 'name' and 'location' are required."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bank)
}

func (h *BankHandler) UpdateBank(c *gin.Context) {
	id, ok := bankID(c)
	if !ok {
		return
	}

	var req UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	bank, err := h.Service.Update(id, services.BankPatch{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBankNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrLocationRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) DeleteBank(c *gin.Context) {
	id, ok := bankID(c)
	if !ok {
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bank deleted"})
}
