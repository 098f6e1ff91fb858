package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"bank-service/internal/services"
)

// WebHandler is the server-rendered adapter over BankService: form-encoded
// requests in, redirects and flash messages out.
type WebHandler struct {
	Service *services.BankService
}

func NewWebHandler(service *services.BankService) *WebHandler {
	return &WebHandler{Service: service}
}

type flashMessage struct {
	Category string
	Message  string
}

func flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	session.Save()
}

// takeFlashes drains pending flash messages. Reading flashes marks them
// consumed; the Save persists that so each shows exactly once.
func takeFlashes(c *gin.Context) []flashMessage {
	session := sessions.Default(c)
	var messages []flashMessage
	for _, category := range []string{"success", "error"} {
		for _, value := range session.Flashes(category) {
			if msg, ok := value.(string); ok {
				messages = append(messages, flashMessage{Category: category, Message: msg})
			}
		}
	}
	session.Save()
	return messages
}

func (h *WebHandler) notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

// Index redirects the home page to the bank listing.
func (h *WebHandler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/banks")
}

func (h *WebHandler) ListBanks(c *gin.Context) {
	banks, err := h.Service.List()
	if err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "banks_list.html", gin.H{
		"banks":   banks,
		"flashes": takeFlashes(c),
	})
}

func (h *WebHandler) BankDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFoundPage(c)
		return
	}

	bank, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			h.notFoundPage(c)
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "bank_detail.html", gin.H{
		"bank":    bank,
		"flashes": takeFlashes(c),
	})
}

func (h *WebHandler) NewBankForm(c *gin.Context) {
	c.HTML(http.StatusOK, "bank_form.html", gin.H{
		"flashes": takeFlashes(c),
	})
}

func (h *WebHandler) CreateBank(c *gin.Context) {
	name := c.PostForm("name")
	location := c.PostForm("location")

	_, err := h.Service.Create(services.CreateBankDTO{
		Name:     name,
		Location: location,
	})
	if err != nil {
		if errors.Is(err, services.ErrNameRequired) || errors.Is(err, services.ErrLocationRequired) {
			flash(c, "error", "Name and location are required.")
			c.Redirect(http.StatusFound, "/banks/new")
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	flash(c, "success", "Bank created successfully!")
	c.Redirect(http.StatusFound, "/banks")
}

func (h *WebHandler) EditBankForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFoundPage(c)
		return
	}

	bank, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			h.notFoundPage(c)
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "bank_edit.html", gin.H{
		"bank":    bank,
		"flashes": takeFlashes(c),
	})
}

// UpdateBank handles the edit form post. Unlike the API, the form always
// submits both fields, so both are required here.
func (h *WebHandler) UpdateBank(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFoundPage(c)
		return
	}

	if _, err := h.Service.Get(id); err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			h.notFoundPage(c)
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	name := c.PostForm("name")
	location := c.PostForm("location")
	if name == "" || location == "" {
		flash(c, "error", "Name and location are required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/banks/%d/edit", id))
		return
	}

	if _, err := h.Service.Update(id, services.BankPatch{
		Name:     &name,
		Location: &location,
	}); err != nil {
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	flash(c, "success", "Bank updated successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/banks/%d", id))
}

func (h *WebHandler) DeleteBank(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.notFoundPage(c)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrBankNotFound) {
			h.notFoundPage(c)
			return
		}
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	flash(c, "success", "Bank deleted successfully!")
	c.Redirect(http.StatusFound, "/banks")
}
