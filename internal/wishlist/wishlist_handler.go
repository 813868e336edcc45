package wishlist

import (
	"net/http"

	"qaleb-store/internal/pkg/apperror"
	"qaleb-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Toggle(c.Request.Context(), userID, c.Param("templateId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListIDs(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.ListIDs(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ListItems(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.ListItems(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
