package template

import (
	"mime/multipart"
	"net/http"

	"qaleb-store/internal/pkg/apperror"
	"qaleb-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

func (h *Handler) List(c *gin.Context) {
	var req ListTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "بيانات غير صالحة", err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	pag := response.NewPagination(req.Page, req.Limit, total)
	response.Success(c, http.StatusOK, items, &pag)
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), c.Param("templateId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "بيانات غير صالحة", err.Error())
		return
	}

	file, filename := openThumbnail(c)
	if file != nil {
		defer file.Close()
	}

	res, err := h.service.Create(c.Request.Context(), req, file, filename)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateTemplateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "بيانات غير صالحة", err.Error())
		return
	}

	file, filename := openThumbnail(c)
	if file != nil {
		defer file.Close()
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("templateId"), req, file, filename)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("templateId")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil, nil)
}

// openThumbnail pulls the optional multipart thumbnail; a missing file is
// not an error, the template just keeps its current image.
func openThumbnail(c *gin.Context) (multipart.File, string) {
	fileHeader, err := c.FormFile("thumbnail")
	if err != nil {
		return nil, ""
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, ""
	}

	return file, fileHeader.Filename
}
