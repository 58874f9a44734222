package handler

import (
	"net/http"
	"strconv"

	"github.com/4supreme/business-application/internal/apierror"
	"github.com/4supreme/business-application/internal/dto"
	"github.com/4supreme/business-application/internal/service"

	"github.com/gin-gonic/gin"
)

type DocumentsHandler struct{ svc service.DocumentService }

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// Create godoc
// @Summary Create a draft purchase or sale document
// @Tags documents
// @Accept json
// @Produce json
// @Param body body dto.CreateDocumentRequest true "Document data"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/documents [post]
func (h *DocumentsHandler) Create(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List documents with their lines
// @Tags documents
// @Produce json
// @Param type query string false "purchase | sale"
// @Param status query string false "draft | posted | canceled"
// @Success 200 {object} dto.DocumentListResponse
// @Router /v1/documents [get]
func (h *DocumentsHandler) List(c *gin.Context) {
	var filter dto.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a document with its lines
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/documents/{id} [get]
func (h *DocumentsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Post godoc
// @Summary Post a document: apply stock/cost effects and assign its number
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/documents/{id}/post [post]
func (h *DocumentsHandler) Post(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Post(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Unpost godoc
// @Summary Unpost a document: reverse its effects and return it to draft
// @Tags documents
// @Produce json
// @Param id path int true "Document id"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/documents/{id}/unpost [post]
func (h *DocumentsHandler) Unpost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Unpost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a draft document (lines removed by cascade)
// @Tags documents
// @Param id path int true "Document id"
// @Success 204
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/documents/{id} [delete]
func (h *DocumentsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecentVendors godoc
// @Summary Partners of the latest purchase documents, most recent first
// @Tags vendors
// @Produce json
// @Success 200 {array} string
// @Router /v1/vendors/recent [get]
func (h *DocumentsHandler) RecentVendors(c *gin.Context) {
	resp, err := h.svc.RecentVendors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendorHistory godoc
// @Summary Purchase history for one vendor
// @Tags vendors
// @Produce json
// @Param vendor query string true "Vendor name"
// @Param limit query int false "Row limit (default 30)"
// @Success 200 {array} dto.VendorHistoryRow
// @Failure 400 {object} apierror.APIError
// @Router /v1/vendors/history [get]
func (h *DocumentsHandler) VendorHistory(c *gin.Context) {
	vendor := c.Query("vendor")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	resp, err := h.svc.VendorHistory(c.Request.Context(), vendor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
