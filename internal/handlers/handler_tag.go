package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tagHandler serves one tag kind (locations or departments).
type tagHandler struct {
	kind       domain.TagKind
	tagService portssvc.TagSvcFacade
}

// RegisterTagRoutes registers /locations and /departments.
func RegisterTagRoutes(rg *gin.RouterGroup, tagService portssvc.TagSvcFacade) {
	for path, kind := range map[string]domain.TagKind{
		"/locations":   domain.TagLocation,
		"/departments": domain.TagDepartment,
	} {
		h := &tagHandler{kind: kind, tagService: tagService}
		g := rg.Group(path)
		g.GET("", h.listTags)
		g.POST("", h.createTag)
		g.PUT("/:id", h.updateTag)
		g.DELETE("/:id", h.deleteTag)
	}
}

// listTags godoc
// @Summary List locations or departments
// @Tags tags
// @Produce json
// @Success 200 {object} dto.ListTagsResponse
// @Security BearerAuth
// @Router /locations [get]
// @Router /departments [get]
func (h *tagHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))

	tags, err := h.tagService.ListTags(c.Request.Context(), h.kind)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list "+string(h.kind)+"s")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTagsResponse(tags))
}

// createTag godoc
// @Summary Create a location or department
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body dto.CreateTagRequest true "Tag name"
// @Success 201 {object} dto.TagResponse
// @Failure 409 {object} ErrorResponse "Name already used"
// @Security BearerAuth
// @Router /locations [post]
// @Router /departments [post]
func (h *tagHandler) createTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)))
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "CreateTag", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create "+string(h.kind))
		return
	}
	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

// updateTag godoc
// @Summary Rename a location or department
// @Tags tags
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param tag body dto.UpdateTagRequest true "New name and version last read"
// @Success 200 {object} dto.TagResponse
// @Failure 409 {object} ErrorResponse "Stale version or name already used"
// @Security BearerAuth
// @Router /locations/{id} [put]
// @Router /departments/{id} [put]
func (h *tagHandler) updateTag(c *gin.Context) {
	tagID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)), slog.String("tag_id", tagID))
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, "UpdateTag", err)
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	tag, err := h.tagService.UpdateTag(c.Request.Context(), h.kind, tagID, req, userID)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

// deleteTag godoc
// @Summary Delete a location or department
// @Tags tags
// @Param id path string true "Tag ID"
// @Param version query int true "Version last read"
// @Success 204
// @Failure 409 {object} ErrorResponse "Stale version"
// @Security BearerAuth
// @Router /locations/{id} [delete]
// @Router /departments/{id} [delete]
func (h *tagHandler) deleteTag(c *gin.Context) {
	tagID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("kind", string(h.kind)), slog.String("tag_id", tagID))
	var params dto.DeleteTagParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, "DeleteTag query", err)
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), h.kind, tagID, params.Version); err != nil {
		writeServiceError(c, logger, err, "Failed to delete "+string(h.kind))
		return
	}
	c.Status(http.StatusNoContent)
}
