package controllers

import (
	"log/slog"
	"net/http"

	"eventcollective/internal/delivery/http/helpers"
	"eventcollective/internal/domain"
)

// TagListSuccessResponse is the success response envelope for GET /tags (200).
type TagListSuccessResponse struct {
	Data  []*domain.Tag     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List all tags
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.TagListSuccessResponse "data contains tags"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tags [get]
func (c *TagController) List(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}
