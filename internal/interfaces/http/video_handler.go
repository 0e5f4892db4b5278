package http

import (
	"net/http"
	"strconv"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/logging"
	"github.com/barbian-academy/backend/internal/infrastructure/validate"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VideoHandler struct {
	searcher   domain.VideoSearcher
	maxResults int
	validator  validate.Validator
}

func NewVideoHandler(
	Searcher domain.VideoSearcher,
	MaxResults int,
	Validator validate.Validator,
) *VideoHandler {
	handler := &VideoHandler{Searcher, MaxResults, Validator}
	return handler
}

// HandleSearch proxy a free text query to the video search upstream.
// Upstream failures map to an empty result with an error field, the
// response status stays 200
func (vh *VideoHandler) HandleSearch(c echo.Context) (err error) {
	query := c.QueryParam("q")
	if errs := vh.validator.Empty("q", query); errs != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", errs))
	}

	max := vh.maxResults
	if raw := c.QueryParam("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 10 {
			return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
				validate.NewFieldError("max", "max must be an integer between 1 and 10"),
			}))
		}
		max = parsed
	}

	if vh.searcher == nil {
		return c.JSON(http.StatusOK, &domain.SearchResult{
			Videos: []*domain.VideoCandidate{},
			Error:  "video search is not configured",
		})
	}

	result, err := vh.searcher.Search(c.Request().Context(), query, max)
	if err != nil {
		logger := logging.ExtractLoggerFromContext(c.Request().Context())
		logger.Warn("Video search failed", zap.String("search.query", query), zap.Error(err))
		return c.JSON(http.StatusOK, &domain.SearchResult{
			Videos: []*domain.VideoCandidate{},
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, result)
}
