package http

import (
	"net/http"
	"strconv"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/validate"
	"github.com/labstack/echo/v4"
)

type LessonHandler struct {
	lessonUseCase domain.LessonUseCase
	videoResolver domain.VideoResolver
	validator     validate.Validator
}

func NewLessonHandler(
	LessonUseCase domain.LessonUseCase,
	VideoResolver domain.VideoResolver,
	Validator validate.Validator,
) *LessonHandler {
	handler := &LessonHandler{LessonUseCase, VideoResolver, Validator}
	return handler
}

// HandleGetPhases list every course phase with completion stats
func (lh *LessonHandler) HandleGetPhases(c echo.Context) (err error) {
	overview, err := lh.lessonUseCase.GetPhaseOverview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// HandleGetPhaseLessons list a phase's lessons merged with progress
func (lh *LessonHandler) HandleGetPhaseLessons(c echo.Context) (err error) {
	number, err := intParam(c, "number")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("number", "number must be a positive integer"),
		}))
	}

	lessons, err := lh.lessonUseCase.GetPhaseLessons(c.Request().Context(), number)
	if err == domain.ErrNoSuchPhase {
		return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lessons)
}

// HandleGetLesson a single lesson with progress and criteria
func (lh *LessonHandler) HandleGetLesson(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	detail, err := lh.lessonUseCase.GetLessonDetail(c.Request().Context(), id)
	if err == domain.ErrNoSuchLesson {
		return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// HandleGetLessonVideo resolve the lesson's video candidates
func (lh *LessonHandler) HandleGetLessonVideo(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	detail, err := lh.lessonUseCase.GetLessonDetail(c.Request().Context(), id)
	if err == domain.ErrNoSuchLesson {
		return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
	}
	if err != nil {
		return err
	}

	candidates := lh.videoResolver.Resolve(c.Request().Context(), id, detail.Title)
	return c.JSON(http.StatusOK, candidates)
}

// VideoMappingDTO curated lesson to video pin
type VideoMappingDTO struct {
	VideoID string `json:"videoId" validate:"required,min=8,max=16"`
}

// HandleSetVideoMapping pin a curated video to a lesson
func (lh *LessonHandler) HandleSetVideoMapping(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	dto := new(VideoMappingDTO)
	if err := c.Bind(dto); err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, "Failed to parse request body"))
	}
	if errs := lh.validator.Struct(dto); errs != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate request body", errs))
	}

	if _, err := lh.lessonUseCase.GetLessonDetail(c.Request().Context(), id); err == domain.ErrNoSuchLesson {
		return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
	} else if err != nil {
		return err
	}

	if err := lh.videoResolver.SetMapping(id, dto.VideoID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func intParam(c echo.Context, name string) (int, error) {
	return parsePositiveInt(c.Param(name))
}

func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, strconv.ErrRange
	}
	return value, nil
}
