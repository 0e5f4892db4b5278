package http

import (
	"net/http"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/validate"
	"github.com/barbian-academy/backend/internal/progress"
	"github.com/labstack/echo/v4"
)

type ProgressHandler struct {
	store         domain.ProgressStore
	lessonUseCase domain.LessonUseCase
	validator     validate.Validator
}

func NewProgressHandler(
	Store domain.ProgressStore,
	LessonUseCase domain.LessonUseCase,
	Validator validate.Validator,
) *ProgressHandler {
	handler := &ProgressHandler{Store, LessonUseCase, Validator}
	return handler
}

// HandleGetProgress every lesson progress record
func (ph *ProgressHandler) HandleGetProgress(c echo.Context) (err error) {
	return c.JSON(http.StatusOK, ph.store.All())
}

// ProgressSummaryDTO aggregate progress response
type ProgressSummaryDTO struct {
	TotalXP        int `json:"totalXp"`
	CompletedCount int `json:"completedCount"`
}

// HandleGetSummary aggregate stats across all lessons
func (ph *ProgressHandler) HandleGetSummary(c echo.Context) (err error) {
	return c.JSON(http.StatusOK, &ProgressSummaryDTO{
		TotalXP:        ph.store.TotalXP(),
		CompletedCount: ph.store.CompletedCount(),
	})
}

// ProgressPatchDTO partial progress update
type ProgressPatchDTO struct {
	VideoProgress   *float64 `json:"videoProgress" validate:"omitempty,min=0,max=100"`
	HasWatchedVideo *bool    `json:"hasWatchedVideo"`
}

// HandlePatchProgress merge a partial update into a lesson's record
func (ph *ProgressHandler) HandlePatchProgress(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	dto := new(ProgressPatchDTO)
	if err := c.Bind(dto); err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, "Failed to parse request body"))
	}
	if errs := ph.validator.Struct(dto); errs != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate request body", errs))
	}

	record, err := ph.store.Record(c.Request().Context(), id, &domain.ProgressPatch{
		VideoProgress:   dto.VideoProgress,
		HasWatchedVideo: dto.HasWatchedVideo,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// CompleteLessonDTO completion request, Force marks the lesson done
// without the watch requirement
type CompleteLessonDTO struct {
	Force bool `json:"force"`
}

// CompletionResponseDTO completed record joined with its reward
type CompletionResponseDTO struct {
	Progress *domain.LessonProgressModel `json:"progress"`
	Reward   *domain.CompletionReward    `json:"reward"`
}

// HandleCompleteLesson mark a lesson completed and return the earned reward
func (ph *ProgressHandler) HandleCompleteLesson(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	dto := new(CompleteLessonDTO)
	if err := c.Bind(dto); err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTStandardError(http.StatusBadRequest, "Failed to parse request body"))
	}

	detail, err := ph.lessonUseCase.GetLessonDetail(c.Request().Context(), id)
	if err == domain.ErrNoSuchLesson {
		return c.JSON(http.StatusNotFound, NewRESTStandardError(http.StatusNotFound, err.Error()))
	}
	if err != nil {
		return err
	}

	var record *domain.LessonProgressModel
	if dto.Force {
		record, err = ph.store.ForceComplete(c.Request().Context(), id)
	} else {
		record, err = ph.store.Complete(c.Request().Context(), id)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &CompletionResponseDTO{
		Progress: record,
		Reward:   progress.RewardFor(detail.LessonModel),
	})
}

// HandleResetProgress zero a lesson's record
func (ph *ProgressHandler) HandleResetProgress(c echo.Context) (err error) {
	id, err := intParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewRESTValidationError(http.StatusBadRequest, "Failed to validate params", []*validate.FieldError{
			validate.NewFieldError("id", "id must be a positive integer"),
		}))
	}

	record, err := ph.store.Reset(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}
