package http

import (
	"encoding/json"
	"sync"

	"github.com/barbian-academy/backend/internal/domain"
	"github.com/barbian-academy/backend/internal/infrastructure/logging"
	"github.com/barbian-academy/backend/internal/playback"
	"github.com/barbian-academy/backend/internal/progress"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type PlaybackHandler struct {
	manager       *playback.Manager
	lessonUseCase domain.LessonUseCase
	videoResolver domain.VideoResolver
	store         domain.ProgressStore
}

func NewPlaybackHandler(
	Manager *playback.Manager,
	LessonUseCase domain.LessonUseCase,
	VideoResolver domain.VideoResolver,
	Store domain.ProgressStore,
) *PlaybackHandler {
	handler := &PlaybackHandler{Manager, LessonUseCase, VideoResolver, Store}
	return handler
}

// PlaybackAction client-to-server playback control
type PlaybackAction struct {
	Action   string  `json:"action"`
	Position float64 `json:"position"`
}

// PlaybackEvent server-to-client playback notification
type PlaybackEvent struct {
	Event    string                      `json:"event"`
	State    string                      `json:"state,omitempty"`
	Progress float64                     `json:"progress,omitempty"`
	Record   *domain.LessonProgressModel `json:"record,omitempty"`
	Message  string                      `json:"message,omitempty"`
}

// wsWriter serializes event writes, progress callbacks fire on the poll
// goroutine while replies go out on the read loop
type wsWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsWriter) send(event *PlaybackEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(event)
}

// HandlePlayback drive a playback session over a websocket. The client
// controls the session with play/pause/seek/restart/stop actions, the
// server streams state, progress and a one-shot completed event, and
// persists watch progress as it goes
func (ph *PlaybackHandler) HandlePlayback(c echo.Context, conn *websocket.Conn) error {
	ctx := c.Request().Context()
	logger := logging.ExtractLoggerFromContext(ctx)
	writer := &wsWriter{conn: conn}

	id, err := parsePositiveInt(c.QueryParam("lesson"))
	if err != nil {
		writer.send(&PlaybackEvent{Event: "error", Message: "lesson must be a positive integer"})
		return nil
	}

	detail, err := ph.lessonUseCase.GetLessonDetail(ctx, id)
	if err != nil {
		writer.send(&PlaybackEvent{Event: "error", Message: err.Error()})
		return nil
	}

	candidates := ph.videoResolver.Resolve(ctx, id, detail.Title)
	candidate := candidates[0]

	session, err := ph.manager.Attach(candidate, playback.SessionOptions{
		Threshold: progress.CriteriaFor(id).MinWatchPercentage,
		OnProgress: func(p float64) {
			if _, err := ph.store.Record(ctx, id, &domain.ProgressPatch{VideoProgress: &p}); err != nil {
				logger.Error("Failed to persist watch progress", zap.Int("lesson.id", id), zap.Error(err))
			}
			writer.send(&PlaybackEvent{Event: "progress", Progress: p})
		},
		OnComplete: func() {
			watched := true
			record, err := ph.store.Record(ctx, id, &domain.ProgressPatch{HasWatchedVideo: &watched})
			if err != nil {
				logger.Error("Failed to persist watched flag", zap.Int("lesson.id", id), zap.Error(err))
			}
			writer.send(&PlaybackEvent{Event: "completed", Record: record})
		},
	})
	if err != nil {
		// unplayable candidate, the client falls back to the text guide
		logger.Warn("Failed to attach playback session",
			zap.Int("lesson.id", id),
			zap.String("video.id", candidate.ID),
			zap.Error(err))
		writer.send(&PlaybackEvent{Event: "error", Message: "video unavailable for this lesson"})
		return nil
	}
	defer ph.manager.Release(session.ID())

	writer.send(&PlaybackEvent{Event: "state", State: session.State().String(), Progress: session.Progress()})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		action := new(PlaybackAction)
		if err := json.Unmarshal(payload, action); err != nil {
			writer.send(&PlaybackEvent{Event: "error", Message: "malformed action"})
			continue
		}

		switch action.Action {
		case "play":
			err = session.Play()
		case "pause":
			err = session.Pause()
		case "seek":
			err = session.Seek(action.Position)
		case "restart":
			err = session.Restart()
		case "stop":
			session.Close()
			writer.send(&PlaybackEvent{Event: "state", State: session.State().String(), Progress: session.Progress()})
			return nil
		default:
			writer.send(&PlaybackEvent{Event: "error", Message: "unknown action"})
			continue
		}
		if err != nil {
			writer.send(&PlaybackEvent{Event: "error", Message: err.Error()})
			continue
		}
		writer.send(&PlaybackEvent{Event: "state", State: session.State().String(), Progress: session.Progress()})
	}
}
