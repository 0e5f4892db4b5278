package http

import (
	infra "github.com/barbian-academy/backend/internal/infrastructure"
	"github.com/labstack/echo/v4"
)

func v1Endpoint(
	websocket *infra.Websocket,
	LessonHandler *LessonHandler,
	ProgressHandler *ProgressHandler,
	VideoHandler *VideoHandler,
	PlaybackHandler *PlaybackHandler,
	requestIDMiddleware echo.MiddlewareFunc,
	traceLoggerMiddleware echo.MiddlewareFunc,
) *endpoint {
	return &endpoint{
		apiVersion:  "api/v1",
		middlewares: []echo.MiddlewareFunc{requestIDMiddleware, traceLoggerMiddleware},
		groups: []*apiGroup{
			{
				prefix: "/phase",
				routes: []*route{
					{"GET", "", LessonHandler.HandleGetPhases, nil},
					{"GET", "/:number/lessons", LessonHandler.HandleGetPhaseLessons, nil},
				},
			},
			{
				prefix: "/lesson",
				routes: []*route{
					{"GET", "/:id", LessonHandler.HandleGetLesson, nil},
					{"GET", "/:id/video", LessonHandler.HandleGetLessonVideo, nil},
					{"POST", "/:id/video-mapping", LessonHandler.HandleSetVideoMapping, nil},
				},
			},
			{
				prefix: "/video",
				routes: []*route{
					{"GET", "/search", VideoHandler.HandleSearch, nil},
				},
			},
			{
				prefix: "/progress",
				routes: []*route{
					{"GET", "", ProgressHandler.HandleGetProgress, nil},
					{"GET", "/summary", ProgressHandler.HandleGetSummary, nil},
					{"PATCH", "/lesson/:id", ProgressHandler.HandlePatchProgress, nil},
					{"POST", "/lesson/:id/complete", ProgressHandler.HandleCompleteLesson, nil},
					{"DELETE", "/lesson/:id", ProgressHandler.HandleResetProgress, nil},
				},
			},
			{
				prefix: "/ws",
				routes: []*route{
					{"GET", "/playback", websocket.WithHeartbeat(PlaybackHandler.HandlePlayback), nil},
				},
			},
		},
	}
}
