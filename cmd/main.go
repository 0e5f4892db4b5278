package main

import (
	"context"
	"log"

	"github.com/barbian-academy/backend/internal/domain"
	infra "github.com/barbian-academy/backend/internal/infrastructure"
	"github.com/barbian-academy/backend/internal/infrastructure/driver"
	"github.com/barbian-academy/backend/internal/infrastructure/logging"
	"github.com/barbian-academy/backend/internal/infrastructure/uuid"
	ihttp "github.com/barbian-academy/backend/internal/interfaces/http"
	"github.com/barbian-academy/backend/internal/lesson"
	"github.com/barbian-academy/backend/internal/playback"
	"github.com/barbian-academy/backend/internal/progress"
	"github.com/barbian-academy/backend/internal/video"
	"github.com/barbian-academy/backend/internal/video/youtube"
	"go.uber.org/zap"
)

const sessionIDLength = 12

func main() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.Ltime)
	option, err := infra.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.Config{
		FilePath: option.Logging.FilePath,
		Level:    option.Logging.Level,
		AppID:    option.AppID,
		Env:      option.Env,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %s\n", err)
	}
	logger = logger.With(
		zap.String("service.id", option.AppID),
	)
	defer logger.Sync()

	dbConn, err := driver.GetDBConnection(&driver.DBConfig{
		User:     option.Database.User,
		Password: option.Database.Password,
		MaxConn:  option.Database.MaxConn,
		Protocol: option.Database.Protocol,
		Driver:   option.Database.Driver,
		Host:     option.Database.Host,
		Port:     option.Database.Port,
		Query:    option.Database.Query,
		Schema:   option.Database.Schema,
	})
	if err != nil {
		log.Fatalf("Failed to create DB connection: %s\n", err)
	}
	logger.Debug("Create db connection instance", zap.String("db.driver", option.Database.Driver),
		zap.String("db.schema", option.Database.Schema),
		zap.String("db.host", option.Database.Host),
	)

	rdb := driver.NewRedisClient(option.KVStore.Host, option.KVStore.Port, option.KVStore.Password)

	LessonRepo := lesson.NewSQLRepository(dbConn)
	if err := LessonRepo.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("Failed to create lesson schema: %s\n", err)
	}
	if err := LessonRepo.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed lesson catalog: %s\n", err)
	}

	Store := progress.NewStore(rdb, &progress.StoreOption{
		StorageKey:          option.Course.ProgressKey,
		CompletionThreshold: option.Course.CompletionThreshold,
		OverrideXPPercent:   option.Course.OverrideXPPercent,
	}, logger)

	var searcher domain.VideoSearcher
	if option.YouTube.APIKey != "" {
		searcher = youtube.NewClient(option.YouTube.APIKey, option.YouTube.BaseURL, option.YouTube.Timeout, logger)
	} else {
		logger.Warn("No YouTube API key configured, remote video search is disabled")
	}

	overrides := video.NewOverrideTable(rdb, option.Course.VideoMapKey, logger)
	VideoResolver := video.NewResolver(overrides, searcher, option.YouTube.MaxResults, logger)

	PlaybackManager := playback.NewManager(option.Playback.PollInterval, option.Course.CompletionThreshold, uuid.NewNanoIDGenerator(sessionIDLength), logger)

	LessonUseCase := lesson.NewUseCase(LessonRepo, Store)

	ihttp.Serve(dbConn, rdb, option, LessonUseCase, VideoResolver, searcher, Store, PlaybackManager, logger)
}
