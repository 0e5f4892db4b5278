package infra

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix env prefix for viper
const EnvPrefix = "BARBAPP"

// EnvDevelopment development runtime environment
const EnvDevelopment = "development"

// EnvProduction production runtime environment
const EnvProduction = "production"

// AppConfig App option object
type AppConfig struct {
	AppID          string        `mapstructure:"app_id" json:"app_id" yaml:"app_id" validate:"required"`            // Application ID
	Host           string        `mapstructure:"host" json:"host" yaml:"host"`                                      // bind host address
	Port           int           `mapstructure:"port" json:"port" yaml:"port"`                                      // bind listen port
	Env            string        `mapstructure:"env" json:"env" yaml:"env" validate:"oneof=development production"` // runtime environment
	RequestTimeout time.Duration `mapstructure:"request_timeout" json:"request_timeout" yaml:"request_timeout"`
	Database       struct {
		Driver   string `mapstructure:"driver" json:"driver" yaml:"driver" validate:"required"`                      // driver name
		Host     string `mapstructure:"host" json:"host" yaml:"host" validate:"required"`                            // server host
		MaxConn  int32  `mapstructure:"maxconn" json:"maxconn" yaml:"maxconn" validate:"min=100"`                    // maximum opening connections number
		Password string `mapstructure:"password" json:"password" yaml:"password" validate:"required"`                // db password
		Port     int    `mapstructure:"port" json:"port" yaml:"port"`                                                // server port
		Protocol string `mapstructure:"protocol" json:"protocol" yaml:"protocol" validate:"omitempty,oneof=tcp udp"` // connection protocol, eg.tcp
		Query    string `mapstructure:"query" json:"query" yaml:"query"`                                             // DSN query parameter
		Schema   string `mapstructure:"schema" json:"schema" yaml:"schema" validate:"required"`                      // use schema
		User     string `mapstructure:"username" json:"username" yaml:"username" validate:"required"`                // db username
	} `mapstructure:"database" json:"database" yaml:"database"`
	Logging struct {
		FilePath string `mapstructure:"file_path" json:"file_path" yaml:"file_path"`                            // log file path
		Level    string `mapstructure:"level" json:"level" yaml:"level" validate:"oneof=debug info warn error"` // global logging level
	} `mapstructure:"logging" json:"logging" yaml:"logging"`
	KVStore struct {
		Host     string `mapstructure:"host" json:"host" yaml:"host"`                                 // bind host address
		Port     int    `mapstructure:"port" json:"port" yaml:"port"`                                 // bind listen port
		Password string `mapstructure:"password" json:"password" yaml:"password" validate:"required"` // password for security reasons
	} `mapstructure:"kv" json:"kv" yaml:"kv"`
	YouTube struct {
		APIKey     string        `mapstructure:"api_key" json:"api_key" yaml:"api_key"`                      // YouTube Data API key, search tier is skipped if empty
		BaseURL    string        `mapstructure:"base_url" json:"base_url" yaml:"base_url"`                   // API base URL, override in tests
		MaxResults int           `mapstructure:"max_results" json:"max_results" yaml:"max_results" validate:"min=1,max=10"` // candidates returned per search
		Timeout    time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`                      // per request timeout
	} `mapstructure:"youtube" json:"youtube" yaml:"youtube"`
	Course struct {
		CompletionThreshold float64 `mapstructure:"completion_threshold" json:"completion_threshold" yaml:"completion_threshold" validate:"min=1,max=100"` // watch percentage marking a video as seen
		OverrideXPPercent   int     `mapstructure:"override_xp_percent" json:"override_xp_percent" yaml:"override_xp_percent" validate:"min=0,max=100"`    // XP share awarded on completion without video
		ProgressKey         string  `mapstructure:"progress_key" json:"progress_key" yaml:"progress_key" validate:"required"`                              // KV key holding the progress record set
		VideoMapKey         string  `mapstructure:"video_map_key" json:"video_map_key" yaml:"video_map_key" validate:"required"`                           // KV key holding the curated lesson video map
	} `mapstructure:"course" json:"course" yaml:"course"`
	Playback struct {
		PollInterval time.Duration `mapstructure:"poll_interval" json:"poll_interval" yaml:"poll_interval"` // progress poll period while playing
	} `mapstructure:"playback" json:"playback" yaml:"playback"`
	DevOP struct {
		APM bool `mapstructure:"apm" json:"apm" yaml:"apm"`
	} `mapstructure:"devop" json:"devop" yaml:"devop"`
}

// InitConfig init app config using viper
func InitConfig() (*AppConfig, error) {
	// app
	pflag.String("host", "", "binding address")
	pflag.String("app_id", "", "application identifier (required)")
	pflag.String("env", "development", "runtime environment, can be 'development' or 'production'")
	pflag.Int("port", 8081, "listening port")
	pflag.Duration("request_timeout", 30*time.Second, "abort requests running longer than this")

	// database
	pflag.String("database.driver", "mysql", "database driver to use")
	pflag.String("database.host", "127.0.0.1", "database host")
	pflag.Int("database.port", 3306, "database server port")
	pflag.String("database.protocol", "", "connection protocol(if mysql is used, this flag must be set), eg.tcp")
	pflag.String("database.username", "", "database username (required)")
	pflag.String("database.password", "", "database password (required)")
	pflag.String("database.schema", "", "database schema (required)")
	pflag.String("database.query", "", `additional DSN query parameters('?' is auto prefixed), if you work with mysql and wish to
work with time.Time, you may specify "parseTime=true"`)
	pflag.Int32("database.maxconn", 200, `max connection count, if you encounter a "too many connections" error, please consider
increasing the max_connection value of your db server, or lower this value`)

	// logging
	pflag.String("logging.level", "info", "logging level")
	pflag.String("logging.file_path", "", "log to file")

	// kv storage
	pflag.String("kv.host", "127.0.0.1", "kv host")
	pflag.Int("kv.port", 6379, "kv server port")
	pflag.String("kv.password", "", "kv server password (required)")

	// youtube search proxy
	pflag.String("youtube.api_key", "", "YouTube Data API key, the remote search tier is disabled if empty")
	pflag.String("youtube.base_url", "https://www.googleapis.com/youtube/v3", "YouTube Data API base URL")
	pflag.Int("youtube.max_results", 3, "videos returned per lesson search")
	pflag.Duration("youtube.timeout", 5*time.Second, "upstream search timeout")

	// course rules
	pflag.Float64("course.completion_threshold", 90, "watch percentage required to count a video as seen")
	pflag.Int("course.override_xp_percent", 100, "XP share awarded when completing a lesson without video")
	pflag.String("course.progress_key", "lessonProgresses", "KV key storing the serialized progress record set")
	pflag.String("course.video_map_key", "lessonVideoMap", "KV key storing the curated lesson-to-video map")

	// playback
	pflag.Duration("playback.poll_interval", time.Second, "playback progress poll period")

	// DevOp
	pflag.Bool("devop.apm", false, "enable apm metrics")

	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config = new(AppConfig)
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	if config.Logging.Level == "debug" {
		if configJSON, err := json.MarshalIndent(config, "", "  "); err == nil {
			log.Printf("App config: %s\n", string(configJSON))
		}
	}
	return config, nil
}

func validateConfig(config *AppConfig) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "-" || name == "" {
			name = fld.Tag.Get("yaml")
			if name == "-" || name == "" {
				return ""
			}
		}
		return name
	})
	err := validate.Struct(config)
	if _, ok := err.(*validator.InvalidValidationError); ok {
		log.Fatalf("Failed to validate config: %s", err)
	}
	if err == nil {
		return nil
	}

	var msg []string
	for _, field := range err.(validator.ValidationErrors) {
		namespace := field.Namespace()
		fieldName := namespace[strings.IndexByte(namespace, '.')+1:] // trim top level namespace
		switch field.Tag() {
		case "required":
			msg = append(msg, fmt.Sprintf("%s is required", fieldName))
		case "oneof":
			msg = append(msg, fmt.Sprintf("%s must be one of (%s)", fieldName, field.Param()))
		case "min", "max":
			msg = append(msg, fmt.Sprintf("%s is out of range (%s=%s)", fieldName, field.Tag(), field.Param()))
		}
	}
	if len(msg) > 0 {
		return fmt.Errorf("failed to validate config: \n%s", strings.Join(msg, "\n"))
	}
	return nil
}
