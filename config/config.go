package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"reflect"
	"strconv"
	"time"

	"restaurant-analytics/internal/domain"
	"restaurant-analytics/internal/store"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mitchellh/mapstructure"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourceS3       = "s3"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr    string        `mapstructure:"http_addr"`
	DataSource  string        `mapstructure:"data_source"`
	DataDir     string        `mapstructure:"data_dir"`
	SnapshotTTL time.Duration `mapstructure:"snapshot_ttl"`

	S3Bucket  string `mapstructure:"s3_bucket"`
	S3Prefix  string `mapstructure:"s3_prefix"`
	AWSRegion string `mapstructure:"aws_region"`

	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBName     string `mapstructure:"db_name"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`

	RedisHost string `mapstructure:"redis_host"`
	RedisPort string `mapstructure:"redis_port"`

	KafkaBroker       string `mapstructure:"kafka_broker"`
	KafkaRefreshTopic string `mapstructure:"kafka_refresh_topic"`
	KafkaGroupID      string `mapstructure:"kafka_group_id"`
}

var defaults = map[string]interface{}{
	"http_addr":           ":8080",
	"data_source":         SourceFile,
	"data_dir":            "data",
	"snapshot_ttl":        store.DefaultTTL.String(),
	"s3_bucket":           "",
	"s3_prefix":           "",
	"aws_region":          "us-east-1",
	"db_host":             "localhost",
	"db_port":             "5432",
	"db_name":             "restaurants",
	"db_user":             "postgres",
	"db_password":         "",
	"redis_host":          "",
	"redis_port":          "6379",
	"kafka_broker":        "",
	"kafka_refresh_topic": domain.RefreshTopic,
	"kafka_group_id":      "restaurant-analytics",
}

// Load reads .env (if present), the optional config file and the process
// environment, in increasing order of precedence over the defaults.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			secondsToDurationHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// secondsToDurationHookFunc accepts a bare number of seconds, e.g.
// SNAPSHOT_TTL=300, next to Go duration strings.
func secondsToDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		switch value := data.(type) {
		case string:
			if seconds, err := strconv.Atoi(value); err == nil {
				return time.Duration(seconds) * time.Second, nil
			}
		case int:
			return time.Duration(value) * time.Second, nil
		case int64:
			return time.Duration(value) * time.Second, nil
		}
		return data, nil
	}
}

func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceFile:
		if c.DataDir == "" {
			return errors.New("DATA_DIR is required for the file source")
		}
	case SourceS3:
		if c.S3Bucket == "" {
			return errors.New("S3_BUCKET is required for the s3 source")
		}
	case SourcePostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required for the postgres source")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	if c.SnapshotTTL <= 0 {
		return fmt.Errorf("SNAPSHOT_TTL must be positive, got %s", c.SnapshotTTL)
	}
	return nil
}

func (c *Config) RedisEnabled() bool { return c.RedisHost != "" }

func (c *Config) KafkaEnabled() bool { return c.KafkaBroker != "" }

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=disable"
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// KafkaReaderConfig joins a consumer group of its own, named after
// KAFKA_GROUP_ID plus a per-process suffix, so every replica receives every
// refresh message. A new group starts at the newest offset because older
// refreshes are already reflected in the first snapshot load.
func (c *Config) KafkaReaderConfig() kafka.ReaderConfig {
	return kafka.ReaderConfig{
		Brokers:     []string{c.KafkaBroker},
		Topic:       c.KafkaRefreshTopic,
		GroupID:     c.KafkaGroupID + "-" + uuid.NewString(),
		StartOffset: kafka.LastOffset,
	}
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(cfg.KafkaReaderConfig())
}

func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBroker),
		Topic:                  cfg.KafkaRefreshTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

func NewS3Client(ctx context.Context, cfg *Config) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}
