package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"blobd/internal/infrastructure/broker"
	"blobd/internal/infrastructure/database"
	"blobd/internal/infrastructure/minio"
	"blobd/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIOMover      minio.MoverConfig      `yaml:"minio_mover"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOGetter     minio.GetterConfig     `yaml:"minio_getter"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

// HTTPServerConfig describes the HTTP surface: where to listen, the address
// advertised in blob URLs, and the request limits applied by the middleware
// chain. API keys come from the BLOBD_API_KEYS environment variable.
type HTTPServerConfig struct {
	Address       string `yaml:"address"`
	PublicAddress string `yaml:"public_address"`
	BodyLimit     string `yaml:"body_limit"`
	RateLimit     int    `yaml:"rate_limit_per_sec"`
	APIKeys       []string
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.HTTPServer.APIKeys = splitAPIKeys(os.Getenv("BLOBD_API_KEYS"))

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func splitAPIKeys(raw string) []string {
	keys := make([]string, 0)
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTPServer.Address == "" {
		return errors.New("http_server.address must be set")
	}
	if c.HTTPServer.PublicAddress == "" {
		return errors.New("http_server.public_address must be set")
	}
	if c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name must be set")
	}
	if c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "" {
		return errors.New("redis_broker_config stream_name and group_name must be set")
	}

	return nil
}
