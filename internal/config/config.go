package config

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Application struct {
	Env     string `mapstructure:"env"      json:"env"`
	Name    string `mapstructure:"name"     json:"name"`
	LogFile string `mapstructure:"log_file" json:"log_file"`
}

type Storage struct {
	Driver string `mapstructure:"driver" json:"driver"`
	Path   string `mapstructure:"path"   json:"path"`
}

type Admin struct {
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"-"`
}

type Checkout struct {
	ProcessingDelay time.Duration `mapstructure:"processing_delay" json:"processing_delay"`
	TaxRate         string        `mapstructure:"tax_rate"         json:"tax_rate"`
}

type Config struct {
	Storage     `mapstructure:"storage"     json:"storage"`
	Admin       `mapstructure:"admin"       json:"admin"`
	Checkout    `mapstructure:"checkout"    json:"checkout"`
	Application `mapstructure:"application" json:"application"`
}

var (
	once   sync.Once
	config *Config
)

func InitConfig(c context.Context, filename string) *Config {
	cfg := Config{}
	once.Do(func() {
		logger := zerolog.Ctx(c).
			With().
			Str("tag", "main InitConfig").
			Str("process", "init config").
			Str("filename", filename).
			Logger()

		viper.SetConfigName(filename)
		viper.AddConfigPath("./env")
		viper.SetConfigType("yaml")
		viper.AutomaticEnv()

		viper.SetDefault("application.env", "development")
		viper.SetDefault("application.name", "azgaming-storefront")
		viper.SetDefault("application.log_file", "./log/storefront.log")
		viper.SetDefault("storage.driver", "file")
		viper.SetDefault("storage.path", "./data")
		viper.SetDefault("admin.username", "68686868")
		viper.SetDefault("admin.password", "Abcd!123456789")
		viper.SetDefault("checkout.processing_delay", 1500*time.Millisecond)
		viper.SetDefault("checkout.tax_rate", "0.1")

		logger = logger.With().Str("process", "reading config").Logger()
		logger.Info().Msg("reading config")
		err := viper.ReadInConfig()
		if err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				err = fmt.Errorf("error when reading config with error=%w", err)
				logger.Fatal().Err(err).Msg(err.Error())
			}
			logger.Info().Msg("config file not found, using defaults")
		} else {
			logger.Info().Msg("read config")
		}

		logger = logger.With().Str("process", "unmarshaling config").Logger()
		logger.Info().Msg("unmarshaling config")
		err = viper.Unmarshal(&cfg)
		if err != nil {
			err = fmt.Errorf("error unmarshaling config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		config = &cfg
		logger = logger.With().Any("config", cfg).Logger()
		logger.Info().Msg("unmarshaled config")
	})
	return config
}
