package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

type AxisRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max" validate:"gtefield=Min"`
}

// Config holds everything the server needs before any grid construction starts.
// invalid values here are fatal at startup, never during the build.
type Config struct {
	LatRange AxisRange `mapstructure:"lat_range" validate:"required"`
	LonRange AxisRange `mapstructure:"lon_range" validate:"required"`
	AltRange AxisRange `mapstructure:"alt_range" validate:"required"`
	CellSize float64   `mapstructure:"cell_size" validate:"required,gt=0"`

	CostFunction    string  `mapstructure:"cost_function" validate:"omitempty,oneof=environmental random"`
	FetchWorkers    int     `mapstructure:"fetch_workers" validate:"omitempty,gte=1"`
	TrafficRadiusKm float64 `mapstructure:"traffic_radius_km" validate:"omitempty,gt=0"`

	OWMApiKey           string `mapstructure:"owm_api_key" validate:"required"`
	OpenskyClientId     string `mapstructure:"opensky_client_id" validate:"required"`
	OpenskyClientSecret string `mapstructure:"opensky_client_secret" validate:"required"`
}

func LoadConfig() (*Config, error) {
	if err := ReadConfig(); err != nil {
		return nil, err
	}

	viper.SetDefault("fetch_workers", 8)
	viper.SetDefault("traffic_radius_km", 50.0)
	viper.SetDefault("cost_function", "environmental")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fatal error unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrBadParamInput, "invalid configuration")
	}

	return &cfg, nil
}
