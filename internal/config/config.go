// file: internal/config/config.go
// version: 1.1.0
// guid: 9b1d3f5a-7c0e-4f2b-8d4a-6c8e0a2c4e6f

package config

import (
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	InputPath            string
	SearchDistanceMeters float64
	Workers              int
	StorePath            string
	OutputPath           string
	MetricsPath          string
	MapRoulette          struct {
		BaseURL           string
		APIKey            string
		ChallengeID       int64
		ChallengeName     string
		RequestsPerSecond float64
	}
}

var AppConfig Config

// InitConfig initializes the application configuration
func InitConfig() {
	// Set defaults
	viper.SetDefault("search_distance_meters", 500.0)
	viper.SetDefault("workers", 4)
	viper.SetDefault("store_path", "roadname-checker.pebble")
	viper.SetDefault("maproulette.base_url", "https://maproulette.org/api/v2")
	viper.SetDefault("maproulette.challenge_name", "Road Name Spelling Consistency")
	viper.SetDefault("maproulette.requests_per_second", 2.0)

	AppConfig = Config{
		InputPath:            viper.GetString("input"),
		SearchDistanceMeters: viper.GetFloat64("search_distance_meters"),
		Workers:              viper.GetInt("workers"),
		StorePath:            viper.GetString("store_path"),
		OutputPath:           viper.GetString("output"),
		MetricsPath:          viper.GetString("metrics_output"),
	}

	AppConfig.MapRoulette.BaseURL = viper.GetString("maproulette.base_url")
	AppConfig.MapRoulette.APIKey = viper.GetString("maproulette.api_key")
	AppConfig.MapRoulette.ChallengeID = viper.GetInt64("maproulette.challenge_id")
	AppConfig.MapRoulette.ChallengeName = viper.GetString("maproulette.challenge_name")
	AppConfig.MapRoulette.RequestsPerSecond = viper.GetFloat64("maproulette.requests_per_second")

	if AppConfig.Workers < 1 {
		AppConfig.Workers = 1
	}
	if AppConfig.SearchDistanceMeters <= 0 {
		AppConfig.SearchDistanceMeters = 500
	}
}
