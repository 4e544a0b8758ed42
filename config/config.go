// Copyright 2026 cinelens Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for cinelens.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Evaluate  EvaluateConfig  `mapstructure:"evaluate"`
}

// DataConfig is the configuration for dataset files.
type DataConfig struct {
	// RatingsPath is the whitespace delimited ratings file (u.data layout).
	RatingsPath string `mapstructure:"ratings_path"`
	// ItemsPath is the '|' delimited item metadata file (u.item layout).
	ItemsPath string `mapstructure:"items_path"`
}

// RecommendConfig is the configuration for recommendation.
type RecommendConfig struct {
	// TopN is the number of recommendations per user.
	TopN int `mapstructure:"top_n"`
	// Jobs is the number of parallel executors for the similarity matrix.
	Jobs int `mapstructure:"jobs"`
}

// EvaluateConfig is the configuration for hold-out evaluation.
type EvaluateConfig struct {
	// TestFraction is the fraction of each user's ratings to hold out.
	TestFraction float64 `mapstructure:"test_fraction"`
	// Seed drives the held-out sampling.
	Seed int64 `mapstructure:"seed"`
	// Jobs is the number of parallel executors.
	Jobs int `mapstructure:"jobs"`
	// RecomputeSimilarity recomputes similarities from each masked matrix
	// instead of reusing the ones from the fully-rated matrix.
	RecomputeSimilarity bool `mapstructure:"recompute_similarity"`
}

// GetDefaultConfig returns a Config with default settings.
func GetDefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			RatingsPath: "u.data",
			ItemsPath:   "u.item",
		},
		Recommend: RecommendConfig{
			TopN: 5,
			Jobs: 1,
		},
		Evaluate: EvaluateConfig{
			TestFraction: 0.2,
			Seed:         0,
			Jobs:         1,
		},
	}
}

// Validate Config.
func (config *Config) Validate() error {
	if config.Data.RatingsPath == "" {
		return errors.NotValidf("empty data.ratings_path")
	}
	if config.Recommend.TopN <= 0 {
		return errors.NotValidf("recommend.top_n = %d", config.Recommend.TopN)
	}
	if config.Recommend.Jobs < 1 {
		return errors.NotValidf("recommend.jobs = %d", config.Recommend.Jobs)
	}
	if config.Evaluate.TestFraction <= 0 || config.Evaluate.TestFraction > 1 {
		return errors.NotValidf("evaluate.test_fraction = %v", config.Evaluate.TestFraction)
	}
	if config.Evaluate.Jobs < 1 {
		return errors.NotValidf("evaluate.jobs = %d", config.Evaluate.Jobs)
	}
	return nil
}

func setDefault() {
	defaults := GetDefaultConfig()
	// [data]
	viper.SetDefault("data.ratings_path", defaults.Data.RatingsPath)
	viper.SetDefault("data.items_path", defaults.Data.ItemsPath)
	// [recommend]
	viper.SetDefault("recommend.top_n", defaults.Recommend.TopN)
	viper.SetDefault("recommend.jobs", defaults.Recommend.Jobs)
	// [evaluate]
	viper.SetDefault("evaluate.test_fraction", defaults.Evaluate.TestFraction)
	viper.SetDefault("evaluate.seed", defaults.Evaluate.Seed)
	viper.SetDefault("evaluate.jobs", defaults.Evaluate.Jobs)
	viper.SetDefault("evaluate.recompute_similarity", defaults.Evaluate.RecomputeSimilarity)
}

// LoadConfig loads and validates the configuration from a TOML file.
// Settings can be overridden by CINELENS_ prefixed environment variables,
// e.g. CINELENS_RECOMMEND_TOP_N.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("cinelens")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Trace(err)
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.Trace(err)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &config, nil
}
