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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	data, err := os.ReadFile("config.toml.template")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), config)
}

func TestLoadConfig_Override(t *testing.T) {
	text := "[data]\n" +
		"ratings_path = \"ml-100k/u.data\"\n" +
		"items_path = \"ml-100k/u.item\"\n" +
		"[recommend]\n" +
		"top_n = 20\n" +
		"[evaluate]\n" +
		"test_fraction = 0.5\n" +
		"seed = 42\n" +
		"recompute_similarity = true\n"
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ml-100k/u.data", config.Data.RatingsPath)
	assert.Equal(t, "ml-100k/u.item", config.Data.ItemsPath)
	assert.Equal(t, 20, config.Recommend.TopN)
	assert.Equal(t, 1, config.Recommend.Jobs)
	assert.Equal(t, 0.5, config.Evaluate.TestFraction)
	assert.Equal(t, int64(42), config.Evaluate.Seed)
	assert.True(t, config.Evaluate.RecomputeSimilarity)
}

func TestValidate(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())

	config = GetDefaultConfig()
	config.Data.RatingsPath = ""
	assert.Error(t, config.Validate())

	config = GetDefaultConfig()
	config.Recommend.TopN = 0
	assert.Error(t, config.Validate())

	config = GetDefaultConfig()
	config.Evaluate.TestFraction = 0
	assert.Error(t, config.Validate())

	config = GetDefaultConfig()
	config.Evaluate.TestFraction = 1.5
	assert.Error(t, config.Validate())

	config = GetDefaultConfig()
	config.Evaluate.Jobs = 0
	assert.Error(t, config.Validate())
}
