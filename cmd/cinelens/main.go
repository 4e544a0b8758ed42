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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cinelens/cinelens/base/log"
	"github.com/cinelens/cinelens/cf"
	"github.com/cinelens/cinelens/config"
	"github.com/cinelens/cinelens/dataset"
)

const version = "0.1.0"

var rootCommand = &cobra.Command{
	Use:   "cinelens",
	Short: "Movie recommendation with user-based collaborative filtering.",
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println("cinelens version", version)
			return
		}
		_ = cmd.Help()
	},
}

var recommendCommand = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend top-N unrated items for a user.",
	Run: func(cmd *cobra.Command, args []string) {
		conf := setup(cmd)
		if cmd.Flags().Changed("top-n") {
			conf.Recommend.TopN, _ = cmd.Flags().GetInt("top-n")
		}
		userId, _ := cmd.Flags().GetInt32("user")
		matrix, titles := loadData(conf)
		similarity := computeSimilarity(matrix, conf.Recommend.Jobs)
		recommendations, err := cf.Recommend(matrix, similarity, userId, conf.Recommend.TopN)
		if err != nil {
			log.Logger().Fatal("failed to recommend", zap.Error(err), zap.Int32("user_id", userId))
		}
		table := tablewriter.NewTable(os.Stdout)
		table.Header("Item", "Title", "Predicted Rating")
		for _, recommendation := range recommendations {
			title, exist := titles[recommendation.ItemId]
			if !exist {
				title = fmt.Sprintf("Item %d", recommendation.ItemId)
			}
			_ = table.Append([]string{
				fmt.Sprint(recommendation.ItemId),
				title,
				fmt.Sprintf("%.2f", recommendation.Score),
			})
		}
		if err = table.Render(); err != nil {
			log.Logger().Fatal("failed to render table", zap.Error(err))
		}
		fmt.Println(cf.FormatRecommendations(recommendations, titles))
	},
}

var evaluateCommand = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate prediction accuracy with hold-out RMSE.",
	Run: func(cmd *cobra.Command, args []string) {
		conf := setup(cmd)
		if cmd.Flags().Changed("test-fraction") {
			conf.Evaluate.TestFraction, _ = cmd.Flags().GetFloat64("test-fraction")
		}
		if cmd.Flags().Changed("seed") {
			conf.Evaluate.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if cmd.Flags().Changed("recompute-similarity") {
			conf.Evaluate.RecomputeSimilarity, _ = cmd.Flags().GetBool("recompute-similarity")
		}
		matrix, _ := loadData(conf)
		similarity := computeSimilarity(matrix, conf.Recommend.Jobs)
		evaluator := cf.NewEvaluator()
		evaluator.TestFraction = conf.Evaluate.TestFraction
		evaluator.Seed = conf.Evaluate.Seed
		evaluator.Jobs = conf.Evaluate.Jobs
		evaluator.RecomputeSimilarity = conf.Evaluate.RecomputeSimilarity
		start := time.Now()
		score, err := evaluator.Evaluate(matrix, similarity)
		if err != nil {
			log.Logger().Fatal("failed to evaluate", zap.Error(err))
		}
		log.Logger().Info("evaluation complete",
			zap.Int("num_samples", score.NumSamples),
			zap.Duration("duration", time.Since(start)))
		fmt.Println(cf.FormatScore(score))
	},
}

func init() {
	rootCommand.PersistentFlags().Bool("version", false, "cinelens version")
	rootCommand.PersistentFlags().StringP("config", "c", "config.toml", "configuration file path")
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	log.AddFlags(rootCommand.PersistentFlags())
	recommendCommand.Flags().Int32("user", 0, "user id to recommend for")
	recommendCommand.Flags().Int("top-n", cf.DefaultTopN, "number of recommendations")
	_ = recommendCommand.MarkFlagRequired("user")
	evaluateCommand.Flags().Float64("test-fraction", 0.2, "fraction of each user's ratings to hold out")
	evaluateCommand.Flags().Int64("seed", 0, "seed for held-out sampling")
	evaluateCommand.Flags().Bool("recompute-similarity", false, "recompute similarities after masking")
	rootCommand.AddCommand(recommendCommand)
	rootCommand.AddCommand(evaluateCommand)
}

func setup(cmd *cobra.Command) *config.Config {
	// setup logger
	debug, _ := cmd.Root().PersistentFlags().GetBool("debug")
	log.SetLogger(cmd.Root().PersistentFlags(), debug)
	// load config
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")
	log.Logger().Info("load config", zap.String("config", configPath))
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}
	return conf
}

func loadData(conf *config.Config) (*cf.RatingMatrix, map[int32]string) {
	ratings, err := readRatings(conf.Data.RatingsPath)
	if err != nil {
		log.Logger().Fatal("failed to load ratings", zap.Error(err),
			zap.String("path", conf.Data.RatingsPath))
	}
	titles := make(map[int32]string)
	if conf.Data.ItemsPath != "" {
		if titles, err = dataset.LoadItems(conf.Data.ItemsPath); err != nil {
			log.Logger().Fatal("failed to load items", zap.Error(err),
				zap.String("path", conf.Data.ItemsPath))
		}
	}
	matrix, err := cf.BuildRatingMatrix(ratings)
	if err != nil {
		log.Logger().Fatal("failed to build rating matrix", zap.Error(err))
	}
	log.Logger().Info("rating matrix built",
		zap.Int32("num_users", matrix.UserCount()),
		zap.Int32("num_items", matrix.ItemCount()),
		zap.Int("num_ratings", len(ratings)))
	return matrix, titles
}

func readRatings(path string) ([]dataset.Rating, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	pbReader := progressbar.NewReader(file, progressbar.DefaultBytes(
		stat.Size(),
		"Loading ratings",
	))
	return dataset.ReadRatings(&pbReader)
}

func computeSimilarity(matrix *cf.RatingMatrix, nJobs int) *cf.SimilarityMatrix {
	start := time.Now()
	similarity := cf.ComputeSimilarity(matrix, nJobs)
	log.Logger().Info("similarity matrix computed",
		zap.Int("jobs", nJobs),
		zap.Duration("duration", time.Since(start)))
	return similarity
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
