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

package cf

import (
	"math"

	"github.com/juju/errors"
	"github.com/samber/lo"

	"github.com/cinelens/cinelens/base"
)

// ErrEmptyEvaluation reports an evaluation over a matrix where no user has
// any rated items, leaving RMSE undefined.
var ErrEmptyEvaluation = errors.New("no ratings to evaluate")

// Evaluator measures prediction accuracy by hiding a fraction of each user's
// known ratings and predicting the hidden entries.
type Evaluator struct {
	// TestFraction is the fraction of each user's ratings to hold out, in
	// (0, 1]. Each user with at least one rating has ⌈fraction·|rated|⌉
	// ratings held out.
	TestFraction float64
	// Seed drives the held-out sampling. Each user draws from a generator
	// seeded with Seed plus the user's dense index, so results do not depend
	// on the order users are processed in.
	Seed int64
	// Jobs is the number of parallel executors.
	Jobs int
	// RecomputeSimilarity recomputes the similarity matrix from each masked
	// matrix instead of reusing the one computed from the fully-rated matrix.
	// The default (false) reproduces the reference behavior: the held-out
	// rating still influences the similarity weights used to predict it, so
	// scores are slightly optimistic.
	RecomputeSimilarity bool
	// Predictor estimates hidden ratings. Defaults to Predict.
	Predictor Predictor
}

// NewEvaluator creates an Evaluator with default settings.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		TestFraction: 0.2,
		Seed:         0,
		Jobs:         1,
		Predictor:    Predict,
	}
}

// Score is the result of an evaluation.
type Score struct {
	RMSE       float32
	NumSamples int
}

// Evaluate hides ⌈TestFraction·|rated|⌉ ratings per user, sampled uniformly
// without replacement, predicts each hidden entry from a working copy with
// only that entry masked, and aggregates the squared errors into RMSE. The
// input matrices are never mutated: masking happens on private per-user
// clones.
func (evaluator *Evaluator) Evaluate(matrix *RatingMatrix, similarity *SimilarityMatrix) (Score, error) {
	numUsers := int(matrix.UserCount())
	samples := make([][]lo.Tuple2[float32, float32], numUsers)
	err := base.Parallel(numUsers, evaluator.Jobs, func(u int) error {
		var rated []int32
		for itemIndex, rating := range matrix.Data[u] {
			if rating != Unrated {
				rated = append(rated, int32(itemIndex))
			}
		}
		if len(rated) == 0 {
			return nil
		}
		numTest := int(math.Ceil(evaluator.TestFraction * float64(len(rated))))
		if numTest == 0 {
			return nil
		}
		rng := base.NewRandomGenerator(evaluator.Seed + int64(u))
		positions := rng.Sample(0, len(rated), numTest)
		working := matrix.Clone()
		for _, position := range positions {
			itemIndex := rated[position]
			actual := matrix.Data[u][itemIndex]
			working.Data[u][itemIndex] = Unrated
			sim := similarity
			if evaluator.RecomputeSimilarity {
				sim = ComputeSimilarity(working, 1)
			}
			predicted := evaluator.Predictor(working, sim, int32(u), itemIndex)
			working.Data[u][itemIndex] = actual
			samples[u] = append(samples[u], lo.T2(actual, predicted))
		}
		return nil
	})
	if err != nil {
		return Score{}, errors.Trace(err)
	}
	pairs := lo.Flatten(samples)
	if len(pairs) == 0 {
		return Score{}, errors.Trace(ErrEmptyEvaluation)
	}
	var sum float64
	for _, pair := range pairs {
		diff := float64(pair.A - pair.B)
		sum += diff * diff
	}
	return Score{
		RMSE:       float32(math.Sqrt(sum / float64(len(pairs)))),
		NumSamples: len(pairs),
	}, nil
}
