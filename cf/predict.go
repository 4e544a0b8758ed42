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
	"github.com/chewxy/math32"
)

// Predictor estimates the rating a user (by dense index) would give an item
// (by dense index).
type Predictor func(matrix *RatingMatrix, similarity *SimilarityMatrix, userIndex, itemIndex int32) float32

// Predict estimates the rating a user would give an item as the
// similarity-weighted average of every user's rating for that item, the
// target user included:
//
//	predicted = Σ_k sim[u,k]·r[k,i] / Σ_k |sim[u,k]|
//
// Unrated entries contribute zero to the numerator while their similarity
// weight still counts in the denominator, which biases predictions toward
// zero for items rated by few similar users. When every similarity to the
// target user is zero there is no basis for a positive prediction and the
// result is 0.
func Predict(matrix *RatingMatrix, similarity *SimilarityMatrix, userIndex, itemIndex int32) float32 {
	var numerator, denominator float32
	weights := similarity.Data[userIndex]
	for k := range weights {
		numerator += weights[k] * matrix.Data[k][itemIndex]
		denominator += math32.Abs(weights[k])
	}
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
