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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredict(t *testing.T) {
	matrix := workedExample(t)
	similarity := ComputeSimilarity(matrix, 1)

	// user 2, item 1: sim[2,0] and sim[2,2] weighted against column [3,0,5]
	sim20 := 15.0 / (math.Sqrt(34) * math.Sqrt(41))
	sim21 := 0.0
	sim22 := 1.0
	expected := (sim20*3 + sim21*0 + sim22*5) / (sim20 + sim21 + sim22)
	assert.InDelta(t, expected, Predict(matrix, similarity, 2, 1), testEpsilon)
}

func TestPredict_RatedByNoSimilarUser(t *testing.T) {
	matrix := workedExample(t)
	similarity := ComputeSimilarity(matrix, 1)
	// item 2 is rated only by user 2, whose similarity to user 1 is zero, so
	// the prediction is biased all the way down to zero.
	assert.Zero(t, Predict(matrix, similarity, 1, 2))
}

func TestPredict_ZeroDenominator(t *testing.T) {
	// a user with an all-zero row has zero similarity to everyone, leaving no
	// basis for a positive prediction
	matrix := workedExample(t)
	masked := matrix.Clone()
	masked.Data[1][0] = Unrated
	similarity := ComputeSimilarity(masked, 1)
	assert.Zero(t, Predict(masked, similarity, 1, 1))
}
