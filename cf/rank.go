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
	"github.com/juju/errors"

	"github.com/cinelens/cinelens/base"
)

// ErrUnknownUser reports a query for a user id absent from the rating matrix.
var ErrUnknownUser = errors.New("unknown user")

// DefaultTopN is the default number of recommendations.
const DefaultTopN = 5

// Recommendation is a single recommended item with its predicted rating.
type Recommendation struct {
	ItemId int32
	Score  float32
}

// Recommend returns up to n items the user has not rated, by descending
// predicted rating, ties broken by ascending item id. A user who has rated
// every item gets an empty list.
func Recommend(matrix *RatingMatrix, similarity *SimilarityMatrix, userId int32, n int) ([]Recommendation, error) {
	userIndex := matrix.UserIndex.ToNumber(userId)
	if userIndex == base.NotId {
		return nil, errors.Annotatef(ErrUnknownUser, "user %d", userId)
	}
	filter := base.NewTopKFilter(n)
	for itemIndex, rating := range matrix.Data[userIndex] {
		if rating == Unrated {
			filter.Add(int32(itemIndex), Predict(matrix, similarity, userIndex, int32(itemIndex)))
		}
	}
	itemIndices, scores := filter.PopAll()
	recommendations := make([]Recommendation, len(itemIndices))
	for i := range itemIndices {
		recommendations[i] = Recommendation{
			ItemId: matrix.ItemIndex.ToId(itemIndices[i]),
			Score:  scores[i],
		}
	}
	return recommendations, nil
}
