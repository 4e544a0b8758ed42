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

// Package cf implements user-based collaborative filtering over explicit
// ratings: a dense rating matrix, a cosine user-similarity matrix, rating
// prediction, top-N recommendation and hold-out RMSE evaluation.
package cf

import (
	"github.com/juju/errors"

	"github.com/cinelens/cinelens/base"
	"github.com/cinelens/cinelens/dataset"
)

// ErrRatingOutOfRange reports a rating record outside [MinRating, MaxRating].
// The annotated error carries the offending record index and ids.
var ErrRatingOutOfRange = errors.New("rating out of range")

const (
	// Unrated marks a missing entry in the rating matrix. It is not a valid
	// rating value: MinRating is the smallest real rating.
	Unrated   = float32(0)
	MinRating = float32(1)
	MaxRating = float32(5)
)

// RatingMatrix is a dense user-by-item rating matrix. Rows are users and
// columns are items, both in ascending id order. Missing entries hold Unrated.
type RatingMatrix struct {
	UserIndex *base.Index
	ItemIndex *base.Index
	Data      [][]float32
}

// BuildRatingMatrix builds a dense rating matrix from sparse rating records.
// The row index set is exactly the distinct user ids present and the column
// index set is exactly the distinct item ids present, so construction is
// independent of record order. When duplicate (user, item) records disagree,
// the last record encountered wins.
func BuildRatingMatrix(ratings []dataset.Rating) (*RatingMatrix, error) {
	userIds := make([]int32, len(ratings))
	itemIds := make([]int32, len(ratings))
	for i, rating := range ratings {
		if rating.Rating < MinRating || rating.Rating > MaxRating {
			return nil, errors.Annotatef(ErrRatingOutOfRange,
				"record %d: user %d rated item %d with %v", i, rating.UserId, rating.ItemId, rating.Rating)
		}
		userIds[i] = rating.UserId
		itemIds[i] = rating.ItemId
	}
	matrix := &RatingMatrix{
		UserIndex: base.NewIndex(userIds),
		ItemIndex: base.NewIndex(itemIds),
	}
	matrix.Data = make([][]float32, matrix.UserCount())
	for u := range matrix.Data {
		matrix.Data[u] = make([]float32, matrix.ItemCount())
	}
	for _, rating := range ratings {
		userIndex := matrix.UserIndex.ToNumber(rating.UserId)
		itemIndex := matrix.ItemIndex.ToNumber(rating.ItemId)
		matrix.Data[userIndex][itemIndex] = rating.Rating
	}
	return matrix, nil
}

// UserCount returns the number of rows.
func (matrix *RatingMatrix) UserCount() int32 {
	return matrix.UserIndex.Len()
}

// ItemCount returns the number of columns.
func (matrix *RatingMatrix) ItemCount() int32 {
	return matrix.ItemIndex.Len()
}

// Clone returns a deep copy of the rating entries. The id indices are shared
// since they are never mutated after construction. Evaluation masks held-out
// entries on a clone so that the matrix seen by concurrent callers is never
// modified.
func (matrix *RatingMatrix) Clone() *RatingMatrix {
	data := make([][]float32, len(matrix.Data))
	for u, row := range matrix.Data {
		data[u] = make([]float32, len(row))
		copy(data[u], row)
	}
	return &RatingMatrix{
		UserIndex: matrix.UserIndex,
		ItemIndex: matrix.ItemIndex,
		Data:      data,
	}
}
