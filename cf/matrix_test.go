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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelens/cinelens/dataset"
)

// workedExample is the 3-user by 3-item matrix used across the tests:
//
//	[[5,3,0],
//	 [4,0,0],
//	 [0,5,4]]
func workedExample(t *testing.T) *RatingMatrix {
	matrix, err := BuildRatingMatrix([]dataset.Rating{
		{UserId: 1, ItemId: 1, Rating: 5},
		{UserId: 1, ItemId: 2, Rating: 3},
		{UserId: 2, ItemId: 1, Rating: 4},
		{UserId: 3, ItemId: 2, Rating: 5},
		{UserId: 3, ItemId: 3, Rating: 4},
	})
	require.NoError(t, err)
	return matrix
}

func TestBuildRatingMatrix(t *testing.T) {
	matrix := workedExample(t)
	assert.Equal(t, int32(3), matrix.UserCount())
	assert.Equal(t, int32(3), matrix.ItemCount())
	assert.Equal(t, [][]float32{
		{5, 3, 0},
		{4, 0, 0},
		{0, 5, 4},
	}, matrix.Data)
}

func TestBuildRatingMatrix_OrderIndependent(t *testing.T) {
	ratings := []dataset.Rating{
		{UserId: 7, ItemId: 10, Rating: 2},
		{UserId: 3, ItemId: 20, Rating: 4},
		{UserId: 7, ItemId: 20, Rating: 5},
		{UserId: 1, ItemId: 30, Rating: 1},
	}
	reversed := make([]dataset.Rating, len(ratings))
	for i, rating := range ratings {
		reversed[len(ratings)-1-i] = rating
	}
	a, err := BuildRatingMatrix(ratings)
	require.NoError(t, err)
	b, err := BuildRatingMatrix(reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildRatingMatrix_OutOfRange(t *testing.T) {
	_, err := BuildRatingMatrix([]dataset.Rating{
		{UserId: 1, ItemId: 1, Rating: 5},
		{UserId: 1, ItemId: 2, Rating: 6},
	})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
	assert.Contains(t, err.Error(), "record 1")

	// the sentinel is not a valid rating value
	_, err = BuildRatingMatrix([]dataset.Rating{
		{UserId: 1, ItemId: 1, Rating: 0},
	})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}

func TestBuildRatingMatrix_DuplicateLastWins(t *testing.T) {
	matrix, err := BuildRatingMatrix([]dataset.Rating{
		{UserId: 1, ItemId: 1, Rating: 2},
		{UserId: 1, ItemId: 1, Rating: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, float32(4), matrix.Data[0][0])
}

func TestRatingMatrix_Clone(t *testing.T) {
	matrix := workedExample(t)
	clone := matrix.Clone()
	clone.Data[0][0] = Unrated
	assert.Equal(t, float32(5), matrix.Data[0][0])
	assert.Same(t, matrix.UserIndex, clone.UserIndex)
	assert.Same(t, matrix.ItemIndex, clone.ItemIndex)
}
