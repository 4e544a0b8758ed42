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

	"github.com/cinelens/cinelens/base"
)

// SimilarityMatrix is a symmetric user-by-user matrix of cosine similarities
// computed from one RatingMatrix snapshot. It is stale if the matrix is
// mutated afterwards.
type SimilarityMatrix struct {
	Data [][]float32
}

// Cosine computes the cosine similarity between a pair of rating rows.
// Unrated entries are not excluded: they contribute zero to the dot product
// and the norms. A row with no ratings cannot be normalized, so its
// similarity to any row is 0 instead of NaN.
func Cosine(a, b []float32) float32 {
	var m, n, l float32
	for i := range a {
		m += a[i] * a[i]
		n += b[i] * b[i]
		l += a[i] * b[i]
	}
	if m == 0 || n == 0 {
		return 0
	}
	return l / (math32.Sqrt(m) * math32.Sqrt(n))
}

// ComputeSimilarity computes the similarity matrix of a rating matrix. Rows
// are computed in parallel by nJobs executors; all shared state is read-only
// so the result is independent of scheduling.
func ComputeSimilarity(matrix *RatingMatrix, nJobs int) *SimilarityMatrix {
	numUsers := int(matrix.UserCount())
	norms := make([]float32, numUsers)
	for u, row := range matrix.Data {
		var sum float32
		for _, rating := range row {
			sum += rating * rating
		}
		norms[u] = math32.Sqrt(sum)
	}
	similarity := &SimilarityMatrix{Data: make([][]float32, numUsers)}
	for u := range similarity.Data {
		similarity.Data[u] = make([]float32, numUsers)
	}
	// lower triangle, row per task
	_ = base.Parallel(numUsers, nJobs, func(u int) error {
		for v := 0; v < u; v++ {
			if norms[u] == 0 || norms[v] == 0 {
				continue
			}
			var dot float32
			a, b := matrix.Data[u], matrix.Data[v]
			for i := range a {
				dot += a[i] * b[i]
			}
			similarity.Data[u][v] = dot / (norms[u] * norms[v])
		}
		if norms[u] > 0 {
			similarity.Data[u][u] = 1
		}
		return nil
	})
	// mirror to the upper triangle
	for u := 0; u < numUsers; u++ {
		for v := 0; v < u; v++ {
			similarity.Data[v][u] = similarity.Data[u][v]
		}
	}
	return similarity
}
