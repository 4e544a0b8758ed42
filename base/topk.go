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

package base

import (
	"container/heap"
	"sort"
)

// TopKFilter stores the K elements with the highest scores. Heap is used to
// reduce time complexity and memory complexity in top-K searching. Elements
// with equal scores are ordered by ascending element id.
type TopKFilter struct {
	Elem  []int32   // store elements
	Score []float32 // store scores
	K     int       // the size of heap
}

// NewTopKFilter creates a TopKFilter.
func NewTopKFilter(k int) *TopKFilter {
	filter := new(TopKFilter)
	filter.Elem = make([]int32, 0, k+1)
	filter.Score = make([]float32, 0, k+1)
	filter.K = k
	return filter
}

// Less returns true if the i-th item should be evicted before the j-th item.
// It is a method of heap.Interface.
func (filter *TopKFilter) Less(i, j int) bool {
	if filter.Score[i] != filter.Score[j] {
		return filter.Score[i] < filter.Score[j]
	}
	// ties keep the smaller element id
	return filter.Elem[i] > filter.Elem[j]
}

// Swap the i-th item with the j-th item. It is a method of heap.Interface.
func (filter *TopKFilter) Swap(i, j int) {
	filter.Elem[i], filter.Elem[j] = filter.Elem[j], filter.Elem[i]
	filter.Score[i], filter.Score[j] = filter.Score[j], filter.Score[i]
}

// Len returns the size of heap. It is a method of heap.Interface.
func (filter *TopKFilter) Len() int {
	return len(filter.Elem)
}

type heapItem struct {
	Elem  int32
	Score float32
}

// Push an element into the TopKFilter. It is a method of heap.Interface.
func (filter *TopKFilter) Push(x interface{}) {
	item := x.(heapItem)
	filter.Elem = append(filter.Elem, item.Elem)
	filter.Score = append(filter.Score, item.Score)
}

// Pop the element with the lowest score. It is a method of heap.Interface.
func (filter *TopKFilter) Pop() interface{} {
	n := filter.Len()
	item := heapItem{filter.Elem[n-1], filter.Score[n-1]}
	filter.Elem = filter.Elem[:n-1]
	filter.Score = filter.Score[:n-1]
	return item
}

// Push a new element into the TopKFilter, evicting the lowest element if the
// filter holds more than K.
func (filter *TopKFilter) Add(elem int32, score float32) {
	heap.Push(filter, heapItem{elem, score})
	if filter.Len() > filter.K {
		heap.Pop(filter)
	}
}

// PopAll returns all elements by descending score, ties by ascending element id.
func (filter *TopKFilter) PopAll() ([]int32, []float32) {
	sorted := make([]heapItem, filter.Len())
	for i := range sorted {
		sorted[i] = heapItem{filter.Elem[i], filter.Score[i]}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Elem < sorted[j].Elem
	})
	elem := make([]int32, len(sorted))
	score := make([]float32, len(sorted))
	for i, item := range sorted {
		elem[i] = item.Elem
		score[i] = item.Score
	}
	return elem, score
}
