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
	"sort"
)

// Index manages the map between sparse ids and dense indices. A sparse id is
// a user id or item id from the raw dataset. The dense index is the internal
// row or column index optimized for faster access and less memory usage.
type Index struct {
	Numbers map[int32]int32 // sparse id -> dense index
	Ids     []int32         // dense index -> sparse id
}

// NotId represents an id that doesn't exist.
const NotId = int32(-1)

// NewIndex creates an Index over the distinct ids in the given slice. Dense
// indices are assigned in ascending id order so that construction is
// independent of the input order.
func NewIndex(ids []int32) *Index {
	index := &Index{Numbers: make(map[int32]int32)}
	for _, id := range ids {
		if _, exist := index.Numbers[id]; !exist {
			index.Numbers[id] = NotId
			index.Ids = append(index.Ids, id)
		}
	}
	sort.Slice(index.Ids, func(i, j int) bool { return index.Ids[i] < index.Ids[j] })
	for number, id := range index.Ids {
		index.Numbers[id] = int32(number)
	}
	return index
}

// Len returns the number of indexed ids.
func (index *Index) Len() int32 {
	if index == nil {
		return 0
	}
	return int32(len(index.Ids))
}

// ToNumber converts a sparse id to a dense index. Returns NotId if the id is
// not indexed.
func (index *Index) ToNumber(id int32) int32 {
	if number, exist := index.Numbers[id]; exist {
		return number
	}
	return NotId
}

// ToId converts a dense index to a sparse id.
func (index *Index) ToId(number int32) int32 {
	return index.Ids[number]
}
