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
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FormatRecommendations renders one report line per recommendation, with the
// predicted rating to two decimal places. Items missing from the metadata
// fall back to their id.
func FormatRecommendations(recommendations []Recommendation, titles map[int32]string) string {
	lines := lo.Map(recommendations, func(recommendation Recommendation, _ int) string {
		title, exist := titles[recommendation.ItemId]
		if !exist {
			title = fmt.Sprintf("Item %d", recommendation.ItemId)
		}
		return fmt.Sprintf("%s, Predicted Rating: %.2f", title, recommendation.Score)
	})
	return strings.Join(lines, "\n")
}

// FormatScore renders the RMSE line with four decimal places.
func FormatScore(score Score) string {
	return fmt.Sprintf("RMSE: %.4f", score.RMSE)
}
