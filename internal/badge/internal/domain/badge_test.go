// Copyright 2023 ecodeclub
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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCriteria_Match(t *testing.T) {
	t.Parallel()
	stats := UserStats{
		TotalPoints:         100,
		CompletedChallenges: 5,
		EventsAttended:      3,
		ProjectsSubmitted:   1,
	}
	testCases := []struct {
		name     string
		criteria BadgeCriteria
		want     bool
	}{
		{
			name:     "积分刚好到门槛",
			criteria: BadgeCriteria{Type: CriteriaTypePoints, Threshold: 100},
			want:     true,
		},
		{
			name:     "积分差一分",
			criteria: BadgeCriteria{Type: CriteriaTypePoints, Threshold: 101},
			want:     false,
		},
		{
			name:     "挑战数满足",
			criteria: BadgeCriteria{Type: CriteriaTypeChallenges, Threshold: 5},
			want:     true,
		},
		{
			name:     "挑战数不满足",
			criteria: BadgeCriteria{Type: CriteriaTypeChallenges, Threshold: 6},
			want:     false,
		},
		{
			name:     "活动数满足",
			criteria: BadgeCriteria{Type: CriteriaTypeEvents, Threshold: 1},
			want:     true,
		},
		{
			name:     "项目数满足",
			criteria: BadgeCriteria{Type: CriteriaTypeProjects, Threshold: 1},
			want:     true,
		},
		{
			name:     "项目数不满足",
			criteria: BadgeCriteria{Type: CriteriaTypeProjects, Threshold: 2},
			want:     false,
		},
		{
			name:     "未知条件类型不发放",
			criteria: BadgeCriteria{Type: CriteriaTypeUnknown, Threshold: 0},
			want:     false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.criteria.Match(stats))
		})
	}
}
