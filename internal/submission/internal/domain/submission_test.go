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
	"github.com/stretchr/testify/require"
)

func TestPointDelta(t *testing.T) {
	t.Parallel()
	const points int64 = 30
	testCases := []struct {
		name      string
		prior     SubmissionStatus
		decision  SubmissionStatus
		wantDelta int64
		wantErr   error
	}{
		{
			name:      "待评审通过_加满额积分",
			prior:     SubmissionStatusPending,
			decision:  SubmissionStatusPass,
			wantDelta: points,
		},
		{
			name:      "待评审不通过_不动积分",
			prior:     SubmissionStatusPending,
			decision:  SubmissionStatusFail,
			wantDelta: 0,
		},
		{
			name:      "重复判通过_幂等",
			prior:     SubmissionStatusPass,
			decision:  SubmissionStatusPass,
			wantDelta: 0,
		},
		{
			name:      "改判不通过_扣回积分",
			prior:     SubmissionStatusPass,
			decision:  SubmissionStatusFail,
			wantDelta: -points,
		},
		{
			name:      "不通过改判通过_补发积分",
			prior:     SubmissionStatusFail,
			decision:  SubmissionStatusPass,
			wantDelta: points,
		},
		{
			name:      "重复判不通过_幂等",
			prior:     SubmissionStatusFail,
			decision:  SubmissionStatusFail,
			wantDelta: 0,
		},
		{
			name:     "评审决定不能是待评审",
			prior:    SubmissionStatusPending,
			decision: SubmissionStatusPending,
			wantErr:  ErrInvalidStatusTransition,
		},
		{
			name:     "未知的旧状态",
			prior:    SubmissionStatusUnknown,
			decision: SubmissionStatusPass,
			wantErr:  ErrInvalidStatusTransition,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			delta, err := PointDelta(tc.prior, tc.decision, points)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDelta, delta)
		})
	}
}

// 改判往返之后净变动必须是 0,积分守恒
func TestPointDelta_Conservation(t *testing.T) {
	t.Parallel()
	const points int64 = 50
	up, err := PointDelta(SubmissionStatusPending, SubmissionStatusPass, points)
	require.NoError(t, err)
	down, err := PointDelta(SubmissionStatusPass, SubmissionStatusFail, points)
	require.NoError(t, err)
	again, err := PointDelta(SubmissionStatusFail, SubmissionStatusPass, points)
	require.NoError(t, err)
	back, err := PointDelta(SubmissionStatusPass, SubmissionStatusFail, points)
	require.NoError(t, err)
	assert.Equal(t, int64(0), up+down+again+back)
}
