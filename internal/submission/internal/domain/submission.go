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
	"errors"
	"fmt"
)

var ErrInvalidStatusTransition = errors.New("非法的状态流转")

type Submission struct {
	Id          int64
	ChallengeId int64
	Uid         int64
	Code        string
	Language    string
	Status      SubmissionStatus
	// 提交时挑战奖励积分的快照,评审按这个数发积分
	Points      int64
	Feedback    string
	SubmittedAt int64
	ReviewedAt  int64
	ReviewedBy  int64
}

type SubmissionStatus uint8

func (s SubmissionStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SubmissionStatusUnknown SubmissionStatus = iota
	SubmissionStatusPending
	SubmissionStatusPass
	SubmissionStatusFail
)

// PointDelta 按评审前的已存状态和本次决定算积分变动。
// 评审不是只追加的,评审人可以改判,所以必须对比旧状态,
// 否则会重复加分或者漏扣分。
// 这里是封闭枚举,新增状态必须同步改这张流转表。
func PointDelta(prior SubmissionStatus, decision SubmissionStatus, points int64) (int64, error) {
	switch prior {
	case SubmissionStatusPending, SubmissionStatusFail:
		switch decision {
		case SubmissionStatusPass:
			return points, nil
		case SubmissionStatusFail:
			return 0, nil
		}
	case SubmissionStatusPass:
		switch decision {
		case SubmissionStatusPass:
			return 0, nil
		case SubmissionStatusFail:
			return -points, nil
		}
	}
	return 0, fmt.Errorf("%w: %d -> %d", ErrInvalidStatusTransition, prior, decision)
}
