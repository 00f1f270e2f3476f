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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
)

type SubmitReq struct {
	ChallengeId int64  `json:"challengeId"`
	Code        string `json:"code"`
	Language    string `json:"language"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ReviewReq struct {
	Sid int64 `json:"sid"`
	// 评审决定 2=通过 3=不通过
	Decision uint8  `json:"decision"`
	Feedback string `json:"feedback,omitempty"`
}

type Submission struct {
	Id          int64  `json:"id,omitempty"`
	ChallengeId int64  `json:"challengeId,omitempty"`
	Uid         int64  `json:"uid,omitempty"`
	Code        string `json:"code,omitempty"`
	Language    string `json:"language,omitempty"`
	Status      uint8  `json:"status,omitempty"`
	Points      int64  `json:"points,omitempty"`
	Feedback    string `json:"feedback,omitempty"`
	SubmittedAt int64  `json:"submittedAt,omitempty"`
	ReviewedAt  int64  `json:"reviewedAt,omitempty"`
}

type SubmissionList struct {
	Total       int64        `json:"total,omitempty"`
	Submissions []Submission `json:"submissions,omitempty"`
}

type PointAccount struct {
	Total           int64      `json:"total"`
	LastPointUpdate int64      `json:"lastPointUpdate,omitempty"`
	Logs            []PointLog `json:"logs,omitempty"`
}

type PointLog struct {
	SubmissionId int64  `json:"submissionId,omitempty"`
	Change       int64  `json:"change"`
	Balance      int64  `json:"balance"`
	Desc         string `json:"desc,omitempty"`
}

func newSubmission(sub domain.Submission) Submission {
	return Submission{
		Id:          sub.Id,
		ChallengeId: sub.ChallengeId,
		Uid:         sub.Uid,
		Code:        sub.Code,
		Language:    sub.Language,
		Status:      sub.Status.ToUint8(),
		Points:      sub.Points,
		Feedback:    sub.Feedback,
		SubmittedAt: sub.SubmittedAt,
		ReviewedAt:  sub.ReviewedAt,
	}
}

func newPointAccount(a domain.PointAccount) PointAccount {
	return PointAccount{
		Total:           a.Total,
		LastPointUpdate: a.LastPointUpdate,
		Logs: slice.Map(a.Logs, func(idx int, src domain.PointLog) PointLog {
			return PointLog{
				SubmissionId: src.SubmissionId,
				Change:       src.Change,
				Balance:      src.Balance,
				Desc:         src.Desc,
			}
		}),
	}
}
