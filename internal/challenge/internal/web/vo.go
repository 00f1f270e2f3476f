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
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/domain"
)

type Challenge struct {
	Id         int64  `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	Desc       string `json:"desc,omitempty"`
	Difficulty uint8  `json:"difficulty,omitempty"`
	Points     int64  `json:"points,omitempty"`
	WeekNo     int64  `json:"weekNo,omitempty"`
	Status     uint8  `json:"status,omitempty"`
	Utime      int64  `json:"utime,omitempty"`
}

type ChallengeList struct {
	Total      int64       `json:"total,omitempty"`
	Challenges []Challenge `json:"challenges,omitempty"`
}

type SaveReq struct {
	Challenge Challenge `json:"challenge,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (c Challenge) toDomain() domain.Challenge {
	return domain.Challenge{
		Id:         c.Id,
		Title:      c.Title,
		Desc:       c.Desc,
		Difficulty: c.Difficulty,
		Points:     c.Points,
		WeekNo:     c.WeekNo,
	}
}

func newChallenge(c domain.Challenge) Challenge {
	return Challenge{
		Id:         c.Id,
		Title:      c.Title,
		Desc:       c.Desc,
		Difficulty: c.Difficulty,
		Points:     c.Points,
		WeekNo:     c.WeekNo,
		Status:     c.Status.ToUint8(),
		Utime:      c.Utime,
	}
}
