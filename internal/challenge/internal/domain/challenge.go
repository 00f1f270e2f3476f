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

type Challenge struct {
	Id    int64
	Title string
	Desc  string
	// 难度 1-5
	Difficulty uint8
	// 通过之后奖励的积分，快照到提交记录里
	Points int64
	WeekNo int64
	Status ChallengeStatus
	Utime  int64
}

func (c Challenge) Published() bool {
	return c.Status == ChallengeStatusPublished
}

type ChallengeStatus uint8

func (s ChallengeStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ChallengeStatusUnknown ChallengeStatus = iota
	ChallengeStatusUnpublished
	ChallengeStatusPublished
)
