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

// AwardedByAuto 自动发放的徽章统一用这个标记，手动发放记管理员 uid
const AwardedByAuto = "auto"

type Badge struct {
	Id   int64
	Name string
	Desc string
	Icon string
	// 自动发放的判定条件
	Criteria BadgeCriteria
	// AutoAward 为 false 的徽章只能管理员手动发放
	AutoAward bool
	Active    bool
	Utime     int64
}

type CriteriaType uint8

func (t CriteriaType) ToUint8() uint8 {
	return uint8(t)
}

const (
	CriteriaTypeUnknown CriteriaType = iota
	// CriteriaTypePoints 按积分余额判定
	CriteriaTypePoints
	// CriteriaTypeChallenges 按通过的挑战数判定
	CriteriaTypeChallenges
	// CriteriaTypeEvents 按参加的活动数判定
	CriteriaTypeEvents
	// CriteriaTypeProjects 按提交的项目数判定
	CriteriaTypeProjects
)

type BadgeCriteria struct {
	Type      CriteriaType
	Threshold int64
}

// Match 判断统计数据是否满足发放条件。
// 未知的条件类型一律不发放。
func (c BadgeCriteria) Match(stats UserStats) bool {
	switch c.Type {
	case CriteriaTypePoints:
		return stats.TotalPoints >= c.Threshold
	case CriteriaTypeChallenges:
		return stats.CompletedChallenges >= c.Threshold
	case CriteriaTypeEvents:
		return stats.EventsAttended >= c.Threshold
	case CriteriaTypeProjects:
		return stats.ProjectsSubmitted >= c.Threshold
	}
	return false
}

// UserStats 评估徽章时用到的用户统计快照
type UserStats struct {
	TotalPoints         int64
	CompletedChallenges int64
	EventsAttended      int64
	ProjectsSubmitted   int64
}

type UserBadge struct {
	Id      int64
	Uid     int64
	BadgeId int64
	// AwardedBy 是 "auto" 或者管理员的 uid
	AwardedBy string
	AwardedAt int64
}
