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
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
)

type Badge struct {
	Id   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Desc string `json:"desc,omitempty"`
	Icon string `json:"icon,omitempty"`
	// 条件类型 1=积分 2=挑战 3=活动 4=项目
	CriteriaType uint8 `json:"criteriaType,omitempty"`
	Threshold    int64 `json:"threshold,omitempty"`
	AutoAward    bool  `json:"autoAward,omitempty"`
	Active       bool  `json:"active,omitempty"`
	Utime        int64 `json:"utime,omitempty"`
}

type BadgeList struct {
	Total  int64   `json:"total,omitempty"`
	Badges []Badge `json:"badges,omitempty"`
}

type UserBadge struct {
	BadgeId   int64  `json:"badgeId,omitempty"`
	AwardedBy string `json:"awardedBy,omitempty"`
	AwardedAt int64  `json:"awardedAt,omitempty"`
}

type UserBadgeList struct {
	Badges []UserBadge `json:"badges,omitempty"`
}

type SaveReq struct {
	Badge Badge `json:"badge,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ToggleReq struct {
	Id     int64 `json:"id"`
	Active bool  `json:"active"`
}

type AwardReq struct {
	Uid     int64 `json:"uid"`
	BadgeId int64 `json:"badgeId"`
}

func (b Badge) toDomain() domain.Badge {
	return domain.Badge{
		Id:   b.Id,
		Name: b.Name,
		Desc: b.Desc,
		Icon: b.Icon,
		Criteria: domain.BadgeCriteria{
			Type:      domain.CriteriaType(b.CriteriaType),
			Threshold: b.Threshold,
		},
		AutoAward: b.AutoAward,
		Active:    b.Active,
	}
}

func newBadge(b domain.Badge) Badge {
	return Badge{
		Id:           b.Id,
		Name:         b.Name,
		Desc:         b.Desc,
		Icon:         b.Icon,
		CriteriaType: b.Criteria.Type.ToUint8(),
		Threshold:    b.Criteria.Threshold,
		AutoAward:    b.AutoAward,
		Active:       b.Active,
		Utime:        b.Utime,
	}
}

func newUserBadge(ub domain.UserBadge) UserBadge {
	return UserBadge{
		BadgeId:   ub.BadgeId,
		AwardedBy: ub.AwardedBy,
		AwardedAt: ub.AwardedAt,
	}
}
