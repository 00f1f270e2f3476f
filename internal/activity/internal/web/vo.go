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
	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
)

type Activity struct {
	Id       int64  `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Desc     string `json:"desc,omitempty"`
	Location string `json:"location,omitempty"`
	StartAt  int64  `json:"startAt,omitempty"`
	Status   uint8  `json:"status,omitempty"`
	RsvpCnt  int64  `json:"rsvpCnt,omitempty"`
	Utime    int64  `json:"utime,omitempty"`
}

type ActivityList struct {
	Total      int64      `json:"total,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

type Rsvp struct {
	Uid      int64 `json:"uid,omitempty"`
	Attended bool  `json:"attended,omitempty"`
	Utime    int64 `json:"utime,omitempty"`
}

type RsvpList struct {
	Rsvps []Rsvp `json:"rsvps,omitempty"`
}

type SaveReq struct {
	Activity Activity `json:"activity,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type CheckInReq struct {
	ActivityId int64 `json:"activityId"`
	Uid        int64 `json:"uid"`
}

func (a Activity) toDomain() domain.Activity {
	return domain.Activity{
		Id:       a.Id,
		Title:    a.Title,
		Desc:     a.Desc,
		Location: a.Location,
		StartAt:  a.StartAt,
	}
}

func newActivity(a domain.Activity) Activity {
	return Activity{
		Id:       a.Id,
		Title:    a.Title,
		Desc:     a.Desc,
		Location: a.Location,
		StartAt:  a.StartAt,
		Status:   a.Status.ToUint8(),
		RsvpCnt:  a.RsvpCnt,
		Utime:    a.Utime,
	}
}

func newRsvp(r domain.Rsvp) Rsvp {
	return Rsvp{
		Uid:      r.Uid,
		Attended: r.Attended,
		Utime:    r.Utime,
	}
}
