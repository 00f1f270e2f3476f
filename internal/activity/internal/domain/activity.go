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

type Activity struct {
	Id       int64
	Title    string
	Desc     string
	Location string
	// 活动开始时间,毫秒时间戳
	StartAt int64
	Status  ActivityStatus
	// 当前报名人数,冗余计数
	RsvpCnt int64
	Utime   int64
}

func (a Activity) Published() bool {
	return a.Status == ActivityStatusPublished
}

type ActivityStatus uint8

func (s ActivityStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ActivityStatusUnknown ActivityStatus = iota
	ActivityStatusUnpublished
	ActivityStatusPublished
)

type Rsvp struct {
	Id         int64
	ActivityId int64
	Uid        int64
	// 签到之后置为 true
	Attended bool
	Utime    int64
}
