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

package event

const userRegistrationEvents = "user_registration_events"

type RegistrationEvent struct {
	Uid int64 `json:"uid"`
}

// PointsChangeEventName 评审改变了某个用户的积分之后发出,
// 排行榜靠它刷缓存
const PointsChangeEventName = "point_change_events"

type PointsChangeEvent struct {
	Uid          int64 `json:"uid"`
	SubmissionId int64 `json:"submission_id"`
	Change       int64 `json:"change"`
	Balance      int64 `json:"balance"`
}
