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

// PointAccount 用户积分主记录。
// Total 是派生缓存,必须等于该用户所有 pass 提交的奖励之和,
// 只有评审事务会改它,其它地方一律只读。
type PointAccount struct {
	Uid             int64
	Total           int64
	LastPointUpdate int64
	Logs            []PointLog
}

type PointLog struct {
	Id           int64
	Key          string
	Uid          int64
	SubmissionId int64
	Change       int64
	Balance      int64
	Desc         string
}

// Reviewed 一次评审落库之后的结果
type Reviewed struct {
	Uid         int64
	PriorStatus SubmissionStatus
	Delta       int64
	Balance     int64
}
