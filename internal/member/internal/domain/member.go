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

const (
	// BizRegistration 注册福利
	BizRegistration int64 = 1
	// BizRenewal 正常续费
	BizRenewal int64 = 2
)

// Member 一个用户只有一条会员主记录
type Member struct {
	Uid     int64
	StartAt int64
	EndAt   int64
	Records []MemberRecord
}

// MemberRecord 会员流水,Key 用来去重
type MemberRecord struct {
	Key   string
	Days  uint64
	Biz   int64
	BizId int64
	Desc  string
}
