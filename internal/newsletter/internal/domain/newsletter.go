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

type Subscription struct {
	Id    int64
	Email string
	// Uid 是订阅者的站内用户 ID,纯邮箱订阅时为 0
	Uid        int64
	Subscribed bool
	Utime      int64
}

// Issue 是一期通讯的发送记录
type Issue struct {
	Id int64
	// BatchKey 标识一次群发,发送日志里用它串起整批
	BatchKey  string
	Subject   string
	Body      string
	SentCnt   int64
	FailedCnt int64
	Ctime     int64
}
