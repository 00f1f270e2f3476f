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

type SubscribeReq struct {
	Email string `json:"email"`
}

type DispatchReq struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Issue struct {
	Id        int64  `json:"id"`
	Subject   string `json:"subject"`
	SentCnt   int64  `json:"sentCnt"`
	FailedCnt int64  `json:"failedCnt"`
	Ctime     int64  `json:"ctime"`
}

type IssueList struct {
	Issues []Issue `json:"issues"`
}
