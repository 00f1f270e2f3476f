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
	"github.com/opencoderclub/clubhouse/internal/project/internal/domain"
)

type Project struct {
	Id          int64  `json:"id,omitempty"`
	Uid         int64  `json:"uid,omitempty"`
	Name        string `json:"name,omitempty"`
	RepoURL     string `json:"repoUrl,omitempty"`
	Desc        string `json:"desc,omitempty"`
	SubmittedAt int64  `json:"submittedAt,omitempty"`
}

type ProjectList struct {
	Total    int64     `json:"total,omitempty"`
	Projects []Project `json:"projects,omitempty"`
}

type SubmitReq struct {
	Project Project `json:"project,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

func (p Project) toDomain() domain.Project {
	return domain.Project{
		Id:      p.Id,
		Name:    p.Name,
		RepoURL: p.RepoURL,
		Desc:    p.Desc,
	}
}

func newProject(p domain.Project) Project {
	return Project{
		Id:          p.Id,
		Uid:         p.Uid,
		Name:        p.Name,
		RepoURL:     p.RepoURL,
		Desc:        p.Desc,
		SubmittedAt: p.SubmittedAt,
	}
}
