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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/opencoderclub/clubhouse/internal/project/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/project/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./repository.go -destination=./mocks/project.mock.go -package=repomocks -typed ProjectRepository
type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Project, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, error)
	Count(ctx context.Context) (int64, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type projectRepository struct {
	dao dao.ProjectDAO
}

func NewProjectRepository(d dao.ProjectDAO) ProjectRepository {
	return &projectRepository{dao: d}
}

func (r *projectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	return r.dao.Create(ctx, dao.Project{
		Id:          p.Id,
		Uid:         p.Uid,
		Name:        p.Name,
		RepoURL:     p.RepoURL,
		Description: p.Desc,
		SubmittedAt: p.SubmittedAt,
	})
}

func (r *projectRepository) GetById(ctx context.Context, id int64) (domain.Project, error) {
	p, err := r.dao.GetById(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	return r.toDomain(p), nil
}

func (r *projectRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error) {
	ps, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) List(ctx context.Context, offset, limit int) ([]domain.Project, error) {
	ps, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return r.toDomain(src)
	}), nil
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *projectRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *projectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:          p.Id,
		Uid:         p.Uid,
		Name:        p.Name,
		RepoURL:     p.RepoURL,
		Desc:        p.Description,
		SubmittedAt: p.SubmittedAt,
	}
}
