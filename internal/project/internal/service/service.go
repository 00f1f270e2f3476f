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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/project/internal/repository"
)

var ErrProjectNotFound = errors.New("项目不存在")

//go:generate mockgen -source=./service.go -destination=./mocks/project.mock.go -package=svcmocks -typed Service
type Service interface {
	Submit(ctx context.Context, p domain.Project) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Project, error)
	Mine(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type service struct {
	repo  repository.ProjectRepository
	idgen snowflake.Generator
}

func NewService(repo repository.ProjectRepository, idgen snowflake.Generator) Service {
	return &service{
		repo:  repo,
		idgen: idgen,
	}
}

func (s *service) Submit(ctx context.Context, p domain.Project) (int64, error) {
	p.Id = s.idgen.Generate().Int64()
	p.SubmittedAt = time.Now().UnixMilli()
	return s.repo.Create(ctx, p)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Project, error) {
	p, err := s.repo.GetById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Project{}, fmt.Errorf("%w: id = %d", ErrProjectNotFound, id)
	}
	return p, err
}

func (s *service) Mine(ctx context.Context, uid int64, offset, limit int) ([]domain.Project, error) {
	return s.repo.FindByUid(ctx, uid, offset, limit)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Project, int64, error) {
	ps, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	cnt, err := s.repo.Count(ctx)
	return ps, cnt, err
}

func (s *service) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return s.repo.CountByUid(ctx, uid)
}
