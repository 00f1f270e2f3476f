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

	"github.com/opencoderclub/clubhouse/internal/challenge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository"
)

var (
	ErrChallengeNotFound = errors.New("挑战不存在或未发布")
	// ErrInvalidChallenge 奖励积分不允许是负数
	ErrInvalidChallenge = errors.New("非法的挑战参数")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/challenge.mock.go -package=challengemocks -typed Service
type Service interface {
	// Save 管理端: 新建或编辑挑战,返回挑战ID
	Save(ctx context.Context, c domain.Challenge) (int64, error)
	Publish(ctx context.Context, id int64) error
	Unpublish(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Challenge, int64, error)
	Detail(ctx context.Context, id int64) (domain.Challenge, error)
	// PubList C端: 已发布挑战列表
	PubList(ctx context.Context, offset, limit int) ([]domain.Challenge, error)
	// PubDetail C端: 已发布挑战详情,未发布或不存在返回 ErrChallengeNotFound
	PubDetail(ctx context.Context, id int64) (domain.Challenge, error)
}

type service struct {
	repo repository.ChallengeRepository
}

func NewService(repo repository.ChallengeRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, c domain.Challenge) (int64, error) {
	if c.Points < 0 {
		return 0, fmt.Errorf("%w: points = %d", ErrInvalidChallenge, c.Points)
	}
	if c.Status == domain.ChallengeStatusUnknown {
		c.Status = domain.ChallengeStatusUnpublished
	}
	return s.repo.Save(ctx, c)
}

func (s *service) Publish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.ChallengeStatusPublished)
}

func (s *service) Unpublish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.ChallengeStatusUnpublished)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Challenge, int64, error) {
	total, err := s.repo.Total(ctx)
	if err != nil {
		return nil, 0, err
	}
	cs, err := s.repo.List(ctx, offset, limit)
	return cs, total, err
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Challenge, error) {
	return s.repo.GetById(ctx, id)
}

func (s *service) PubList(ctx context.Context, offset, limit int) ([]domain.Challenge, error) {
	return s.repo.PubList(ctx, offset, limit)
}

func (s *service) PubDetail(ctx context.Context, id int64) (domain.Challenge, error) {
	c, err := s.repo.GetPubById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Challenge{}, ErrChallengeNotFound
	}
	return c, err
}
