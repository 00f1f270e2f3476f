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

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/cache"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/submission"
)

// DefaultTopN 默认榜单长度,只有这一档走缓存
const DefaultTopN = 50

//go:generate mockgen -source=./service.go -destination=./mocks/ranking.mock.go -package=svcmocks -typed Service
type Service interface {
	// TopN n 为 0 的时候返回所有有积分的账户
	TopN(ctx context.Context, n int) ([]domain.Rank, error)
	InvalidateTop(ctx context.Context) error
}

type service struct {
	submissionSvc submission.Service
	cache         cache.RankingCache
	logger        *elog.Component
}

func NewService(submissionSvc submission.Service, c cache.RankingCache) Service {
	return &service{
		submissionSvc: submissionSvc,
		cache:         c,
		logger:        elog.DefaultLogger,
	}
}

func (s *service) TopN(ctx context.Context, n int) ([]domain.Rank, error) {
	if n != DefaultTopN {
		return s.load(ctx, n)
	}
	ranks, err := s.cache.GetTop(ctx)
	if err == nil {
		return ranks, nil
	}
	ranks, err = s.load(ctx, n)
	if err != nil {
		return nil, err
	}
	err = s.cache.SetTop(ctx, ranks)
	if err != nil {
		s.logger.Error("缓存榜单失败", elog.FieldErr(err))
	}
	return ranks, nil
}

func (s *service) InvalidateTop(ctx context.Context) error {
	return s.cache.DelTop(ctx)
}

func (s *service) load(ctx context.Context, n int) ([]domain.Rank, error) {
	accounts, err := s.submissionSvc.TopAccounts(ctx, n)
	if err != nil {
		return nil, err
	}
	return slice.Map(accounts, func(idx int, src submission.PointAccount) domain.Rank {
		return domain.Rank{
			Uid:             src.Uid,
			Points:          src.Total,
			LastPointUpdate: src.LastPointUpdate,
		}
	}), nil
}
