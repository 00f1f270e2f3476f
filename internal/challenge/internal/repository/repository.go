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
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository/cache"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

type ChallengeRepository interface {
	Save(ctx context.Context, c domain.Challenge) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Challenge, error)
	List(ctx context.Context, offset, limit int) ([]domain.Challenge, error)
	Total(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ChallengeStatus) error
	PubList(ctx context.Context, offset, limit int) ([]domain.Challenge, error)
	GetPubById(ctx context.Context, id int64) (domain.Challenge, error)
}

type challengeRepository struct {
	dao    dao.ChallengeDAO
	cache  cache.ChallengeCache
	logger *elog.Component
}

func NewChallengeRepository(d dao.ChallengeDAO, c cache.ChallengeCache) ChallengeRepository {
	return &challengeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *challengeRepository) Save(ctx context.Context, c domain.Challenge) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(c))
	if err != nil {
		return 0, err
	}
	// 内容变更之后缓存里的旧数据不能再用了
	if err := r.cache.DelPubDetail(ctx, id); err != nil {
		r.logger.Error("删除挑战缓存失败",
			elog.FieldErr(err), elog.Int64("cid", id))
	}
	return id, nil
}

func (r *challengeRepository) GetById(ctx context.Context, id int64) (domain.Challenge, error) {
	c, err := r.dao.GetById(ctx, id)
	return r.toDomain(c), err
}

func (r *challengeRepository) List(ctx context.Context, offset, limit int) ([]domain.Challenge, error) {
	cs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Challenge) domain.Challenge {
		return r.toDomain(src)
	}), nil
}

func (r *challengeRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *challengeRepository) UpdateStatus(ctx context.Context, id int64, status domain.ChallengeStatus) error {
	err := r.dao.UpdateStatus(ctx, id, status.ToUint8())
	if err != nil {
		return err
	}
	if err := r.cache.DelPubDetail(ctx, id); err != nil {
		r.logger.Error("删除挑战缓存失败",
			elog.FieldErr(err), elog.Int64("cid", id))
	}
	return nil
}

func (r *challengeRepository) PubList(ctx context.Context, offset, limit int) ([]domain.Challenge, error) {
	cs, err := r.dao.PubList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Challenge) domain.Challenge {
		return r.toDomain(src)
	}), nil
}

func (r *challengeRepository) GetPubById(ctx context.Context, id int64) (domain.Challenge, error) {
	c, err := r.cache.GetPubDetail(ctx, id)
	if err == nil {
		return c, nil
	}
	entity, err := r.dao.GetPubById(ctx, id)
	if err != nil {
		return domain.Challenge{}, err
	}
	c = r.toDomain(entity)
	if err := r.cache.SetPubDetail(ctx, c); err != nil {
		r.logger.Error("回写挑战缓存失败",
			elog.FieldErr(err), elog.Int64("cid", id))
	}
	return c, nil
}

func (r *challengeRepository) toEntity(c domain.Challenge) dao.Challenge {
	return dao.Challenge{
		Id:         c.Id,
		Title:      c.Title,
		Content:    c.Desc,
		Difficulty: c.Difficulty,
		Points:     c.Points,
		WeekNo:     c.WeekNo,
		Status:     c.Status.ToUint8(),
	}
}

func (r *challengeRepository) toDomain(c dao.Challenge) domain.Challenge {
	return domain.Challenge{
		Id:         c.Id,
		Title:      c.Title,
		Desc:       c.Content,
		Difficulty: c.Difficulty,
		Points:     c.Points,
		WeekNo:     c.WeekNo,
		Status:     domain.ChallengeStatus(c.Status),
		Utime:      c.Utime,
	}
}
