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
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/repository"
)

var (
	ErrBadgeNotFound = errors.New("徽章不存在")
	ErrBadgeAwarded  = repository.ErrBadgeAwarded
	// ErrInvalidCriteria 阈值不允许是负数
	ErrInvalidCriteria = errors.New("非法的发放条件")
	// ErrCriteriaLocked 启用中的徽章发放条件不允许改,要改先停用
	ErrCriteriaLocked = errors.New("启用中的徽章不允许修改发放条件")
)

//go:generate mockgen -source=./service.go -destination=./mocks/badge.mock.go -package=svcmocks -typed Service
type Service interface {
	Save(ctx context.Context, b domain.Badge) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Badge, error)
	List(ctx context.Context, offset, limit int) ([]domain.Badge, int64, error)
	ToggleActive(ctx context.Context, id int64, active bool) error

	// EvaluateAndAward 对照统计数据评估所有启用的自动徽章，
	// 返回本次新发放的徽章 ID。已经持有的徽章直接跳过，
	// 并发导致的重复发放当作已持有处理。
	EvaluateAndAward(ctx context.Context, uid int64, stats domain.UserStats) ([]int64, error)
	Award(ctx context.Context, uid, badgeId int64, operator int64) error
	Revoke(ctx context.Context, uid, badgeId int64) error
	UserBadges(ctx context.Context, uid int64) ([]domain.UserBadge, error)
}

type service struct {
	repo   repository.BadgeRepository
	logger *elog.Component
}

func NewService(repo repository.BadgeRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, b domain.Badge) (int64, error) {
	if b.Criteria.Threshold < 0 {
		return 0, fmt.Errorf("%w: threshold = %d", ErrInvalidCriteria, b.Criteria.Threshold)
	}
	if b.Id > 0 {
		old, err := s.repo.GetById(ctx, b.Id)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			// 带 id 的新建,直接落库
		case err != nil:
			return 0, err
		case old.Active && old.Criteria != b.Criteria:
			return 0, fmt.Errorf("%w: id = %d", ErrCriteriaLocked, b.Id)
		}
	}
	return s.repo.Save(ctx, b)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Badge, error) {
	b, err := s.repo.GetById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Badge{}, fmt.Errorf("%w: id = %d", ErrBadgeNotFound, id)
	}
	return b, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Badge, int64, error) {
	bs, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	cnt, err := s.repo.Count(ctx)
	return bs, cnt, err
}

func (s *service) ToggleActive(ctx context.Context, id int64, active bool) error {
	return s.repo.UpdateActive(ctx, id, active)
}

func (s *service) EvaluateAndAward(ctx context.Context, uid int64, stats domain.UserStats) ([]int64, error) {
	badges, err := s.repo.AutoAwardable(ctx)
	if err != nil {
		return nil, err
	}
	awarded, err := s.repo.AwardedIds(ctx, uid)
	if err != nil {
		return nil, err
	}
	held := slice.ToMapV(awarded, func(id int64) (int64, struct{}) {
		return id, struct{}{}
	})
	newly := make([]int64, 0, len(badges))
	now := time.Now().UnixMilli()
	for _, b := range badges {
		if _, ok := held[b.Id]; ok {
			continue
		}
		if !b.Criteria.Match(stats) {
			continue
		}
		_, err = s.repo.Award(ctx, domain.UserBadge{
			Uid:       uid,
			BadgeId:   b.Id,
			AwardedBy: domain.AwardedByAuto,
			AwardedAt: now,
		})
		switch {
		case err == nil:
			newly = append(newly, b.Id)
		case errors.Is(err, repository.ErrBadgeAwarded):
			// 并发评估撞上了唯一索引，等同于已持有
		default:
			// 单枚徽章发放失败不影响其它徽章，下次评估会补上
			s.logger.Error("发放徽章失败",
				elog.FieldErr(err),
				elog.Int64("uid", uid),
				elog.Int64("badge", b.Id),
			)
		}
	}
	return newly, nil
}

func (s *service) Award(ctx context.Context, uid, badgeId int64, operator int64) error {
	_, err := s.repo.GetById(ctx, badgeId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: id = %d", ErrBadgeNotFound, badgeId)
	}
	if err != nil {
		return err
	}
	_, err = s.repo.Award(ctx, domain.UserBadge{
		Uid:       uid,
		BadgeId:   badgeId,
		AwardedBy: strconv.FormatInt(operator, 10),
		AwardedAt: time.Now().UnixMilli(),
	})
	return err
}

func (s *service) Revoke(ctx context.Context, uid, badgeId int64) error {
	return s.repo.Revoke(ctx, uid, badgeId)
}

func (s *service) UserBadges(ctx context.Context, uid int64) ([]domain.UserBadge, error) {
	return s.repo.UserBadges(ctx, uid)
}
