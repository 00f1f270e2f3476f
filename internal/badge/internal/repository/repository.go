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
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrBadgeAwarded   = dao.ErrBadgeAwarded
)

//go:generate mockgen -source=./repository.go -destination=./mocks/badge.mock.go -package=repomocks -typed BadgeRepository
type BadgeRepository interface {
	Save(ctx context.Context, b domain.Badge) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Badge, error)
	List(ctx context.Context, offset, limit int) ([]domain.Badge, error)
	Count(ctx context.Context) (int64, error)
	UpdateActive(ctx context.Context, id int64, active bool) error
	AutoAwardable(ctx context.Context) ([]domain.Badge, error)

	Award(ctx context.Context, ub domain.UserBadge) (int64, error)
	Revoke(ctx context.Context, uid, badgeId int64) error
	UserBadges(ctx context.Context, uid int64) ([]domain.UserBadge, error)
	AwardedIds(ctx context.Context, uid int64) ([]int64, error)
}

type badgeRepository struct {
	dao dao.BadgeDAO
}

func NewBadgeRepository(d dao.BadgeDAO) BadgeRepository {
	return &badgeRepository{dao: d}
}

func (r *badgeRepository) Save(ctx context.Context, b domain.Badge) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(b))
}

func (r *badgeRepository) GetById(ctx context.Context, id int64) (domain.Badge, error) {
	b, err := r.dao.GetById(ctx, id)
	if err != nil {
		return domain.Badge{}, err
	}
	return r.toDomain(b), nil
}

func (r *badgeRepository) List(ctx context.Context, offset, limit int) ([]domain.Badge, error) {
	bs, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.Badge) domain.Badge {
		return r.toDomain(src)
	}), nil
}

func (r *badgeRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *badgeRepository) UpdateActive(ctx context.Context, id int64, active bool) error {
	return r.dao.UpdateActive(ctx, id, active)
}

func (r *badgeRepository) AutoAwardable(ctx context.Context) ([]domain.Badge, error) {
	bs, err := r.dao.FindAutoAwardable(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.Badge) domain.Badge {
		return r.toDomain(src)
	}), nil
}

func (r *badgeRepository) Award(ctx context.Context, ub domain.UserBadge) (int64, error) {
	return r.dao.Award(ctx, dao.UserBadge{
		Uid:       ub.Uid,
		BadgeId:   ub.BadgeId,
		AwardedBy: ub.AwardedBy,
		AwardedAt: ub.AwardedAt,
	})
}

func (r *badgeRepository) Revoke(ctx context.Context, uid, badgeId int64) error {
	return r.dao.Revoke(ctx, uid, badgeId)
}

func (r *badgeRepository) UserBadges(ctx context.Context, uid int64) ([]domain.UserBadge, error) {
	ubs, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ubs, func(idx int, src dao.UserBadge) domain.UserBadge {
		return domain.UserBadge{
			Id:        src.Id,
			Uid:       src.Uid,
			BadgeId:   src.BadgeId,
			AwardedBy: src.AwardedBy,
			AwardedAt: src.AwardedAt,
		}
	}), nil
}

func (r *badgeRepository) AwardedIds(ctx context.Context, uid int64) ([]int64, error) {
	return r.dao.AwardedIds(ctx, uid)
}

func (r *badgeRepository) toEntity(b domain.Badge) dao.Badge {
	return dao.Badge{
		Id:           b.Id,
		Name:         b.Name,
		Description:  b.Desc,
		Icon:         b.Icon,
		CriteriaType: b.Criteria.Type.ToUint8(),
		Threshold:    b.Criteria.Threshold,
		AutoAward:    b.AutoAward,
		Active:       b.Active,
	}
}

func (r *badgeRepository) toDomain(b dao.Badge) domain.Badge {
	return domain.Badge{
		Id:   b.Id,
		Name: b.Name,
		Desc: b.Description,
		Icon: b.Icon,
		Criteria: domain.BadgeCriteria{
			Type:      domain.CriteriaType(b.CriteriaType),
			Threshold: b.Threshold,
		},
		AutoAward: b.AutoAward,
		Active:    b.Active,
		Utime:     b.Utime,
	}
}
