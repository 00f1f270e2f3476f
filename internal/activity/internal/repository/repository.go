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
	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./repository.go -destination=./mocks/activity.mock.go -package=repomocks -typed ActivityRepository
type ActivityRepository interface {
	Save(ctx context.Context, a domain.Activity) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Activity, error)
	List(ctx context.Context, offset, limit int) ([]domain.Activity, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus) error
	PubList(ctx context.Context, offset, limit int) ([]domain.Activity, error)

	RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error)
	MarkAttended(ctx context.Context, activityId, uid int64) error
	AttendedCount(ctx context.Context, uid int64) (int64, error)
	RsvpList(ctx context.Context, activityId int64) ([]domain.Rsvp, error)
}

type activityRepository struct {
	dao dao.ActivityDAO
}

func NewActivityRepository(d dao.ActivityDAO) ActivityRepository {
	return &activityRepository{dao: d}
}

func (r *activityRepository) Save(ctx context.Context, a domain.Activity) (int64, error) {
	return r.dao.Save(ctx, dao.Activity{
		Id:       a.Id,
		Title:    a.Title,
		Content:  a.Desc,
		Location: a.Location,
		StartAt:  a.StartAt,
	})
}

func (r *activityRepository) GetById(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := r.dao.GetById(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}
	return r.toDomain(a), nil
}

func (r *activityRepository) List(ctx context.Context, offset, limit int) ([]domain.Activity, error) {
	as, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Activity) domain.Activity {
		return r.toDomain(src)
	}), nil
}

func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *activityRepository) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *activityRepository) PubList(ctx context.Context, offset, limit int) ([]domain.Activity, error) {
	as, err := r.dao.PubList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Activity) domain.Activity {
		return r.toDomain(src)
	}), nil
}

func (r *activityRepository) RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error) {
	return r.dao.RsvpToggle(ctx, activityId, uid)
}

func (r *activityRepository) MarkAttended(ctx context.Context, activityId, uid int64) error {
	return r.dao.MarkAttended(ctx, activityId, uid)
}

func (r *activityRepository) AttendedCount(ctx context.Context, uid int64) (int64, error) {
	return r.dao.AttendedCount(ctx, uid)
}

func (r *activityRepository) RsvpList(ctx context.Context, activityId int64) ([]domain.Rsvp, error) {
	rs, err := r.dao.RsvpList(ctx, activityId)
	if err != nil {
		return nil, err
	}
	return slice.Map(rs, func(idx int, src dao.Rsvp) domain.Rsvp {
		return domain.Rsvp{
			Id:         src.Id,
			ActivityId: src.ActivityId,
			Uid:        src.Uid,
			Attended:   src.Attended,
			Utime:      src.Utime,
		}
	}), nil
}

func (r *activityRepository) toDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		Id:       a.Id,
		Title:    a.Title,
		Desc:     a.Content,
		Location: a.Location,
		StartAt:  a.StartAt,
		Status:   domain.ActivityStatus(a.Status),
		RsvpCnt:  a.RsvpCnt,
		Utime:    a.Utime,
	}
}
