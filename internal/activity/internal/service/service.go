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

	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/repository"
)

var (
	ErrActivityNotFound = errors.New("活动不存在或未发布")
	// ErrRsvpNotFound 签到时用户根本没报名
	ErrRsvpNotFound = errors.New("未报名该活动")
)

//go:generate mockgen -source=./service.go -destination=./mocks/activity.mock.go -package=svcmocks -typed Service
type Service interface {
	Save(ctx context.Context, a domain.Activity) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Activity, error)
	List(ctx context.Context, offset, limit int) ([]domain.Activity, int64, error)
	Publish(ctx context.Context, id int64) error
	Unpublish(ctx context.Context, id int64) error
	PubList(ctx context.Context, offset, limit int) ([]domain.Activity, error)

	// RsvpToggle 报名或者取消报名,返回切换之后是否处于已报名状态
	RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error)
	CheckIn(ctx context.Context, activityId, uid int64) error
	AttendedCount(ctx context.Context, uid int64) (int64, error)
	Attendees(ctx context.Context, activityId int64) ([]domain.Rsvp, error)
}

type service struct {
	repo repository.ActivityRepository
}

func NewService(repo repository.ActivityRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, a domain.Activity) (int64, error) {
	return s.repo.Save(ctx, a)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := s.repo.GetById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Activity{}, fmt.Errorf("%w: id = %d", ErrActivityNotFound, id)
	}
	return a, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Activity, int64, error) {
	as, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	cnt, err := s.repo.Count(ctx)
	return as, cnt, err
}

func (s *service) Publish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.ActivityStatusPublished)
}

func (s *service) Unpublish(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.ActivityStatusUnpublished)
}

func (s *service) PubList(ctx context.Context, offset, limit int) ([]domain.Activity, error) {
	return s.repo.PubList(ctx, offset, limit)
}

func (s *service) RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error) {
	a, err := s.repo.GetById(ctx, activityId)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return false, fmt.Errorf("%w: id = %d", ErrActivityNotFound, activityId)
	}
	if err != nil {
		return false, err
	}
	if !a.Published() {
		return false, fmt.Errorf("%w: id = %d", ErrActivityNotFound, activityId)
	}
	return s.repo.RsvpToggle(ctx, activityId, uid)
}

func (s *service) CheckIn(ctx context.Context, activityId, uid int64) error {
	err := s.repo.MarkAttended(ctx, activityId, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w: activity = %d, uid = %d", ErrRsvpNotFound, activityId, uid)
	}
	return err
}

func (s *service) AttendedCount(ctx context.Context, uid int64) (int64, error) {
	return s.repo.AttendedCount(ctx, uid)
}

func (s *service) Attendees(ctx context.Context, activityId int64) ([]domain.Rsvp, error) {
	return s.repo.RsvpList(ctx, activityId)
}
