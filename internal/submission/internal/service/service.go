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

	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/event"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrChallengeNotFound  = challenge.ErrChallengeNotFound
	ErrSubmissionNotFound = errors.New("提交记录不存在")
	ErrAccountNotFound    = repository.ErrAccountNotFound
	ErrInvalidDecision    = errors.New("非法的评审决定")
	// ErrReviewConflict 重试次数用完还在冲突,对调用方来说是可重试的瞬时失败,
	// 本次评审没有落库,一点都没有
	ErrReviewConflict = errors.New("评审并发冲突")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/submission.mock.go -package=submissionmocks -typed Service
type Service interface {
	// Submit 提交或重新提交挑战的解答,返回提交记录ID。
	// 挑战不存在或未发布时返回 ErrChallengeNotFound。
	Submit(ctx context.Context, sub domain.Submission) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Submission, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error)
	PendingList(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error)

	// Review 对一条提交做出评审决定。
	// 状态流转和积分变动在一个事务里落库,要么全可见要么全不可见,
	// 撞上并发写时内部有限次重试,重试耗尽返回 ErrReviewConflict。
	Review(ctx context.Context, submissionId int64, decision domain.SubmissionStatus, reviewerId int64, feedback string) error

	InitAccount(ctx context.Context, uid int64) error
	Account(ctx context.Context, uid int64) (domain.PointAccount, error)
	// TopAccounts 排行榜模块用,n<=0 表示全部积分大于0的账户
	TopAccounts(ctx context.Context, n int) ([]domain.PointAccount, error)
}

type service struct {
	repo         repository.SubmissionRepository
	challengeSvc challenge.Service
	badgeSvc     badge.Service
	activitySvc  activity.Service
	projectSvc   project.Service
	producer     event.PointsChangeEventProducer
	idgen        snowflake.Generator
	logger       *elog.Component

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
}

func NewService(repo repository.SubmissionRepository,
	challengeSvc challenge.Service,
	badgeSvc badge.Service,
	activitySvc activity.Service,
	projectSvc project.Service,
	producer event.PointsChangeEventProducer,
	idgen snowflake.Generator) Service {
	return &service{
		repo:            repo,
		challengeSvc:    challengeSvc,
		badgeSvc:        badgeSvc,
		activitySvc:     activitySvc,
		projectSvc:      projectSvc,
		producer:        producer,
		idgen:           idgen,
		logger:          elog.DefaultLogger,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     time.Second,
		maxRetries:      5,
	}
}

func (s *service) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	c, err := s.challengeSvc.PubDetail(ctx, sub.ChallengeId)
	if err != nil {
		return 0, err
	}
	// 奖励积分在提交时刻快照,后面挑战改了积分也不影响已有提交
	sub.Points = c.Points
	sub.Id = s.idgen.Generate().Int64()
	return s.repo.Save(ctx, sub)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Submission, error) {
	sub, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Submission{}, fmt.Errorf("%w: id = %d", ErrSubmissionNotFound, id)
	}
	return sub, err
}

func (s *service) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}

func (s *service) PendingList(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error) {
	return s.repo.PendingList(ctx, offset, limit)
}

func (s *service) Review(ctx context.Context, submissionId int64, decision domain.SubmissionStatus, reviewerId int64, feedback string) error {
	if decision != domain.SubmissionStatusPass && decision != domain.SubmissionStatusFail {
		return fmt.Errorf("%w: %d", ErrInvalidDecision, decision)
	}
	reviewed, err := s.applyWithRetry(ctx, submissionId, decision, reviewerId, feedback)
	if err != nil {
		return err
	}

	if reviewed.Delta != 0 {
		evt := event.PointsChangeEvent{
			Uid:          reviewed.Uid,
			SubmissionId: submissionId,
			Change:       reviewed.Delta,
			Balance:      reviewed.Balance,
		}
		if err := s.producer.Produce(ctx, evt); err != nil {
			s.logger.Error("发送积分变动消息失败",
				elog.FieldErr(err),
				elog.Any("event", evt),
			)
		}
	}

	// 评审成功之后顺手评估徽章。
	// 发徽章失败不影响评审结果,下次评审会再评一遍
	s.awardBadges(ctx, reviewed)
	return nil
}

func (s *service) applyWithRetry(ctx context.Context, submissionId int64, decision domain.SubmissionStatus, reviewerId int64, feedback string) (domain.Reviewed, error) {
	strategy, _ := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	for {
		reviewed, err := s.repo.ApplyReview(ctx, submissionId, decision, reviewerId, feedback)
		if err == nil {
			return reviewed, nil
		}
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domain.Reviewed{}, fmt.Errorf("%w: id = %d", ErrSubmissionNotFound, submissionId)
		}
		if !errors.Is(err, repository.ErrConcurrentModification) &&
			!errors.Is(err, repository.ErrDuplicatedPointLog) {
			return domain.Reviewed{}, err
		}
		next, ok := strategy.Next()
		if !ok {
			return domain.Reviewed{}, fmt.Errorf("%w: id = %d", ErrReviewConflict, submissionId)
		}
		time.Sleep(next)
	}
}

func (s *service) awardBadges(ctx context.Context, reviewed domain.Reviewed) {
	stats, err := s.collectStats(ctx, reviewed.Uid, reviewed.Balance)
	if err != nil {
		s.logger.Error("聚合用户统计失败",
			elog.FieldErr(err),
			elog.Int64("uid", reviewed.Uid),
		)
		return
	}
	newly, err := s.badgeSvc.EvaluateAndAward(ctx, reviewed.Uid, stats)
	if err != nil {
		s.logger.Error("评估徽章失败",
			elog.FieldErr(err),
			elog.Int64("uid", reviewed.Uid),
		)
		return
	}
	if len(newly) > 0 {
		s.logger.Info("自动发放徽章",
			elog.Int64("uid", reviewed.Uid),
			elog.Any("badges", newly),
		)
	}
}

func (s *service) collectStats(ctx context.Context, uid int64, balance int64) (badge.UserStats, error) {
	stats := badge.UserStats{
		TotalPoints: balance,
	}
	var eg errgroup.Group
	eg.Go(func() error {
		var er error
		stats.CompletedChallenges, er = s.repo.CountPassedByUid(ctx, uid)
		return er
	})
	eg.Go(func() error {
		var er error
		stats.EventsAttended, er = s.activitySvc.AttendedCount(ctx, uid)
		return er
	})
	eg.Go(func() error {
		var er error
		stats.ProjectsSubmitted, er = s.projectSvc.CountByUid(ctx, uid)
		return er
	})
	return stats, eg.Wait()
}

func (s *service) InitAccount(ctx context.Context, uid int64) error {
	return s.repo.CreateAccount(ctx, uid)
}

func (s *service) Account(ctx context.Context, uid int64) (domain.PointAccount, error) {
	a, err := s.repo.AccountByUid(ctx, uid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.PointAccount{}, fmt.Errorf("%w: uid = %d", ErrAccountNotFound, uid)
	}
	return a, err
}

func (s *service) TopAccounts(ctx context.Context, n int) ([]domain.PointAccount, error) {
	return s.repo.TopAccounts(ctx, n)
}
