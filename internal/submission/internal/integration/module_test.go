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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/submission"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/repository/dao"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const (
	uid      = int64(1234)
	reviewer = int64(8888)
)

type SubmissionModuleSuite struct {
	suite.Suite
	db        *egorm.Component
	svc       submission.Service
	chSvc     challenge.Service
	badgeSvc  badge.Service
	ledgerDAO dao.LedgerDAO
}

func (s *SubmissionModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	idgen, err := snowflake.NewNodeGenerator(1)
	require.NoError(s.T(), err)

	chModule, err := challenge.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	s.chSvc = chModule.Svc
	badgeModule, err := badge.InitModule(s.db)
	require.NoError(s.T(), err)
	s.badgeSvc = badgeModule.Svc
	actModule, err := activity.InitModule(s.db)
	require.NoError(s.T(), err)
	prjModule, err := project.InitModule(s.db, idgen)
	require.NoError(s.T(), err)

	m, err := submission.InitModule(s.db, q, idgen, chModule, badgeModule, actModule, prjModule)
	require.NoError(s.T(), err)
	s.svc = m.Svc
	s.ledgerDAO = dao.NewLedgerGORMDAO(s.db)
}

func (s *SubmissionModuleSuite) TearDownTest() {
	for _, table := range []string{
		"submissions", "point_accounts", "point_logs",
		"challenges", "badges", "user_badges",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *SubmissionModuleSuite) newChallenge(points int64, publish bool) int64 {
	t := s.T()
	id, err := s.chSvc.Save(context.Background(), challenge.Challenge{
		Title:      "两数之和",
		Desc:       "经典热身题",
		Difficulty: 1,
		Points:     points,
		WeekNo:     1,
	})
	require.NoError(t, err)
	if publish {
		require.NoError(t, s.chSvc.Publish(context.Background(), id))
	}
	return id
}

func (s *SubmissionModuleSuite) submit(challengeId int64) int64 {
	t := s.T()
	id, err := s.svc.Submit(context.Background(), submission.Submission{
		ChallengeId: challengeId,
		Uid:         uid,
		Code:        "func twoSum() {}",
		Language:    "go",
	})
	require.NoError(t, err)
	return id
}

func (s *SubmissionModuleSuite) Test_Submit_UnpublishedChallenge() {
	t := s.T()
	chId := s.newChallenge(30, false)
	_, err := s.svc.Submit(context.Background(), submission.Submission{
		ChallengeId: chId,
		Uid:         uid,
		Code:        "package main",
		Language:    "go",
	})
	assert.ErrorIs(t, err, submission.ErrChallengeNotFound)
}

func (s *SubmissionModuleSuite) Test_Resubmit_KeepsOneRecord() {
	t := s.T()
	chId := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(context.Background(), uid))

	first := s.submit(chId)
	require.NoError(t, s.svc.Review(context.Background(), first, domain.SubmissionStatusFail, reviewer, "边界条件没处理"))

	// 重复提交要落在同一条记录上,并且状态重置回待评审
	second := s.submit(chId)
	assert.Equal(t, first, second)
	sub, err := s.svc.Detail(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
}

func (s *SubmissionModuleSuite) Test_Review_IdempotentPass() {
	t := s.T()
	ctx := context.Background()
	chId := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subId := s.submit(chId)

	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, "好"))
	account, err := s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(30), account.Total)

	// 重复判同一个结果,积分不动,流水不加
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, "好"))
	account, err = s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(30), account.Total)
	logs, err := s.ledgerDAO.FindLogsByUid(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func (s *SubmissionModuleSuite) Test_Review_Correction() {
	t := s.T()
	ctx := context.Background()
	chId := s.newChallenge(50, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subId := s.submit(chId)

	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, ""))
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusFail, reviewer, "复查发现抄的"))

	account, err := s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Total)

	// 流水净变动必须等于当前余额
	logs, err := s.ledgerDAO.FindLogsByUid(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	var sum int64
	for _, l := range logs {
		sum += l.Change
	}
	assert.Equal(t, account.Total, sum)
}

func (s *SubmissionModuleSuite) Test_Review_FloorAtZero() {
	t := s.T()
	ctx := context.Background()
	chId := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subId := s.submit(chId)
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, ""))

	// 人为把余额压到比扣回额度低,改判之后余额必须停在 0 而不是负数
	err := s.db.Exec("UPDATE `point_accounts` SET total = 10 WHERE uid = ?", uid).Error
	require.NoError(t, err)
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusFail, reviewer, "改判"))

	account, err := s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Total)
}

func (s *SubmissionModuleSuite) Test_Review_ConcurrentSubmissions() {
	t := s.T()
	ctx := context.Background()
	chA := s.newChallenge(50, true)
	chB := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subA := s.submit(chA)
	subB := s.submit(chB)

	// 两个评审员同时判同一个人的两条提交,加分一条都不能丢
	var eg errgroup.Group
	eg.Go(func() error {
		return s.svc.Review(ctx, subA, domain.SubmissionStatusPass, reviewer, "")
	})
	eg.Go(func() error {
		return s.svc.Review(ctx, subB, domain.SubmissionStatusPass, reviewer+1, "")
	})
	require.NoError(t, eg.Wait())

	account, err := s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(80), account.Total)
	logs, err := s.ledgerDAO.FindLogsByUid(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func (s *SubmissionModuleSuite) Test_Review_RetryBudgetExhausted() {
	t := s.T()
	ctx := context.Background()
	chId := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subId := s.submit(chId)

	// 预埋一条去重 key 相同的流水,评审事务每次提交都撞唯一索引,
	// 重试打满之后对外报冲突
	now := time.Now().UnixMilli()
	err := s.db.Create(&dao.PointLog{
		Key:          fmt.Sprintf("review:%d:2", subId),
		Uid:          uid + 100,
		SubmissionId: subId,
		Desc:         "占位",
		Ctime:        now,
		Utime:        now,
	}).Error
	require.NoError(t, err)

	err = s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, "")
	assert.ErrorIs(t, err, submission.ErrReviewConflict)

	// 冲突之后必须一点都没落库: 状态还在待评审,积分一分没加
	sub, err := s.svc.Detail(ctx, subId)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionStatusPending, sub.Status)
	account, err := s.svc.Account(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.Total)
}

func (s *SubmissionModuleSuite) Test_Review_AwardsBadge() {
	t := s.T()
	ctx := context.Background()
	_, err := s.badgeSvc.Save(ctx, badge.Badge{
		Name:      "首胜",
		Desc:      "第一次通过挑战",
		Criteria:  badge.BadgeCriteria{Type: badge.CriteriaTypeChallenges, Threshold: 1},
		AutoAward: true,
		Active:    true,
	})
	require.NoError(t, err)

	chId := s.newChallenge(30, true)
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	subId := s.submit(chId)
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, ""))

	held, err := s.badgeSvc.UserBadges(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, held, 1)

	// 再评一遍,徽章不能重复发
	require.NoError(t, s.svc.Review(ctx, subId, domain.SubmissionStatusPass, reviewer, ""))
	held, err = s.badgeSvc.UserBadges(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func (s *SubmissionModuleSuite) Test_TopAccounts_Ordering() {
	t := s.T()
	ctx := context.Background()
	chA := s.newChallenge(50, true)
	chB := s.newChallenge(30, true)

	// 用户 1 先拿 50,用户 2 后拿 50,并列时先到先得
	other := uid + 1
	require.NoError(t, s.svc.InitAccount(ctx, uid))
	require.NoError(t, s.svc.InitAccount(ctx, other))

	subA, err := s.svc.Submit(ctx, submission.Submission{ChallengeId: chA, Uid: uid, Code: "a", Language: "go"})
	require.NoError(t, err)
	require.NoError(t, s.svc.Review(ctx, subA, domain.SubmissionStatusPass, reviewer, ""))
	time.Sleep(5 * time.Millisecond)
	subB, err := s.svc.Submit(ctx, submission.Submission{ChallengeId: chA, Uid: other, Code: "b", Language: "go"})
	require.NoError(t, err)
	require.NoError(t, s.svc.Review(ctx, subB, domain.SubmissionStatusPass, reviewer, ""))

	subC, err := s.svc.Submit(ctx, submission.Submission{ChallengeId: chB, Uid: other, Code: "c", Language: "go"})
	require.NoError(t, err)
	require.NoError(t, s.svc.Review(ctx, subC, domain.SubmissionStatusFail, reviewer, ""))

	accounts, err := s.svc.TopAccounts(ctx, 10)
	require.NoError(t, err)
	uids := slice.Map(accounts, func(idx int, src submission.PointAccount) int64 {
		return src.Uid
	})
	assert.Equal(t, []int64{uid, other}, uids)
}

func TestSubmissionModule(t *testing.T) {
	suite.Run(t, new(SubmissionModuleSuite))
}
