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
	"testing"

	"github.com/ego-component/egorm"
	"github.com/opencoderclub/clubhouse/internal/badge"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(2345)

type BadgeModuleSuite struct {
	suite.Suite
	db  *egorm.Component
	svc badge.Service
}

func (s *BadgeModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := badge.InitModule(s.db)
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *BadgeModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `badges`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `user_badges`").Error
	require.NoError(s.T(), err)
}

func (s *BadgeModuleSuite) newBadge(criteria badge.BadgeCriteria, autoAward bool) int64 {
	t := s.T()
	id, err := s.svc.Save(context.Background(), badge.Badge{
		Name:      "百分俱乐部",
		Desc:      "积分到100",
		Criteria:  criteria,
		AutoAward: autoAward,
		Active:    true,
	})
	require.NoError(t, err)
	return id
}

func (s *BadgeModuleSuite) Test_Save_NegativeThreshold() {
	t := s.T()
	_, err := s.svc.Save(context.Background(), badge.Badge{
		Name:      "负阈值",
		Criteria:  badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: -1},
		AutoAward: true,
		Active:    true,
	})
	assert.ErrorIs(t, err, badge.ErrInvalidCriteria)
}

func (s *BadgeModuleSuite) Test_Save_CriteriaLockedWhileActive() {
	t := s.T()
	ctx := context.Background()
	id := s.newBadge(badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: 100}, true)

	// 启用中不允许改发放条件,改名不受影响
	b, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	b.Criteria.Threshold = 200
	_, err = s.svc.Save(ctx, b)
	assert.ErrorIs(t, err, badge.ErrCriteriaLocked)

	b, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	b.Name = "两百俱乐部"
	_, err = s.svc.Save(ctx, b)
	require.NoError(t, err)

	// 停用之后就可以改了
	require.NoError(t, s.svc.ToggleActive(ctx, id, false))
	b, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	b.Criteria.Threshold = 200
	_, err = s.svc.Save(ctx, b)
	require.NoError(t, err)
}

func (s *BadgeModuleSuite) Test_EvaluateAndAward_Idempotent() {
	t := s.T()
	ctx := context.Background()
	id := s.newBadge(badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: 100}, true)

	stats := badge.UserStats{TotalPoints: 120}
	newly, err := s.svc.EvaluateAndAward(ctx, uid, stats)
	require.NoError(t, err)
	assert.Equal(t, []int64{id}, newly)

	// 第二次评估,已持有的不再发
	newly, err = s.svc.EvaluateAndAward(ctx, uid, stats)
	require.NoError(t, err)
	assert.Empty(t, newly)

	held, err := s.svc.UserBadges(ctx, uid)
	require.NoError(t, err)
	assert.Len(t, held, 1)
}

func (s *BadgeModuleSuite) Test_EvaluateAndAward_BelowThreshold() {
	t := s.T()
	ctx := context.Background()
	s.newBadge(badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: 100}, true)

	newly, err := s.svc.EvaluateAndAward(ctx, uid, badge.UserStats{TotalPoints: 99})
	require.NoError(t, err)
	assert.Empty(t, newly)
}

func (s *BadgeModuleSuite) Test_EvaluateAndAward_SkipsManualBadge() {
	t := s.T()
	ctx := context.Background()
	s.newBadge(badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: 1}, false)

	newly, err := s.svc.EvaluateAndAward(ctx, uid, badge.UserStats{TotalPoints: 1000})
	require.NoError(t, err)
	assert.Empty(t, newly)
}

func (s *BadgeModuleSuite) Test_ManualAward_Duplicate() {
	t := s.T()
	ctx := context.Background()
	id := s.newBadge(badge.BadgeCriteria{Type: badge.CriteriaTypePoints, Threshold: 100}, false)

	const operator = int64(1)
	require.NoError(t, s.svc.Award(ctx, uid, id, operator))
	err := s.svc.Award(ctx, uid, id, operator)
	assert.ErrorIs(t, err, badge.ErrBadgeAwarded)
}

func TestBadgeModule(t *testing.T) {
	suite.Run(t, new(BadgeModuleSuite))
}
