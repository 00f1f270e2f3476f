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
	"time"

	"github.com/ego-component/egorm"
	"github.com/opencoderclub/clubhouse/internal/activity"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(4567)

type ActivityModuleSuite struct {
	suite.Suite
	db  *egorm.Component
	svc activity.Service
}

func (s *ActivityModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := activity.InitModule(s.db)
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *ActivityModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `activities`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `rsvps`").Error
	require.NoError(s.T(), err)
}

func (s *ActivityModuleSuite) newActivity(publish bool) int64 {
	t := s.T()
	id, err := s.svc.Save(context.Background(), activity.Activity{
		Title:    "周五黑客松",
		Desc:     "带上你的副业项目",
		Location: "活动室 301",
		StartAt:  time.Now().Add(72 * time.Hour).UnixMilli(),
	})
	require.NoError(t, err)
	if publish {
		require.NoError(t, s.svc.Publish(context.Background(), id))
	}
	return id
}

func (s *ActivityModuleSuite) Test_RsvpToggle() {
	t := s.T()
	ctx := context.Background()
	id := s.newActivity(true)

	rsvped, err := s.svc.RsvpToggle(ctx, id, uid)
	require.NoError(t, err)
	assert.True(t, rsvped)
	detail, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.RsvpCnt)

	// 再点一次是取消报名,计数退回去
	rsvped, err = s.svc.RsvpToggle(ctx, id, uid)
	require.NoError(t, err)
	assert.False(t, rsvped)
	detail, err = s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), detail.RsvpCnt)
}

func (s *ActivityModuleSuite) Test_Rsvp_UnpublishedActivity() {
	t := s.T()
	id := s.newActivity(false)
	_, err := s.svc.RsvpToggle(context.Background(), id, uid)
	assert.ErrorIs(t, err, activity.ErrActivityNotFound)
}

func (s *ActivityModuleSuite) Test_CheckIn() {
	t := s.T()
	ctx := context.Background()
	id := s.newActivity(true)

	// 没报名不能签到
	err := s.svc.CheckIn(ctx, id, uid)
	assert.ErrorIs(t, err, activity.ErrRsvpNotFound)

	_, err = s.svc.RsvpToggle(ctx, id, uid)
	require.NoError(t, err)
	require.NoError(t, s.svc.CheckIn(ctx, id, uid))

	cnt, err := s.svc.AttendedCount(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestActivityModule(t *testing.T) {
	suite.Run(t, new(ActivityModuleSuite))
}
