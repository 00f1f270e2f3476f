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
	"github.com/opencoderclub/clubhouse/internal/member"
	"github.com/opencoderclub/clubhouse/internal/member/internal/domain"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = int64(3456)

type MemberModuleSuite struct {
	suite.Suite
	db  *egorm.Component
	svc member.Service
}

func (s *MemberModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := member.InitModule(s.db, testioc.InitMQ())
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *MemberModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `members`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `member_records`").Error
	require.NoError(s.T(), err)
}

func (s *MemberModuleSuite) activate(key string, days uint64) error {
	return s.svc.ActivateMembership(context.Background(), domain.Member{
		Uid: uid,
		Records: []domain.MemberRecord{
			{
				Key:   key,
				Days:  days,
				Biz:   domain.BizRegistration,
				BizId: uid,
				Desc:  "新用户注册福利",
			},
		},
	})
}

func (s *MemberModuleSuite) Test_Activate_FirstTime() {
	t := s.T()
	require.NoError(t, s.activate("registration:3456", 365))

	info, err := s.svc.GetMembershipInfo(context.Background(), uid)
	require.NoError(t, err)
	assert.True(t, info.EndAt > time.Now().UnixMilli())
	assert.Len(t, info.Records, 1)
}

func (s *MemberModuleSuite) Test_Activate_RenewalExtends() {
	t := s.T()
	require.NoError(t, s.activate("registration:3456", 365))
	before, err := s.svc.GetMembershipInfo(context.Background(), uid)
	require.NoError(t, err)

	require.NoError(t, s.activate("renewal:3456:1", 30))
	after, err := s.svc.GetMembershipInfo(context.Background(), uid)
	require.NoError(t, err)
	// 没过期的续约要接在原截止日期后面
	assert.Equal(t, before.EndAt+30*24*time.Hour.Milliseconds(), after.EndAt)
}

func (s *MemberModuleSuite) Test_Activate_DuplicateKey() {
	t := s.T()
	require.NoError(t, s.activate("registration:3456", 365))
	err := s.activate("registration:3456", 365)
	assert.ErrorIs(t, err, member.ErrDuplicatedMemberRecord)

	info, err := s.svc.GetMembershipInfo(context.Background(), uid)
	require.NoError(t, err)
	assert.Len(t, info.Records, 1)
}

func TestMemberModule(t *testing.T) {
	suite.Run(t, new(MemberModuleSuite))
}
