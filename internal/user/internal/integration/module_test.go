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
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/opencoderclub/clubhouse/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserModuleSuite struct {
	suite.Suite
	db  *egorm.Component
	svc user.UserService
}

func (s *UserModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	idgen, err := snowflake.NewNodeGenerator(1)
	require.NoError(s.T(), err)
	m, err := user.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(), idgen)
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *UserModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *UserModuleSuite) Test_Register() {
	t := s.T()
	ctx := context.Background()
	u, err := s.svc.Register(ctx, "abc@opencoderclub.org", "hello#world123")
	require.NoError(t, err)
	// 雪花 ID 在 insert 回调里生成
	assert.NotZero(t, u.Id)
	assert.NotEmpty(t, u.SN)
	assert.Equal(t, user.RoleMember, u.Role)

	// 邮箱重复
	_, err = s.svc.Register(ctx, "abc@opencoderclub.org", "another#pwd456")
	assert.ErrorIs(t, err, user.ErrUserDuplicate)
}

func (s *UserModuleSuite) Test_Login() {
	t := s.T()
	ctx := context.Background()
	u, err := s.svc.Register(ctx, "login@opencoderclub.org", "hello#world123")
	require.NoError(t, err)

	logged, err := s.svc.Login(ctx, "login@opencoderclub.org", "hello#world123")
	require.NoError(t, err)
	assert.Equal(t, u.Id, logged.Id)

	_, err = s.svc.Login(ctx, "login@opencoderclub.org", "wrong#pwd")
	assert.ErrorIs(t, err, user.ErrInvalidUserOrPassword)
	// 用户不存在和密码错误返回同一个错误
	_, err = s.svc.Login(ctx, "nobody@opencoderclub.org", "hello#world123")
	assert.ErrorIs(t, err, user.ErrInvalidUserOrPassword)
}

func (s *UserModuleSuite) Test_UpdateProfile() {
	t := s.T()
	ctx := context.Background()
	u, err := s.svc.Register(ctx, "profile@opencoderclub.org", "hello#world123")
	require.NoError(t, err)

	err = s.svc.UpdateNonSensitiveInfo(ctx, user.User{
		Id:       u.Id,
		Nickname: "隔壁老王",
		Avatar:   "https://cdn.opencoderclub.org/avatar/1.png",
	})
	require.NoError(t, err)

	profile, err := s.svc.Profile(ctx, u.Id)
	require.NoError(t, err)
	assert.Equal(t, "隔壁老王", profile.Nickname)
	assert.Equal(t, "https://cdn.opencoderclub.org/avatar/1.png", profile.Avatar)
	// 邮箱不因为更新昵称而变化
	assert.Equal(t, "profile@opencoderclub.org", profile.Email)
}

func TestUserModule(t *testing.T) {
	suite.Run(t, new(UserModuleSuite))
}
