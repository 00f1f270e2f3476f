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

	"github.com/ego-component/egorm"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ChallengeModuleSuite struct {
	suite.Suite
	db  *egorm.Component
	svc challenge.Service
}

func (s *ChallengeModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := challenge.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	s.svc = m.Svc
}

func (s *ChallengeModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `challenges`").Error
	require.NoError(s.T(), err)
}

func (s *ChallengeModuleSuite) Test_Save_Update() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Save(ctx, challenge.Challenge{
		Title:      "实现一个 LRU",
		Desc:       "并发安全,O(1)",
		Difficulty: 3,
		Points:     30,
		WeekNo:     202608,
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	// 编辑不会生成新记录
	id2, err := s.svc.Save(ctx, challenge.Challenge{
		Id:         id,
		Title:      "实现一个并发安全的 LRU",
		Desc:       "O(1)",
		Difficulty: 4,
		Points:     50,
		WeekNo:     202608,
	})
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	detail, err := s.svc.Detail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "实现一个并发安全的 LRU", detail.Title)
	assert.Equal(t, int64(50), detail.Points)
}

func (s *ChallengeModuleSuite) Test_Save_NegativePoints() {
	t := s.T()
	_, err := s.svc.Save(context.Background(), challenge.Challenge{
		Title:      "负分挑战",
		Difficulty: 1,
		Points:     -10,
		WeekNo:     202608,
	})
	assert.ErrorIs(t, err, challenge.ErrInvalidChallenge)
}

func (s *ChallengeModuleSuite) Test_Publish_PubDetail() {
	t := s.T()
	ctx := context.Background()
	id, err := s.svc.Save(ctx, challenge.Challenge{
		Title:      "写一个限流器",
		Difficulty: 2,
		Points:     20,
		WeekNo:     202609,
	})
	require.NoError(t, err)

	// 未发布的在 C 端不可见
	_, err = s.svc.PubDetail(ctx, id)
	assert.ErrorIs(t, err, challenge.ErrChallengeNotFound)

	require.NoError(t, s.svc.Publish(ctx, id))
	detail, err := s.svc.PubDetail(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "写一个限流器", detail.Title)
	assert.True(t, detail.Published())

	// 下架之后又不可见了
	require.NoError(t, s.svc.Unpublish(ctx, id))
	_, err = s.svc.PubDetail(ctx, id)
	assert.ErrorIs(t, err, challenge.ErrChallengeNotFound)
}

func (s *ChallengeModuleSuite) Test_PubList() {
	t := s.T()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		id, err := s.svc.Save(ctx, challenge.Challenge{
			Title:  fmt.Sprintf("挑战-%d", i),
			Points: 10,
			WeekNo: 202610,
		})
		require.NoError(t, err)
		// 只发布前两个
		if i < 2 {
			require.NoError(t, s.svc.Publish(ctx, id))
		}
	}
	list, err := s.svc.PubList(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, total, err := s.svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), total)
}

func TestChallengeModule(t *testing.T) {
	suite.Run(t, new(ChallengeModuleSuite))
}
