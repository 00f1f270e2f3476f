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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/submission"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/web"
	"github.com/opencoderclub/clubhouse/internal/test"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SubmissionHandlerSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	chSvc  challenge.Service
}

func (s *SubmissionHandlerSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	idgen, err := snowflake.NewNodeGenerator(1)
	require.NoError(s.T(), err)

	chModule, err := challenge.InitModule(s.db, testioc.InitCache())
	require.NoError(s.T(), err)
	s.chSvc = chModule.Svc
	badgeModule, err := badge.InitModule(s.db)
	require.NoError(s.T(), err)
	actModule, err := activity.InitModule(s.db)
	require.NoError(s.T(), err)
	prjModule, err := project.InitModule(s.db, idgen)
	require.NoError(s.T(), err)
	m, err := submission.InitModule(s.db, q, idgen, chModule, badgeModule, actModule, prjModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *SubmissionHandlerSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `submissions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `challenges`").Error
	require.NoError(s.T(), err)
}

func (s *SubmissionHandlerSuite) newPublishedChallenge() int64 {
	t := s.T()
	ctx := context.Background()
	id, err := s.chSvc.Save(ctx, challenge.Challenge{
		Title:  "写一个对象池",
		Points: 30,
		WeekNo: 202611,
	})
	require.NoError(t, err)
	require.NoError(t, s.chSvc.Publish(ctx, id))
	return id
}

func (s *SubmissionHandlerSuite) Test_Submit() {
	t := s.T()
	cid := s.newPublishedChallenge()

	req, err := http.NewRequest(http.MethodPost,
		"/submissions/submit", iox.NewJSONReader(web.SubmitReq{
			ChallengeId: cid,
			Code:        "package main",
			Language:    "go",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Greater(t, recorder.MustScan().Data, int64(0))
}

func (s *SubmissionHandlerSuite) Test_Submit_ChallengeNotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/submissions/submit", iox.NewJSONReader(web.SubmitReq{
			ChallengeId: 999,
			Code:        "package main",
			Language:    "go",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 503003, recorder.MustScan().Code)
}

func (s *SubmissionHandlerSuite) Test_Review_Forbidden() {
	// session 里没有 role,评审接口直接 403
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/submissions/review", iox.NewJSONReader(web.ReviewReq{
			Sid:      1,
			Decision: 2,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestSubmissionHandler(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerSuite))
}
