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
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/opencoderclub/clubhouse/internal/email"
	"github.com/opencoderclub/clubhouse/internal/newsletter"
	testioc "github.com/opencoderclub/clubhouse/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// memoryEmailService 把发出去的邮件记在内存里,
// failing 里的收件人会发送失败
type memoryEmailService struct {
	mu      sync.Mutex
	sent    []email.Mail
	failing map[string]struct{}
}

func (m *memoryEmailService) SendMail(_ context.Context, mail email.Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.failing[mail.To]; ok {
		return errors.New("模拟发送失败")
	}
	m.sent = append(m.sent, mail)
	return nil
}

type NewsletterModuleSuite struct {
	suite.Suite
	db       *egorm.Component
	emailSvc *memoryEmailService
	svc      newsletter.Service
}

func (s *NewsletterModuleSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.emailSvc = &memoryEmailService{failing: map[string]struct{}{}}
	m := newsletter.InitModule(s.db, s.emailSvc)
	s.svc = m.Svc
}

func (s *NewsletterModuleSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `newsletter_subscriptions`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `newsletter_issues`").Error
	require.NoError(s.T(), err)
	s.emailSvc.mu.Lock()
	s.emailSvc.sent = nil
	s.emailSvc.failing = map[string]struct{}{}
	s.emailSvc.mu.Unlock()
}

func (s *NewsletterModuleSuite) Test_Subscribe_Resubscribe() {
	t := s.T()
	ctx := context.Background()
	err := s.svc.Subscribe(ctx, newsletter.Subscription{Email: "a@opencoderclub.org"})
	require.NoError(t, err)
	cnt, err := s.svc.SubscriberCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	// 退订之后重新订阅,还是同一条记录
	require.NoError(t, s.svc.Unsubscribe(ctx, "a@opencoderclub.org"))
	cnt, err = s.svc.SubscriberCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	err = s.svc.Subscribe(ctx, newsletter.Subscription{Email: "a@opencoderclub.org"})
	require.NoError(t, err)
	cnt, err = s.svc.SubscriberCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
	var rows int64
	err = s.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM `newsletter_subscriptions`").Scan(&rows).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func (s *NewsletterModuleSuite) Test_Unsubscribe_NotSubscribed() {
	t := s.T()
	err := s.svc.Unsubscribe(context.Background(), "nobody@opencoderclub.org")
	assert.ErrorIs(t, err, newsletter.ErrNotSubscribed)
}

func (s *NewsletterModuleSuite) Test_Dispatch() {
	t := s.T()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		err := s.svc.Subscribe(ctx, newsletter.Subscription{
			Email: fmt.Sprintf("sub-%d@opencoderclub.org", i),
		})
		require.NoError(t, err)
	}
	// 其中一个收件人发送失败
	s.emailSvc.failing["sub-1@opencoderclub.org"] = struct{}{}

	issue, err := s.svc.Dispatch(ctx, newsletter.Issue{
		Subject: "八月月报",
		Body:    "<h1>本月战报</h1>",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), issue.SentCnt)
	assert.Equal(t, int64(1), issue.FailedCnt)
	assert.NotEmpty(t, issue.BatchKey)
	assert.Len(t, s.emailSvc.sent, 2)

	list, err := s.svc.IssueList(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "八月月报", list[0].Subject)
}

func TestNewsletterModule(t *testing.T) {
	suite.Run(t, new(NewsletterModuleSuite))
}
