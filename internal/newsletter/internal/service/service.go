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

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/opencoderclub/clubhouse/internal/email"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/repository"
)

var ErrNotSubscribed = errors.New("该邮箱未订阅通讯")

// 每批拉这么多订阅者,批内逐个发送
const dispatchBatchSize = 100

//go:generate mockgen -source=./service.go -package=newslettermocks -destination=../../mocks/newsletter.mock.go -typed Service
type Service interface {
	Subscribe(ctx context.Context, sub domain.Subscription) error
	Unsubscribe(ctx context.Context, email string) error
	SubscriberCount(ctx context.Context) (int64, error)
	// Dispatch 给全部订阅者群发一期通讯。
	// 单个收件人失败只记日志不中断,最终的成败计数落在返回的 Issue 上
	Dispatch(ctx context.Context, issue domain.Issue) (domain.Issue, error)
	IssueList(ctx context.Context, offset, limit int) ([]domain.Issue, error)
}

type service struct {
	repo     repository.NewsletterRepository
	emailSvc email.Service
	logger   *elog.Component
}

func NewService(repo repository.NewsletterRepository, emailSvc email.Service) Service {
	return &service{
		repo:     repo,
		emailSvc: emailSvc,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Subscribe(ctx context.Context, sub domain.Subscription) error {
	return s.repo.Subscribe(ctx, sub)
}

func (s *service) Unsubscribe(ctx context.Context, email string) error {
	err := s.repo.Unsubscribe(ctx, email)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrNotSubscribed
	}
	return err
}

func (s *service) SubscriberCount(ctx context.Context) (int64, error) {
	return s.repo.SubscriberCount(ctx)
}

func (s *service) Dispatch(ctx context.Context, issue domain.Issue) (domain.Issue, error) {
	issue.BatchKey = shortuuid.New()
	for offset := 0; ; offset += dispatchBatchSize {
		subs, err := s.repo.Subscribers(ctx, offset, dispatchBatchSize)
		if err != nil {
			return domain.Issue{}, err
		}
		if len(subs) == 0 {
			break
		}
		for _, sub := range subs {
			err = s.emailSvc.SendMail(ctx, email.Mail{
				From:    "OpenCoder Club",
				To:      sub.Email,
				Subject: issue.Subject,
				Body:    []byte(issue.Body),
			})
			if err != nil {
				issue.FailedCnt++
				s.logger.Error("通讯发送失败",
					elog.FieldErr(err),
					elog.String("batchKey", issue.BatchKey),
					elog.String("to", sub.Email),
				)
				continue
			}
			issue.SentCnt++
		}
		if len(subs) < dispatchBatchSize {
			break
		}
	}
	id, err := s.repo.SaveIssue(ctx, issue)
	if err != nil {
		// 邮件已经发出去了,记录落库失败只能记日志
		s.logger.Error("通讯发送记录保存失败",
			elog.FieldErr(err),
			elog.String("batchKey", issue.BatchKey),
		)
		return issue, nil
	}
	issue.Id = id
	return issue, nil
}

func (s *service) IssueList(ctx context.Context, offset, limit int) ([]domain.Issue, error) {
	return s.repo.IssueList(ctx, offset, limit)
}
