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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=repomocks -typed NewsletterRepository
type NewsletterRepository interface {
	Subscribe(ctx context.Context, sub domain.Subscription) error
	Unsubscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context, offset, limit int) ([]domain.Subscription, error)
	SubscriberCount(ctx context.Context) (int64, error)
	SaveIssue(ctx context.Context, issue domain.Issue) (int64, error)
	IssueList(ctx context.Context, offset, limit int) ([]domain.Issue, error)
}

type newsletterRepository struct {
	dao dao.NewsletterDAO
}

func NewNewsletterRepository(d dao.NewsletterDAO) NewsletterRepository {
	return &newsletterRepository{dao: d}
}

func (n *newsletterRepository) Subscribe(ctx context.Context, sub domain.Subscription) error {
	return n.dao.Subscribe(ctx, dao.Subscription{
		Email: sub.Email,
		Uid:   sub.Uid,
	})
}

func (n *newsletterRepository) Unsubscribe(ctx context.Context, email string) error {
	return n.dao.Unsubscribe(ctx, email)
}

func (n *newsletterRepository) Subscribers(ctx context.Context, offset, limit int) ([]domain.Subscription, error) {
	subs, err := n.dao.FindSubscribed(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(subs, func(idx int, src dao.Subscription) domain.Subscription {
		return n.toDomain(src)
	}), nil
}

func (n *newsletterRepository) SubscriberCount(ctx context.Context) (int64, error) {
	return n.dao.CountSubscribed(ctx)
}

func (n *newsletterRepository) SaveIssue(ctx context.Context, issue domain.Issue) (int64, error) {
	return n.dao.CreateIssue(ctx, dao.Issue{
		BatchKey:  issue.BatchKey,
		Subject:   issue.Subject,
		Body:      issue.Body,
		SentCnt:   issue.SentCnt,
		FailedCnt: issue.FailedCnt,
	})
}

func (n *newsletterRepository) IssueList(ctx context.Context, offset, limit int) ([]domain.Issue, error) {
	issues, err := n.dao.IssueList(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(issues, func(idx int, src dao.Issue) domain.Issue {
		return domain.Issue{
			Id:        src.Id,
			BatchKey:  src.BatchKey,
			Subject:   src.Subject,
			Body:      src.Body,
			SentCnt:   src.SentCnt,
			FailedCnt: src.FailedCnt,
			Ctime:     src.Ctime,
		}
	}), nil
}

func (n *newsletterRepository) toDomain(sub dao.Subscription) domain.Subscription {
	return domain.Subscription{
		Id:         sub.Id,
		Email:      sub.Email,
		Uid:        sub.Uid,
		Subscribed: sub.Subscribed,
		Utime:      sub.Utime,
	}
}
