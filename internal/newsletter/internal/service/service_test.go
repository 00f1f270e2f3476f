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
	"fmt"
	"testing"

	"github.com/opencoderclub/clubhouse/internal/email"
	emailmocks "github.com/opencoderclub/clubhouse/internal/email/mocks"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/repository"
	repomocks "github.com/opencoderclub/clubhouse/internal/newsletter/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Dispatch(t *testing.T) {
	testCases := []struct {
		name          string
		mock          func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service)
		issue         domain.Issue
		wantErr       error
		wantSentCnt   int64
		wantFailedCnt int64
	}{
		{
			name: "全部发送成功",
			mock: func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service) {
				repo := repomocks.NewMockNewsletterRepository(ctrl)
				repo.EXPECT().Subscribers(gomock.Any(), 0, dispatchBatchSize).
					Return(subscribers(0, 3), nil)
				repo.EXPECT().SaveIssue(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil).Times(3)
				return repo, emailSvc
			},
			issue:       domain.Issue{Subject: "七月月报"},
			wantSentCnt: 3,
		},
		{
			name: "单个收件人失败不中断",
			mock: func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service) {
				repo := repomocks.NewMockNewsletterRepository(ctrl)
				repo.EXPECT().Subscribers(gomock.Any(), 0, dispatchBatchSize).
					Return(subscribers(0, 3), nil)
				repo.EXPECT().SaveIssue(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mail email.Mail) error {
						if mail.To == "sub-1@opencoderclub.org" {
							return errors.New("mock 发送失败")
						}
						return nil
					}).Times(3)
				return repo, emailSvc
			},
			issue:         domain.Issue{Subject: "七月月报"},
			wantSentCnt:   2,
			wantFailedCnt: 1,
		},
		{
			name: "满一批之后继续拉下一批",
			mock: func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service) {
				repo := repomocks.NewMockNewsletterRepository(ctrl)
				repo.EXPECT().Subscribers(gomock.Any(), 0, dispatchBatchSize).
					Return(subscribers(0, dispatchBatchSize), nil)
				repo.EXPECT().Subscribers(gomock.Any(), dispatchBatchSize, dispatchBatchSize).
					Return(subscribers(dispatchBatchSize, 1), nil)
				repo.EXPECT().SaveIssue(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
					Return(nil).Times(dispatchBatchSize + 1)
				return repo, emailSvc
			},
			issue:       domain.Issue{Subject: "七月月报"},
			wantSentCnt: int64(dispatchBatchSize + 1),
		},
		{
			name: "拉取订阅者失败",
			mock: func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service) {
				repo := repomocks.NewMockNewsletterRepository(ctrl)
				repo.EXPECT().Subscribers(gomock.Any(), 0, dispatchBatchSize).
					Return(nil, errors.New("mock db 错误"))
				return repo, emailmocks.NewMockService(ctrl)
			},
			issue:   domain.Issue{Subject: "七月月报"},
			wantErr: errors.New("mock db 错误"),
		},
		{
			name: "落库失败只记日志",
			mock: func(ctrl *gomock.Controller) (repository.NewsletterRepository, email.Service) {
				repo := repomocks.NewMockNewsletterRepository(ctrl)
				repo.EXPECT().Subscribers(gomock.Any(), 0, dispatchBatchSize).
					Return(subscribers(0, 1), nil)
				repo.EXPECT().SaveIssue(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("mock db 错误"))
				emailSvc := emailmocks.NewMockService(ctrl)
				emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return repo, emailSvc
			},
			issue:       domain.Issue{Subject: "七月月报"},
			wantSentCnt: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, emailSvc := tc.mock(ctrl)
			svc := NewService(repo, emailSvc)
			issue, err := svc.Dispatch(context.Background(), tc.issue)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSentCnt, issue.SentCnt)
			assert.Equal(t, tc.wantFailedCnt, issue.FailedCnt)
			assert.NotEmpty(t, issue.BatchKey)
		})
	}
}

func subscribers(offset, n int) []domain.Subscription {
	res := make([]domain.Subscription, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, domain.Subscription{
			Id:         int64(offset + i + 1),
			Email:      fmt.Sprintf("sub-%d@opencoderclub.org", offset+i),
			Subscribed: true,
		})
	}
	return res
}
