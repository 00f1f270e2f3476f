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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/member/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/member/internal/service"
)

// 新注册用户送一年会员
const welcomeDays uint64 = 365

// RegistrationEventConsumer 消费注册事件,给新用户开通首年会员。
// 流水的去重 Key 保证了重复消费不会重复送
type RegistrationEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationEventConsumer(svc service.Service, q mq.MQ) (*RegistrationEventConsumer, error) {
	groupID := "member"
	consumer, err := q.Consumer(userRegistrationEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RegistrationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RegistrationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.ActivateMembership(ctx, domain.Member{
		Uid: evt.Uid,
		Records: []domain.MemberRecord{
			{
				Key:   fmt.Sprintf("registration:%d", evt.Uid),
				Days:  welcomeDays,
				Biz:   domain.BizRegistration,
				BizId: evt.Uid,
				Desc:  "新用户注册福利",
			},
		},
	})
	if errors.Is(err, service.ErrDuplicatedMemberRecord) {
		c.logger.Warn("重复消费",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
		)
		return nil
	}
	if err != nil {
		c.logger.Error("开通会员失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
		)
	}
	return err
}

func (c *RegistrationEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
