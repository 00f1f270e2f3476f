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
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/service"
)

const pointsChangeEvents = "point_change_events"

type PointsChangeEvent struct {
	Uid          int64 `json:"uid"`
	SubmissionId int64 `json:"submissionId"`
	Change       int64 `json:"change"`
	Balance      int64 `json:"balance"`
}

// PointsChangeEventConsumer 积分一变就把缓存的榜单踢掉,
// 下一次查询会重新读库
type PointsChangeEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPointsChangeEventConsumer(svc service.Service, q mq.MQ) (*PointsChangeEventConsumer, error) {
	groupID := "ranking"
	consumer, err := q.Consumer(pointsChangeEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PointsChangeEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PointsChangeEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费积分变动事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PointsChangeEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PointsChangeEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.InvalidateTop(ctx)
	if err != nil {
		c.logger.Error("失效榜单缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", evt.Uid),
		)
	}
	return nil
}

func (c *PointsChangeEventConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
