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

package ioc

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/opencoderclub/clubhouse/internal/ranking"
)

func initCronJobs(rankingSvc ranking.Service) []*ecron.Component {
	warmup := &rankingWarmupJob{svc: rankingSvc}
	return []*ecron.Component{
		ecron.Load("cron.rankingWarmup").Build(ecron.WithJob(funcJobWrapper(warmup))),
	}
}

// rankingWarmupJob 定时预热榜单缓存,
// 缓存被积分变动事件打掉之后由它兜底补回来
type rankingWarmupJob struct {
	svc ranking.Service
}

func (r *rankingWarmupJob) Name() string {
	return "ranking_warmup"
}

func (r *rankingWarmupJob) Run(ctx context.Context) error {
	_, err := r.svc.TopN(ctx, ranking.DefaultTopN)
	return err
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}
