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

//go:build wireinject

package ranking

import (
	"context"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/cache"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/event"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/service"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/web"
	"github.com/opencoderclub/clubhouse/internal/submission"
)

func InitModule(ec ecache.Cache, q mq.MQ, sm *submission.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*submission.Module), "Svc"),
		cache.NewRankingECache,
		service.NewService,
		web.NewHandler,
		newPointsChangeEventConsumer,
	)
	return new(Module), nil
}

func newPointsChangeEventConsumer(svc service.Service, q mq.MQ) (*event.PointsChangeEventConsumer, error) {
	res, err := event.NewPointsChangeEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}
