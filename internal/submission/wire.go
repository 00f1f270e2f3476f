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

package submission

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/event"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/repository"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/repository/dao"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/service"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ, idgen snowflake.Generator,
	cm *challenge.Module, bm *badge.Module,
	am *activity.Module, pm *project.Module) (*Module, error) {
	wire.Build(
		initSubmissionDAO,
		initLedgerDAO,
		repository.NewSubmissionRepository,
		wire.FieldsOf(new(*challenge.Module), "Svc"),
		wire.FieldsOf(new(*badge.Module), "Svc"),
		wire.FieldsOf(new(*activity.Module), "Svc"),
		wire.FieldsOf(new(*project.Module), "Svc"),
		event.NewPointsChangeEventProducer,
		service.NewService,
		web.NewHandler,
		newRegistrationEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func initTables(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initSubmissionDAO(db *egorm.Component) dao.SubmissionDAO {
	initTables(db)
	return dao.NewSubmissionGORMDAO(db)
}

func initLedgerDAO(db *egorm.Component) dao.LedgerDAO {
	initTables(db)
	return dao.NewLedgerGORMDAO(db)
}

func newRegistrationEventConsumer(svc service.Service, q mq.MQ) (*event.RegistrationEventConsumer, error) {
	res, err := event.NewRegistrationEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}
