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

package member

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/member/internal/event"
	"github.com/opencoderclub/clubhouse/internal/member/internal/repository"
	"github.com/opencoderclub/clubhouse/internal/member/internal/repository/dao"
	"github.com/opencoderclub/clubhouse/internal/member/internal/service"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewMemberRepository,
		service.NewMemberService,
		newRegistrationEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.MemberDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewMemberGORMDAO(db)
}

func newRegistrationEventConsumer(svc service.Service, q mq.MQ) (*event.RegistrationEventConsumer, error) {
	res, err := event.NewRegistrationEventConsumer(svc, q)
	if err == nil {
		res.Start(context.Background())
	}
	return res, err
}
