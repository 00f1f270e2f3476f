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

package challenge

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository/cache"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/repository/dao"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/service"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initDAO,
		cache.NewChallengeECache,
		repository.NewChallengeRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.ChallengeDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewChallengeGORMDAO(db)
}
