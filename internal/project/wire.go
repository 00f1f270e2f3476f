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

package project

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"github.com/opencoderclub/clubhouse/internal/project/internal/repository"
	"github.com/opencoderclub/clubhouse/internal/project/internal/repository/dao"
	"github.com/opencoderclub/clubhouse/internal/project/internal/service"
	"github.com/opencoderclub/clubhouse/internal/project/internal/web"
)

func InitModule(db *egorm.Component, idgen snowflake.Generator) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		initDAO,
		repository.NewProjectRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.ProjectDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewProjectGORMDAO(db)
}
