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
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/newsletter"
	"github.com/opencoderclub/clubhouse/internal/pkg/middleware"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/user"
)

type AdminServer *egin.Component

func InitAdminServer(
	chHdl *challenge.AdminHandler,
	badgeHdl *badge.AdminHandler,
	actHdl *activity.AdminHandler,
	prjHdl *project.AdminHandler,
	nlHdl *newsletter.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我们自己域名过来的
			return strings.Contains(origin, "opencoderclub.org")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 干事和管理员才能进管理端
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(user.RoleOfficer, user.RoleAdmin).Build())
	chHdl.PrivateRoutes(res.Engine)
	badgeHdl.PrivateRoutes(res.Engine)
	actHdl.PrivateRoutes(res.Engine)
	prjHdl.PrivateRoutes(res.Engine)
	nlHdl.PrivateRoutes(res.Engine)
	return res
}
