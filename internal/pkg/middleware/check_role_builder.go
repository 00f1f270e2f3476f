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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckRoleMiddlewareBuilder 拦截管理端接口,
// 角色在登录时写进了 jwt,这里只认 jwt 不回源
type CheckRoleMiddlewareBuilder struct {
	allowed map[string]struct{}
	logger  *elog.Component
	sp      session.Provider
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return &CheckRoleMiddlewareBuilder{
		allowed: allowed,
		logger:  elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role, err := claims.Get("role").AsString()
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("jwt 中没有角色信息", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			return
		}
		if _, ok := c.allowed[role]; !ok {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("角色无权访问管理端",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role))
			return
		}
	}
}
