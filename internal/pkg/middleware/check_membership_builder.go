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
	"strconv"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/member"
)

// CheckMembershipMiddlewareBuilder 拦截会员专属接口。
// 优先看 jwt 里的会员截止日期,过期或缺失再回源查一次,
// 避免用户刚续费就被拦在门外
type CheckMembershipMiddlewareBuilder struct {
	svc    member.Service
	logger *elog.Component
	sp     session.Provider
}

func NewCheckMembershipMiddlewareBuilder(svc member.Service) *CheckMembershipMiddlewareBuilder {
	return &CheckMembershipMiddlewareBuilder{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckMembershipMiddlewareBuilder) Build() gin.HandlerFunc {
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
		// jwt 数据格式不对时这里返回 0,等同于没有会员记录
		memberDDL, _ := claims.Get("memberDDL").AsInt64()
		now := time.Now().UnixMilli()
		if memberDDL > now {
			return
		}

		// jwt 里没有截止日期,或者已经过期。期间用户可能续费了,回源再查一次
		info, err := c.svc.GetMembershipInfo(ctx, claims.Uid)
		if err != nil {
			c.logger.Error("查询会员失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		if info.EndAt <= now {
			c.logger.Debug("未开通会员或会员已过期",
				elog.Int64("uid", claims.Uid),
				elog.String("ddl", time.UnixMilli(info.EndAt).Format(time.DateTime)))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		// 把最新的截止日期写回 jwt
		jwtData := claims.Data
		jwtData["memberDDL"] = strconv.FormatInt(info.EndAt, 10)
		claims.Data = jwtData
		err = c.sp.UpdateClaims(gctx, claims)
		if err != nil {
			c.logger.Error("重新生成 token 失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
