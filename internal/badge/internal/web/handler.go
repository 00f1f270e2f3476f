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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

// Handler C端的徽章接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/badge")
	g.GET("/mine", ginx.S(h.Mine))
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	ubs, err := h.svc.UserBadges(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UserBadgeList{
			Badges: slice.Map(ubs, func(idx int, src domain.UserBadge) UserBadge {
				return newUserBadge(src)
			}),
		},
	}, nil
}
