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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/service"
)

// AdminHandler 管理端的徽章接口,挂在 admin server 上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/badge")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/toggle", ginx.B[ToggleReq](h.Toggle))
	g.POST("/award", ginx.BS[AwardReq](h.Award))
	g.POST("/revoke", ginx.B[AwardReq](h.Revoke))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Badge.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	bs, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BadgeList{
			Total: total,
			Badges: slice.Map(bs, func(idx int, src domain.Badge) Badge {
				return newBadge(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	b, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrBadgeNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newBadge(b),
	}, nil
}

func (h *AdminHandler) Toggle(ctx *ginx.Context, req ToggleReq) (ginx.Result, error) {
	err := h.svc.ToggleActive(ctx, req.Id, req.Active)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Award(ctx *ginx.Context, req AwardReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Award(ctx, req.Uid, req.BadgeId, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrBadgeNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrBadgeAwarded):
		return awardedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Revoke(ctx *ginx.Context, req AwardReq) (ginx.Result, error) {
	err := h.svc.Revoke(ctx, req.Uid, req.BadgeId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
