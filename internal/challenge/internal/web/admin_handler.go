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
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/service"
)

// AdminHandler 管理端的挑战接口,挂在 admin server 上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/challenge")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/publish", ginx.B[IdReq](h.Publish))
	g.POST("/unpublish", ginx.B[IdReq](h.Unpublish))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Challenge.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	cs, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ChallengeList{
			Total: total,
			Challenges: slice.Map(cs, func(idx int, src domain.Challenge) Challenge {
				return newChallenge(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newChallenge(c),
	}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Publish(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Unpublish(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Unpublish(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
