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
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/errs"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

var _ ginx.Handler = (*Handler)(nil)

// Handler 排行榜接口,榜单是公开的
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/ranking")
	g.GET("/top", ginx.W(h.Top))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {}

func (h *Handler) Top(ctx *ginx.Context) (ginx.Result, error) {
	ranks, err := h.svc.TopN(ctx, service.DefaultTopN)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RankList{
			Ranks: slice.Map(ranks, func(idx int, src domain.Rank) Rank {
				return Rank{
					Uid:             src.Uid,
					Points:          src.Points,
					LastPointUpdate: src.LastPointUpdate,
				}
			}),
		},
	}, nil
}

type Rank struct {
	Uid             int64 `json:"uid,omitempty"`
	Points          int64 `json:"points,omitempty"`
	LastPointUpdate int64 `json:"lastPointUpdate,omitempty"`
}

type RankList struct {
	Ranks []Rank `json:"ranks,omitempty"`
}
