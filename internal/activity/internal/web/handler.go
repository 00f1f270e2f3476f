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
	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

// Handler C端的活动接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/activity")
	g.POST("/pub/list", ginx.B[ListReq](h.PubList))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/activity")
	g.POST("/rsvp", ginx.BS[IdReq](h.Rsvp))
}

func (h *Handler) PubList(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	as, err := h.svc.PubList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActivityList{
			Activities: slice.Map(as, func(idx int, src domain.Activity) Activity {
				return newActivity(src)
			}),
		},
	}, nil
}

func (h *Handler) Rsvp(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	rsvped, err := h.svc.RsvpToggle(ctx, req.Id, sess.Claims().Uid)
	if errors.Is(err, service.ErrActivityNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: rsvped,
	}, nil
}
