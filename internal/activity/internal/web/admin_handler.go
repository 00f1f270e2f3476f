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
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/service"
)

// AdminHandler 管理端的活动接口,挂在 admin server 上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/activity")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/publish", ginx.B[IdReq](h.Publish))
	g.POST("/unpublish", ginx.B[IdReq](h.Unpublish))
	g.POST("/checkin", ginx.B[CheckInReq](h.CheckIn))
	g.POST("/attendees", ginx.B[IdReq](h.Attendees))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Activity.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	as, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ActivityList{
			Total: total,
			Activities: slice.Map(as, func(idx int, src domain.Activity) Activity {
				return newActivity(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrActivityNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newActivity(a),
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

func (h *AdminHandler) CheckIn(ctx *ginx.Context, req CheckInReq) (ginx.Result, error) {
	err := h.svc.CheckIn(ctx, req.ActivityId, req.Uid)
	if errors.Is(err, service.ErrRsvpNotFound) {
		return rsvpNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Attendees(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	rs, err := h.svc.Attendees(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: RsvpList{
			Rsvps: slice.Map(rs, func(idx int, src domain.Rsvp) Rsvp {
				return newRsvp(src)
			}),
		},
	}, nil
}
