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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

// Handler 订阅和退订不要求登录,登录用户订阅时会带上 uid
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/newsletter")
	g.POST("/subscribe", ginx.B[SubscribeReq](h.Subscribe))
	g.POST("/unsubscribe", ginx.B[SubscribeReq](h.Unsubscribe))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/newsletter")
	g.POST("/subscribe/mine", ginx.BS[SubscribeReq](h.SubscribeMine))
}

func (h *Handler) Subscribe(ctx *ginx.Context, req SubscribeReq) (ginx.Result, error) {
	err := h.svc.Subscribe(ctx, domain.Subscription{Email: req.Email})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Unsubscribe(ctx *ginx.Context, req SubscribeReq) (ginx.Result, error) {
	err := h.svc.Unsubscribe(ctx, req.Email)
	if errors.Is(err, service.ErrNotSubscribed) {
		return notSubscribedResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) SubscribeMine(ctx *ginx.Context, req SubscribeReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Subscribe(ctx, domain.Subscription{
		Email: req.Email,
		Uid:   sess.Claims().Uid,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}
