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
	"github.com/opencoderclub/clubhouse/internal/project/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/project/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

// Handler C端的作品展示接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/pub/list", ginx.B[ListReq](h.PubList))
	g.POST("/pub/detail", ginx.B[IdReq](h.PubDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/mine", ginx.BS[ListReq](h.Mine))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	p := req.Project.toDomain()
	p.Uid = sess.Claims().Uid
	id, err := h.svc.Submit(ctx, p)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	ps, err := h.svc.Mine(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Projects: slice.Map(ps, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
		},
	}, nil
}

func (h *Handler) PubList(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Total: total,
			Projects: slice.Map(ps, func(idx int, src domain.Project) Project {
				return newProject(src)
			}),
		},
	}, nil
}

func (h *Handler) PubDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrProjectNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProject(p),
	}, nil
}
