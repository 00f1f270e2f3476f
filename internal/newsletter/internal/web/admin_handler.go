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
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/service"
)

// AdminHandler 管理端的通讯接口,挂在 admin server 上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/newsletter")
	g.POST("/dispatch", ginx.B[DispatchReq](h.Dispatch))
	g.POST("/issue/list", ginx.B[ListReq](h.IssueList))
	g.GET("/subscribers/count", ginx.W(h.SubscriberCount))
}

func (h *AdminHandler) Dispatch(ctx *ginx.Context, req DispatchReq) (ginx.Result, error) {
	issue, err := h.svc.Dispatch(ctx, domain.Issue{
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newIssue(issue),
	}, nil
}

func (h *AdminHandler) IssueList(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	issues, err := h.svc.IssueList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: IssueList{
			Issues: slice.Map(issues, func(idx int, src domain.Issue) Issue {
				return newIssue(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) SubscriberCount(ctx *ginx.Context) (ginx.Result, error) {
	cnt, err := h.svc.SubscriberCount(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: cnt,
	}, nil
}

func newIssue(src domain.Issue) Issue {
	return Issue{
		Id:        src.Id,
		Subject:   src.Subject,
		SentCnt:   src.SentCnt,
		FailedCnt: src.FailedCnt,
		Ctime:     src.Ctime,
	}
}
