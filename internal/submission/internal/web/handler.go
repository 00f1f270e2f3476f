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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/service"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/submissions")
	g.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	// 评审相关的只有干事和管理员能访问
	g.POST("/pending", ginx.S(h.ReviewerPermission), ginx.B[ListReq](h.Pending))
	g.POST("/review", ginx.S(h.ReviewerPermission), ginx.BS[ReviewReq](h.Review))

	server.GET("/points/detail", ginx.S(h.Points))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Submit(ctx, domain.Submission{
		ChallengeId: req.ChallengeId,
		Uid:         sess.Claims().Uid,
		Code:        req.Code,
		Language:    req.Language,
	})
	if errors.Is(err, service.ErrChallengeNotFound) {
		return challengeNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	subs, err := h.svc.ListByUid(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmissionList{
			Submissions: slice.Map(subs, func(idx int, src domain.Submission) Submission {
				return newSubmission(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.Detail(ctx, req.Id)
	if errors.Is(err, service.ErrSubmissionNotFound) {
		return submissionNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	// 只能看自己的提交,评审人除外
	if sub.Uid != sess.Claims().Uid && !isReviewer(sess) {
		return submissionNotFoundResult, nil
	}
	return ginx.Result{
		Data: newSubmission(sub),
	}, nil
}

func (h *Handler) Pending(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	subs, total, err := h.svc.PendingList(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmissionList{
			Total: total,
			Submissions: slice.Map(subs, func(idx int, src domain.Submission) Submission {
				return newSubmission(src)
			}),
		},
	}, nil
}

func (h *Handler) Review(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Review(ctx, req.Sid,
		domain.SubmissionStatus(req.Decision),
		sess.Claims().Uid, req.Feedback)
	switch {
	case err == nil:
		return ginx.Result{}, nil
	case errors.Is(err, service.ErrSubmissionNotFound),
		errors.Is(err, service.ErrAccountNotFound):
		return submissionNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidDecision):
		return invalidDecisionResult, nil
	case errors.Is(err, service.ErrReviewConflict):
		// 没有任何局部落库,调用方可以放心重试
		return reviewConflictResult, err
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Points(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Account(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrAccountNotFound) {
		// 老用户可能还没有账户,展示成0分
		return ginx.Result{Data: PointAccount{}}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPointAccount(a),
	}, nil
}

func (h *Handler) ReviewerPermission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if !isReviewer(sess) {
		ctx.AbortWithStatus(http.StatusForbidden)
		return ginx.Result{}, fmt.Errorf("非法访问评审接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func isReviewer(sess session.Session) bool {
	role := sess.Claims().Get("role").StringOrDefault("")
	return role == "officer" || role == "admin"
}
