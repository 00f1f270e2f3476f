package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	submissionNotFoundResult = ginx.Result{
		Code: errs.SubmissionNotFound.Code,
		Msg:  errs.SubmissionNotFound.Msg,
	}
	challengeNotFoundResult = ginx.Result{
		Code: errs.ChallengeNotFound.Code,
		Msg:  errs.ChallengeNotFound.Msg,
	}
	reviewConflictResult = ginx.Result{
		Code: errs.ReviewConflict.Code,
		Msg:  errs.ReviewConflict.Msg,
	}
	invalidDecisionResult = ginx.Result{
		Code: errs.InvalidDecision.Code,
		Msg:  errs.InvalidDecision.Msg,
	}
)
