package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ChallengeNotFound.Code,
		Msg:  errs.ChallengeNotFound.Msg,
	}
)
