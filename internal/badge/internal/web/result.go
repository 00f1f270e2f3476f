package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.BadgeNotFound.Code,
		Msg:  errs.BadgeNotFound.Msg,
	}
	awardedResult = ginx.Result{
		Code: errs.BadgeAwarded.Code,
		Msg:  errs.BadgeAwarded.Msg,
	}
)
