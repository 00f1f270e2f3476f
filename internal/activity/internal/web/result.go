package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ActivityNotFound.Code,
		Msg:  errs.ActivityNotFound.Msg,
	}
	rsvpNotFoundResult = ginx.Result{
		Code: errs.RsvpNotFound.Code,
		Msg:  errs.RsvpNotFound.Msg,
	}
)
