package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/newsletter/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notSubscribedResult = ginx.Result{
		Code: errs.NotSubscribed.Code,
		Msg:  errs.NotSubscribed.Msg,
	}
)
