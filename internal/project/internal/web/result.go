package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/project/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ProjectNotFound.Code,
		Msg:  errs.ProjectNotFound.Msg,
	}
)
