package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/opencoderclub/clubhouse/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	userDuplicateResult = ginx.Result{
		Code: errs.UserDuplicate.Code,
		Msg:  errs.UserDuplicate.Msg,
	}
	invalidUserOrPasswordResult = ginx.Result{
		Code: errs.InvalidUserOrPassword.Code,
		Msg:  errs.InvalidUserOrPassword.Msg,
	}
)
