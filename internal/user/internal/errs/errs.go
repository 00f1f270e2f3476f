package errs

var (
	SystemError   = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicate = ErrorCode{
		Code: 501002,
		Msg:  "邮箱已经注册",
	}
	InvalidUserOrPassword = ErrorCode{
		Code: 501003,
		Msg:  "账号或者密码不对",
	}
)

type ErrorCode struct {
	Code int
	Msg  string
}
