package errs

var (
	SystemError   = ErrorCode{Code: 508001, Msg: "系统错误"}
	NotSubscribed = ErrorCode{Code: 508002, Msg: "该邮箱未订阅通讯"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
