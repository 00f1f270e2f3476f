package errs

var (
	SystemError   = ErrorCode{Code: 504001, Msg: "系统错误"}
	BadgeNotFound = ErrorCode{Code: 504002, Msg: "徽章不存在"}
	BadgeAwarded  = ErrorCode{Code: 504003, Msg: "徽章已发放"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
