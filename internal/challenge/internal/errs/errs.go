package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	ChallengeNotFound = ErrorCode{Code: 502002, Msg: "挑战不存在或未发布"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
