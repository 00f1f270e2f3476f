package errs

var (
	SystemError     = ErrorCode{Code: 506001, Msg: "系统错误"}
	ProjectNotFound = ErrorCode{Code: 506002, Msg: "项目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
