package errs

var (
	SystemError      = ErrorCode{Code: 505001, Msg: "系统错误"}
	ActivityNotFound = ErrorCode{Code: 505002, Msg: "活动不存在或未发布"}
	RsvpNotFound     = ErrorCode{Code: 505003, Msg: "未报名该活动"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
