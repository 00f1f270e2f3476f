package errs

var (
	SystemError        = ErrorCode{Code: 503001, Msg: "系统错误"}
	SubmissionNotFound = ErrorCode{Code: 503002, Msg: "提交记录不存在"}
	ChallengeNotFound  = ErrorCode{Code: 503003, Msg: "挑战不存在或未发布"}
	// ReviewConflict 瞬时失败,前端可以直接重试
	ReviewConflict  = ErrorCode{Code: 503004, Msg: "评审冲突,请稍后重试"}
	InvalidDecision = ErrorCode{Code: 503005, Msg: "非法的评审决定"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
