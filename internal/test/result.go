package test

// Result 和 ginx.Result 的 JSON 结构保持一致,测试里反序列化响应用
type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}
