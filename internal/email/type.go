package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go -typed Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	// From 是发信人昵称,发信地址由渠道侧配置决定
	From    string
	To      string
	Subject string
	// Body 按 HTML 处理
	Body []byte
}
