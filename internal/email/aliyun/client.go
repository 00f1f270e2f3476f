package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/opencoderclub/clubhouse/internal/email"
)

// DirectMailService 基于阿里云邮件推送的 email.Service 实现,
// 社团通讯走这个渠道群发
type DirectMailService struct {
	client      *dm20151123.Client
	accountName string
}

// NewDirectMailService 创建阿里云邮件推送客户端。
// accountName 是控制台配置好的发信地址,例如 noreply@mail.opencoderclub.org
func NewDirectMailService(accessKeyID, accessKeySecret, accountName string) (*DirectMailService, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}

	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建邮件推送客户端失败: %w", err)
	}

	return &DirectMailService{
		client:      client,
		accountName: accountName,
	}, nil
}

func (s *DirectMailService) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(s.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	_, err := s.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return s.wrapError(err)
	}
	return nil
}

func (s *DirectMailService) wrapError(err error) error {
	var sdkError *tea.SDKError
	if !errors.As(err, &sdkError) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送失败: %s", tea.StringValue(sdkError.Message))
	if sdkError.Data != nil {
		var data map[string]any
		decoder := json.NewDecoder(strings.NewReader(tea.StringValue(sdkError.Data)))
		if decoder.Decode(&data) == nil {
			if requestId, ok := data["RequestId"]; ok {
				msg += fmt.Sprintf(", RequestId: %v", requestId)
			}
		}
	}
	return errors.New(msg)
}
