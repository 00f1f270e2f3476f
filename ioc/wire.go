//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/member"
	"github.com/opencoderclub/clubhouse/internal/newsletter"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/ranking"
	"github.com/opencoderclub/clubhouse/internal/submission"
	"github.com/opencoderclub/clubhouse/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		member.InitModule,
		wire.FieldsOf(new(*member.Module), "Svc"),
		challenge.InitModule,
		wire.FieldsOf(new(*challenge.Module), "Hdl", "AdminHdl"),
		badge.InitModule,
		wire.FieldsOf(new(*badge.Module), "Hdl", "AdminHdl"),
		activity.InitModule,
		wire.FieldsOf(new(*activity.Module), "Hdl", "AdminHdl"),
		project.InitModule,
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl"),
		submission.InitModule,
		wire.FieldsOf(new(*submission.Module), "Hdl"),
		ranking.InitModule,
		wire.FieldsOf(new(*ranking.Module), "Svc", "Hdl"),
		newsletter.InitModule,
		wire.FieldsOf(new(*newsletter.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
