package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/opencoderclub/clubhouse/internal/activity"
	"github.com/opencoderclub/clubhouse/internal/badge"
	"github.com/opencoderclub/clubhouse/internal/challenge"
	"github.com/opencoderclub/clubhouse/internal/member"
	"github.com/opencoderclub/clubhouse/internal/newsletter"
	"github.com/opencoderclub/clubhouse/internal/pkg/middleware"
	"github.com/opencoderclub/clubhouse/internal/project"
	"github.com/opencoderclub/clubhouse/internal/ranking"
	"github.com/opencoderclub/clubhouse/internal/submission"
	"github.com/opencoderclub/clubhouse/internal/user"
)

func initGinxServer(sp session.Provider,
	memberSvc member.Service,
	userHdl *user.Handler,
	chHdl *challenge.Handler,
	subHdl *submission.Handler,
	badgeHdl *badge.Handler,
	rankHdl *ranking.Handler,
	actHdl *activity.Handler,
	prjHdl *project.Handler,
	nlHdl *newsletter.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我们自己域名过来的
			return strings.Contains(origin, "opencoderclub.org")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	chHdl.PublicRoutes(res.Engine)
	rankHdl.PublicRoutes(res.Engine)
	actHdl.PublicRoutes(res.Engine)
	prjHdl.PublicRoutes(res.Engine)
	nlHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	badgeHdl.PrivateRoutes(res.Engine)
	actHdl.PrivateRoutes(res.Engine)
	prjHdl.PrivateRoutes(res.Engine)
	nlHdl.PrivateRoutes(res.Engine)
	// 提交挑战和查积分是会员专属的
	res.Use(middleware.NewCheckMembershipMiddlewareBuilder(memberSvc).Build())
	subHdl.PrivateRoutes(res.Engine)
	return res
}
