package dao

import (
	"github.com/gotomicro/ego/core/elog"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"gorm.io/gorm"
)

var UserTableName = "users"

// UserInsertCallBackBuilder 在 insert 之前给用户分配雪花 ID,
// 这样注册事件里带的 uid 就是最终的主键
type UserInsertCallBackBuilder struct {
	logger  *elog.Component
	idMaker snowflake.Generator
}

func NewUserInsertCallBackBuilder(idMaker snowflake.Generator) *UserInsertCallBackBuilder {
	return &UserInsertCallBackBuilder{
		logger:  elog.DefaultLogger,
		idMaker: idMaker,
	}
}

func (u *UserInsertCallBackBuilder) Build() func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement.Table != UserTableName {
			return
		}
		us, ok := db.Statement.Dest.(*User)
		if !ok {
			return
		}
		if us.Id == 0 {
			us.Id = u.idMaker.Generate().Int64()
		}
		db.Statement.Dest = us
	}
}
