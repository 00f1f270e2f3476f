package dao

import (
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
	"gorm.io/gorm"
)

type UserPlugin struct {
	idMaker snowflake.Generator
}

func NewUserPlugin(idMaker snowflake.Generator) *UserPlugin {
	return &UserPlugin{idMaker: idMaker}
}

func (u *UserPlugin) Name() string {
	return "user"
}

func (u *UserPlugin) Initialize(db *gorm.DB) error {
	// 注册回调
	insertBuilder := NewUserInsertCallBackBuilder(u.idMaker)
	return db.Callback().Create().Before("*").Register("user_create", insertBuilder.Build())
}
