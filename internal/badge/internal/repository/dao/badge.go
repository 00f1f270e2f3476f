// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrBadgeAwarded 同一个用户同一枚徽章只会发放一次
	ErrBadgeAwarded = errors.New("徽章已发放")
)

//go:generate mockgen -source=./badge.go -destination=./mocks/badge.mock.go -package=daomocks -typed BadgeDAO
type BadgeDAO interface {
	Save(ctx context.Context, b Badge) (int64, error)
	GetById(ctx context.Context, id int64) (Badge, error)
	List(ctx context.Context, offset, limit int) ([]Badge, error)
	Count(ctx context.Context) (int64, error)
	UpdateActive(ctx context.Context, id int64, active bool) error
	FindAutoAwardable(ctx context.Context) ([]Badge, error)

	Award(ctx context.Context, ub UserBadge) (int64, error)
	Revoke(ctx context.Context, uid, badgeId int64) error
	FindByUid(ctx context.Context, uid int64) ([]UserBadge, error)
	AwardedIds(ctx context.Context, uid int64) ([]int64, error)
}

type badgeGORMDAO struct {
	db *egorm.Component
}

func NewBadgeGORMDAO(db *egorm.Component) BadgeDAO {
	return &badgeGORMDAO{db: db}
}

func (g *badgeGORMDAO) Save(ctx context.Context, b Badge) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime, b.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":          b.Name,
			"description":   b.Description,
			"icon":          b.Icon,
			"criteria_type": b.CriteriaType,
			"threshold":     b.Threshold,
			"auto_award":    b.AutoAward,
			"utime":         now,
		}),
	}).Create(&b).Error
	return b.Id, err
}

func (g *badgeGORMDAO) GetById(ctx context.Context, id int64) (Badge, error) {
	var b Badge
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	return b, err
}

func (g *badgeGORMDAO) List(ctx context.Context, offset, limit int) ([]Badge, error) {
	var bs []Badge
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).Find(&bs).Error
	return bs, err
}

func (g *badgeGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Badge{}).Count(&cnt).Error
	return cnt, err
}

func (g *badgeGORMDAO) UpdateActive(ctx context.Context, id int64, active bool) error {
	return g.db.WithContext(ctx).Model(&Badge{}).
		Where("id = ?", id).Updates(map[string]any{
		"active": active,
		"utime":  time.Now().UnixMilli(),
	}).Error
}

func (g *badgeGORMDAO) FindAutoAwardable(ctx context.Context) ([]Badge, error) {
	var bs []Badge
	err := g.db.WithContext(ctx).
		Where("active = ? AND auto_award = ?", true, true).
		Find(&bs).Error
	return bs, err
}

func (g *badgeGORMDAO) Award(ctx context.Context, ub UserBadge) (int64, error) {
	now := time.Now().UnixMilli()
	ub.Ctime, ub.Utime = now, now
	err := g.db.WithContext(ctx).Create(&ub).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) {
			const uniqueIndexErrNo uint16 = 1062
			if me.Number == uniqueIndexErrNo {
				return 0, fmt.Errorf("%w: uid = %d, badge = %d", ErrBadgeAwarded, ub.Uid, ub.BadgeId)
			}
		}
		return 0, err
	}
	return ub.Id, nil
}

func (g *badgeGORMDAO) Revoke(ctx context.Context, uid, badgeId int64) error {
	return g.db.WithContext(ctx).
		Where("uid = ? AND badge_id = ?", uid, badgeId).
		Delete(&UserBadge{}).Error
}

func (g *badgeGORMDAO) FindByUid(ctx context.Context, uid int64) ([]UserBadge, error) {
	var ubs []UserBadge
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("awarded_at DESC").Find(&ubs).Error
	return ubs, err
}

func (g *badgeGORMDAO) AwardedIds(ctx context.Context, uid int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&UserBadge{}).
		Where("uid = ?", uid).
		Pluck("badge_id", &ids).Error
	return ids, err
}

type Badge struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:徽章表自增ID"`
	Name        string `gorm:"type:varchar(128);not null;comment:徽章名"`
	Description string `gorm:"type:varchar(512);comment:徽章说明"`
	Icon        string `gorm:"type:varchar(512);comment:图标地址"`
	// 条件类型 1=积分 2=挑战 3=活动 4=项目
	CriteriaType uint8 `gorm:"type:tinyint unsigned;not null;default:0;comment:自动发放条件类型"`
	Threshold    int64 `gorm:"not null;default:0;comment:条件阈值"`
	AutoAward    bool  `gorm:"not null;default:false;comment:是否自动发放"`
	Active       bool  `gorm:"not null;default:true;comment:是否启用"`
	Ctime        int64
	Utime        int64
}

type UserBadge struct {
	Id      int64 `gorm:"primaryKey;autoIncrement"`
	Uid     int64 `gorm:"not null;uniqueIndex:unq_uid_badge;comment:用户ID"`
	BadgeId int64 `gorm:"not null;uniqueIndex:unq_uid_badge;comment:徽章ID"`
	// "auto" 或者管理员 uid
	AwardedBy string `gorm:"type:varchar(64);not null;comment:发放人"`
	AwardedAt int64  `gorm:"not null;comment:发放时间"`
	Ctime     int64
	Utime     int64
}
