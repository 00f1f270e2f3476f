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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./activity.go -destination=./mocks/activity.mock.go -package=daomocks -typed ActivityDAO
type ActivityDAO interface {
	Save(ctx context.Context, a Activity) (int64, error)
	GetById(ctx context.Context, id int64) (Activity, error)
	List(ctx context.Context, offset, limit int) ([]Activity, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	PubList(ctx context.Context, offset, limit int) ([]Activity, error)

	// RsvpToggle 返回切换之后是否处于已报名状态
	RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error)
	MarkAttended(ctx context.Context, activityId, uid int64) error
	AttendedCount(ctx context.Context, uid int64) (int64, error)
	RsvpList(ctx context.Context, activityId int64) ([]Rsvp, error)
	GetRsvp(ctx context.Context, activityId, uid int64) (Rsvp, error)
}

type activityGORMDAO struct {
	db *egorm.Component
}

func NewActivityGORMDAO(db *egorm.Component) ActivityDAO {
	return &activityGORMDAO{db: db}
}

func (g *activityGORMDAO) Save(ctx context.Context, a Activity) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime, a.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":    a.Title,
			"content":  a.Content,
			"location": a.Location,
			"start_at": a.StartAt,
			"utime":    now,
		}),
	}).Create(&a).Error
	return a.Id, err
}

func (g *activityGORMDAO) GetById(ctx context.Context, id int64) (Activity, error) {
	var a Activity
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (g *activityGORMDAO) List(ctx context.Context, offset, limit int) ([]Activity, error) {
	var as []Activity
	err := g.db.WithContext(ctx).
		Order("start_at DESC").
		Offset(offset).Limit(limit).Find(&as).Error
	return as, err
}

func (g *activityGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Activity{}).Count(&cnt).Error
	return cnt, err
}

func (g *activityGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Activity{}).
		Where("id = ?", id).Updates(map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}).Error
}

func (g *activityGORMDAO) PubList(ctx context.Context, offset, limit int) ([]Activity, error) {
	var as []Activity
	err := g.db.WithContext(ctx).
		Where("status = ?", ActivityStatusPublished).
		Order("start_at DESC").
		Offset(offset).Limit(limit).Find(&as).Error
	return as, err
}

func (g *activityGORMDAO) RsvpToggle(ctx context.Context, activityId, uid int64) (bool, error) {
	var rsvped bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("activity_id = ? AND uid = ?", activityId, uid).
			First(&Rsvp{}).Error
		switch {
		case err == nil:
			return g.deleteRsvp(tx, activityId, uid)
		case errors.Is(err, gorm.ErrRecordNotFound):
			rsvped = true
			return g.insertRsvp(tx, activityId, uid)
		default:
			return err
		}
	})
	return rsvped, err
}

func (g *activityGORMDAO) insertRsvp(tx *gorm.DB, activityId, uid int64) error {
	now := time.Now().UnixMilli()
	err := tx.Create(&Rsvp{
		ActivityId: activityId,
		Uid:        uid,
		Ctime:      now,
		Utime:      now,
	}).Error
	if err != nil {
		return err
	}
	return tx.Model(&Activity{}).
		Where("id = ?", activityId).
		Updates(map[string]any{
			"rsvp_cnt": gorm.Expr("`rsvp_cnt` + 1"),
			"utime":    now,
		}).Error
}

func (g *activityGORMDAO) deleteRsvp(tx *gorm.DB, activityId, uid int64) error {
	err := tx.
		Where("activity_id = ? AND uid = ?", activityId, uid).
		Delete(&Rsvp{}).Error
	if err != nil {
		return err
	}
	return tx.Model(&Activity{}).
		Where("id = ? AND rsvp_cnt > 0", activityId).
		Updates(map[string]any{
			"rsvp_cnt": gorm.Expr("`rsvp_cnt` - 1"),
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (g *activityGORMDAO) MarkAttended(ctx context.Context, activityId, uid int64) error {
	res := g.db.WithContext(ctx).Model(&Rsvp{}).
		Where("activity_id = ? AND uid = ?", activityId, uid).
		Updates(map[string]any{
			"attended": true,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *activityGORMDAO) AttendedCount(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Rsvp{}).
		Where("uid = ? AND attended = ?", uid, true).
		Count(&cnt).Error
	return cnt, err
}

func (g *activityGORMDAO) RsvpList(ctx context.Context, activityId int64) ([]Rsvp, error) {
	var rs []Rsvp
	err := g.db.WithContext(ctx).
		Where("activity_id = ?", activityId).
		Order("id ASC").Find(&rs).Error
	return rs, err
}

func (g *activityGORMDAO) GetRsvp(ctx context.Context, activityId, uid int64) (Rsvp, error) {
	var r Rsvp
	err := g.db.WithContext(ctx).
		Where("activity_id = ? AND uid = ?", activityId, uid).
		First(&r).Error
	return r, err
}

const (
	ActivityStatusUnpublished uint8 = 1
	ActivityStatusPublished   uint8 = 2
)

type Activity struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:活动表自增ID"`
	Title    string `gorm:"type:varchar(256);not null;comment:活动标题"`
	Content  string `gorm:"type:text;comment:活动介绍"`
	Location string `gorm:"type:varchar(256);comment:活动地点"`
	StartAt  int64  `gorm:"not null;index:idx_start_at;comment:开始时间"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=未发布 2=已发布"`
	RsvpCnt  int64  `gorm:"not null;default:0;comment:报名人数"`
	Ctime    int64
	Utime    int64
}

type Rsvp struct {
	Id         int64 `gorm:"primaryKey;autoIncrement"`
	ActivityId int64 `gorm:"not null;uniqueIndex:unq_activity_uid;comment:活动ID"`
	Uid        int64 `gorm:"not null;uniqueIndex:unq_activity_uid;index:idx_uid;comment:用户ID"`
	Attended   bool  `gorm:"not null;default:false;comment:是否到场"`
	Ctime      int64
	Utime      int64
}
