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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./challenge.go -destination=./mocks/challenge.mock.go -package=daomocks -typed ChallengeDAO
type ChallengeDAO interface {
	Save(ctx context.Context, c Challenge) (int64, error)
	GetById(ctx context.Context, id int64) (Challenge, error)
	List(ctx context.Context, offset, limit int) ([]Challenge, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	PubList(ctx context.Context, offset, limit int) ([]Challenge, error)
	GetPubById(ctx context.Context, id int64) (Challenge, error)
}

type challengeGORMDAO struct {
	db *egorm.Component
}

func NewChallengeGORMDAO(db *egorm.Component) ChallengeDAO {
	return &challengeGORMDAO{db: db}
}

func (g *challengeGORMDAO) Save(ctx context.Context, c Challenge) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"title":      c.Title,
			"content":    c.Content,
			"difficulty": c.Difficulty,
			"points":     c.Points,
			"week_no":    c.WeekNo,
			"utime":      now,
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (g *challengeGORMDAO) GetById(ctx context.Context, id int64) (Challenge, error) {
	var c Challenge
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *challengeGORMDAO) List(ctx context.Context, offset, limit int) ([]Challenge, error) {
	var cs []Challenge
	err := g.db.WithContext(ctx).
		Order("week_no DESC, id DESC").
		Offset(offset).Limit(limit).Find(&cs).Error
	return cs, err
}

func (g *challengeGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Challenge{}).Count(&cnt).Error
	return cnt, err
}

func (g *challengeGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return g.db.WithContext(ctx).Model(&Challenge{}).
		Where("id = ?", id).Updates(map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}).Error
}

func (g *challengeGORMDAO) PubList(ctx context.Context, offset, limit int) ([]Challenge, error) {
	var cs []Challenge
	err := g.db.WithContext(ctx).
		Where("status = ?", ChallengeStatusPublished).
		Order("week_no DESC, id DESC").
		Offset(offset).Limit(limit).Find(&cs).Error
	return cs, err
}

func (g *challengeGORMDAO) GetPubById(ctx context.Context, id int64) (Challenge, error) {
	var c Challenge
	err := g.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, ChallengeStatusPublished).
		First(&c).Error
	return c, err
}

const (
	ChallengeStatusUnpublished uint8 = 1
	ChallengeStatusPublished   uint8 = 2
)

type Challenge struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:挑战表自增ID"`
	Title      string `gorm:"type:varchar(256);not null;comment:挑战标题"`
	Content    string `gorm:"type:text;comment:挑战描述"`
	Difficulty uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:难度 1-5"`
	Points     int64  `gorm:"not null;default:0;comment:通过奖励的积分"`
	WeekNo     int64  `gorm:"not null;index:idx_week_no;comment:第几周的挑战"`
	Status     uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=未发布 2=已发布"`
	Ctime      int64
	Utime      int64
}
