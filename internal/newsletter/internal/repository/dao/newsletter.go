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

type NewsletterDAO interface {
	Subscribe(ctx context.Context, sub Subscription) error
	Unsubscribe(ctx context.Context, email string) error
	FindSubscribed(ctx context.Context, offset, limit int) ([]Subscription, error)
	CountSubscribed(ctx context.Context) (int64, error)
	CreateIssue(ctx context.Context, issue Issue) (int64, error)
	IssueList(ctx context.Context, offset, limit int) ([]Issue, error)
}

type GORMNewsletterDAO struct {
	db *egorm.Component
}

func NewGORMNewsletterDAO(db *egorm.Component) NewsletterDAO {
	return &GORMNewsletterDAO{db: db}
}

// Subscribe 重复订阅等价于重新订阅,退订过的邮箱再订阅会被重新拉回来
func (g *GORMNewsletterDAO) Subscribe(ctx context.Context, sub Subscription) error {
	now := time.Now().UnixMilli()
	sub.Subscribed = true
	sub.Ctime = now
	sub.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"uid":        sub.Uid,
			"subscribed": true,
			"utime":      now,
		}),
	}).Create(&sub).Error
}

func (g *GORMNewsletterDAO) Unsubscribe(ctx context.Context, email string) error {
	res := g.db.WithContext(ctx).Model(&Subscription{}).
		Where("email = ? AND subscribed = ?", email, true).
		Updates(map[string]interface{}{
			"subscribed": false,
			"utime":      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMNewsletterDAO) FindSubscribed(ctx context.Context, offset, limit int) ([]Subscription, error) {
	var res []Subscription
	err := g.db.WithContext(ctx).
		Where("subscribed = ?", true).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMNewsletterDAO) CountSubscribed(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Subscription{}).
		Where("subscribed = ?", true).
		Count(&cnt).Error
	return cnt, err
}

func (g *GORMNewsletterDAO) CreateIssue(ctx context.Context, issue Issue) (int64, error) {
	issue.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&issue).Error
	return issue.Id, err
}

func (g *GORMNewsletterDAO) IssueList(ctx context.Context, offset, limit int) ([]Issue, error) {
	var res []Issue
	err := g.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type Subscription struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Email      string `gorm:"type:varchar(256);uniqueIndex:unq_email"`
	Uid        int64  `gorm:"index:idx_uid"`
	Subscribed bool
	Ctime      int64
	Utime      int64
}

func (Subscription) TableName() string {
	return "newsletter_subscriptions"
}

type Issue struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	BatchKey  string `gorm:"type:varchar(64);uniqueIndex:unq_batch_key"`
	Subject   string `gorm:"type:varchar(512)"`
	Body      string `gorm:"type:text"`
	SentCnt   int64
	FailedCnt int64
	Ctime     int64
}

func (Issue) TableName() string {
	return "newsletter_issues"
}
