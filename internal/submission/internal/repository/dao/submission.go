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
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrConcurrentModification 版本号对不上,记录已被并发修改,
	// 调用方应当从头重试整个读-改-写
	ErrConcurrentModification = errors.New("记录已被并发修改")
)

//go:generate mockgen -source=./submission.go -destination=./mocks/submission.mock.go -package=daomocks -typed SubmissionDAO
type SubmissionDAO interface {
	// Upsert 同一 (challenge_id, uid) 只保留一条提交,重复提交原地覆盖
	Upsert(ctx context.Context, sub Submission) (int64, error)
	FindById(ctx context.Context, id int64) (Submission, error)
	FindByChallengeUid(ctx context.Context, challengeId, uid int64) (Submission, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Submission, error)
	PendingList(ctx context.Context, offset, limit int) ([]Submission, error)
	PendingCount(ctx context.Context) (int64, error)
	CountPassedByUid(ctx context.Context, uid int64) (int64, error)
}

type submissionGORMDAO struct {
	db *egorm.Component
}

func NewSubmissionGORMDAO(db *egorm.Component) SubmissionDAO {
	return &submissionGORMDAO{db: db}
}

func (g *submissionGORMDAO) Upsert(ctx context.Context, sub Submission) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		s := Submission{
			Id:          sub.Id,
			ChallengeId: sub.ChallengeId,
			Uid:         sub.Uid,
			Code:        sub.Code,
			Language:    sub.Language,
			Status:      SubmissionStatusPending,
			Points:      sub.Points,
			SubmittedAt: now,
			Version:     1,
			Ctime:       now,
			Utime:       now,
		}
		res := tx.Where(Submission{ChallengeId: sub.ChallengeId, Uid: sub.Uid}).
			Attrs(s).FirstOrCreate(&s)
		if res.Error != nil {
			var me *mysql.MySQLError
			if errors.As(res.Error, &me) {
				const uniqueIndexErrNo uint16 = 1062
				if me.Number == uniqueIndexErrNo {
					// 两个首次提交同时到达,输的一方撞唯一索引,
					// 调用方重试就会走覆盖路径
					return fmt.Errorf("创建提交记录失败: %w", ErrConcurrentModification)
				}
			}
			return res.Error
		}
		id = s.Id
		if res.RowsAffected > 0 {
			// 首次提交
			return nil
		}
		// 重复提交: 覆盖代码,状态重置回待评审。
		// 上一次的评审字段保留,等下一次评审再覆盖。
		version := s.Version
		res = tx.Model(&Submission{}).
			Where("id = ? AND version = ?", s.Id, version).
			Updates(map[string]any{
				"code":         sub.Code,
				"language":     sub.Language,
				"points":       sub.Points,
				"status":       SubmissionStatusPending,
				"submitted_at": now,
				"version":      version + 1,
				"utime":        now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 撞上了并发的评审或者另一次重复提交
			return fmt.Errorf("更新提交记录失败: %w", ErrConcurrentModification)
		}
		return nil
	})
	return id, err
}

func (g *submissionGORMDAO) FindById(ctx context.Context, id int64) (Submission, error) {
	var s Submission
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (g *submissionGORMDAO) FindByChallengeUid(ctx context.Context, challengeId, uid int64) (Submission, error) {
	var s Submission
	err := g.db.WithContext(ctx).
		Where("challenge_id = ? AND uid = ?", challengeId, uid).First(&s).Error
	return s, err
}

func (g *submissionGORMDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Submission, error) {
	var ss []Submission
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).Find(&ss).Error
	return ss, err
}

func (g *submissionGORMDAO) PendingList(ctx context.Context, offset, limit int) ([]Submission, error) {
	var ss []Submission
	err := g.db.WithContext(ctx).
		Where("status = ?", SubmissionStatusPending).
		Order("submitted_at ASC").
		Offset(offset).Limit(limit).Find(&ss).Error
	return ss, err
}

func (g *submissionGORMDAO) PendingCount(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Submission{}).
		Where("status = ?", SubmissionStatusPending).Count(&cnt).Error
	return cnt, err
}

func (g *submissionGORMDAO) CountPassedByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Submission{}).
		Where("uid = ? AND status = ?", uid, SubmissionStatusPass).Count(&cnt).Error
	return cnt, err
}

const (
	SubmissionStatusPending uint8 = 1
	SubmissionStatusPass    uint8 = 2
	SubmissionStatusFail    uint8 = 3
)

type Submission struct {
	Id          int64  `gorm:"primaryKey;comment:提交表ID,雪花算法生成"`
	ChallengeId int64  `gorm:"not null;uniqueIndex:unq_challenge_uid,priority:1;comment:挑战ID"`
	Uid         int64  `gorm:"not null;uniqueIndex:unq_challenge_uid,priority:2;index:idx_uid;comment:提交人ID"`
	Code        string `gorm:"type:text;not null;comment:提交的代码"`
	Language    string `gorm:"type:varchar(32);not null;comment:语言"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=待评审 2=通过 3=未通过"`
	Points      int64  `gorm:"not null;default:0;comment:提交时挑战奖励积分的快照"`
	Feedback    string `gorm:"type:text;comment:评审意见"`
	SubmittedAt int64  `gorm:"not null;comment:提交时间,UTC Unix毫秒数"`
	ReviewedAt  int64  `gorm:"comment:最近一次评审时间,UTC Unix毫秒数"`
	ReviewedBy  int64  `gorm:"comment:最近一次评审人ID"`
	Version     int64  `gorm:"not null;default:1;comment:版本号"`
	Ctime       int64
	Utime       int64
}
