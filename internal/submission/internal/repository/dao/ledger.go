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
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound    = errors.New("积分账户不存在")
	ErrDuplicatedPointLog = errors.New("积分流水重复")
)

// LedgerDAO 积分台账。point_accounts 的写入口只有这里,
// 评审事务之外任何代码不允许改积分。
//
//go:generate mockgen -source=./ledger.go -destination=./mocks/ledger.mock.go -package=daomocks -typed LedgerDAO
type LedgerDAO interface {
	// ApplyReview 单次评审的原子读-改-写。
	// 提交状态和积分要么一起落库,要么都不落。
	// 返回 ErrConcurrentModification 时调用方从头重试。
	ApplyReview(ctx context.Context, submissionId int64, decision uint8, reviewerId int64, feedback string) (domain.Reviewed, error)
	CreateAccount(ctx context.Context, uid int64) error
	FindAccountByUid(ctx context.Context, uid int64) (PointAccount, error)
	FindLogsByUid(ctx context.Context, uid int64) ([]PointLog, error)
	// TopAccounts n<=0 表示返回全部积分大于0的账户
	TopAccounts(ctx context.Context, n int) ([]PointAccount, error)
}

type ledgerGORMDAO struct {
	db *egorm.Component
}

func NewLedgerGORMDAO(db *egorm.Component) LedgerDAO {
	return &ledgerGORMDAO{db: db}
}

func (g *ledgerGORMDAO) ApplyReview(ctx context.Context, submissionId int64, decision uint8, reviewerId int64, feedback string) (domain.Reviewed, error) {
	var res domain.Reviewed
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()

		var sub Submission
		if err := tx.Where("id = ?", submissionId).First(&sub).Error; err != nil {
			return err
		}
		var account PointAccount
		if err := tx.Where("uid = ?", sub.Uid).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: uid = %d", ErrAccountNotFound, sub.Uid)
			}
			return err
		}

		prior := domain.SubmissionStatus(sub.Status)
		delta, err := domain.PointDelta(prior, domain.SubmissionStatus(decision), sub.Points)
		if err != nil {
			return err
		}
		// 改判扣分扣到0为止,不允许出现负积分
		if delta < 0 && account.Total+delta < 0 {
			delta = -account.Total
		}

		subVersion := sub.Version
		r := tx.Model(&Submission{}).
			Where("id = ? AND version = ?", sub.Id, subVersion).
			Updates(map[string]any{
				"status":      decision,
				"reviewed_by": reviewerId,
				"reviewed_at": now,
				"feedback":    feedback,
				"version":     subVersion + 1,
				"utime":       now,
			})
		if r.Error != nil {
			return r.Error
		}
		if r.RowsAffected == 0 {
			// 撞上了并发评审或者重复提交
			return fmt.Errorf("更新提交记录失败: %w", ErrConcurrentModification)
		}

		balance := account.Total + delta
		if delta != 0 {
			accVersion := account.Version
			r = tx.Model(&PointAccount{}).
				Where("uid = ? AND version = ?", account.Uid, accVersion).
				Updates(map[string]any{
					"total":             balance,
					"last_point_update": now,
					"version":           accVersion + 1,
					"utime":             now,
				})
			if r.Error != nil {
				return r.Error
			}
			if r.RowsAffected == 0 {
				return fmt.Errorf("更新积分账户失败: %w", ErrConcurrentModification)
			}

			log := PointLog{
				Key:          fmt.Sprintf("review:%d:%d", sub.Id, subVersion+1),
				Uid:          sub.Uid,
				SubmissionId: sub.Id,
				Change:       delta,
				Balance:      balance,
				Desc:         reviewDesc(prior, domain.SubmissionStatus(decision)),
				Ctime:        now,
				Utime:        now,
			}
			if err := tx.Create(&log).Error; err != nil {
				var me *mysql.MySQLError
				if errors.As(err, &me) {
					const uniqueIndexErrNo uint16 = 1062
					if me.Number == uniqueIndexErrNo {
						return fmt.Errorf("%w: %s", ErrDuplicatedPointLog, log.Key)
					}
				}
				return err
			}
		}

		res = domain.Reviewed{
			Uid:         sub.Uid,
			PriorStatus: prior,
			Delta:       delta,
			Balance:     balance,
		}
		return nil
	})
	return res, err
}

func (g *ledgerGORMDAO) CreateAccount(ctx context.Context, uid int64) error {
	now := time.Now().UnixMilli()
	a := PointAccount{
		Uid:     uid,
		Total:   0,
		Version: 1,
		Ctime:   now,
		Utime:   now,
	}
	// 已经有账户就什么都不做
	return g.db.WithContext(ctx).
		Where(PointAccount{Uid: uid}).Attrs(a).FirstOrCreate(&a).Error
}

func (g *ledgerGORMDAO) FindAccountByUid(ctx context.Context, uid int64) (PointAccount, error) {
	var a PointAccount
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&a).Error
	return a, err
}

func (g *ledgerGORMDAO) FindLogsByUid(ctx context.Context, uid int64) ([]PointLog, error) {
	var logs []PointLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).Order("ctime DESC").Find(&logs).Error
	return logs, err
}

func (g *ledgerGORMDAO) TopAccounts(ctx context.Context, n int) ([]PointAccount, error) {
	var as []PointAccount
	db := g.db.WithContext(ctx).
		Where("total > 0").
		Order("total DESC, last_point_update ASC")
	if n > 0 {
		db = db.Limit(n)
	}
	err := db.Find(&as).Error
	return as, err
}

func reviewDesc(prior, decision domain.SubmissionStatus) string {
	if prior == domain.SubmissionStatusPass && decision == domain.SubmissionStatusFail {
		return "评审改判,扣回积分"
	}
	return "挑战评审通过"
}

type PointAccount struct {
	Id              int64 `gorm:"primaryKey;autoIncrement;comment:积分账户自增ID"`
	Uid             int64 `gorm:"not null;uniqueIndex:unq_uid;comment:用户ID"`
	Total           int64 `gorm:"not null;default:0;comment:当前积分总数"`
	LastPointUpdate int64 `gorm:"not null;default:0;comment:最近一次积分变动时间,UTC Unix毫秒数"`
	Version         int64 `gorm:"not null;default:1;comment:版本号"`
	Ctime           int64
	Utime           int64
}

type PointLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:积分流水自增ID"`
	Key          string `gorm:"type:varchar(256);not null;uniqueIndex:unq_key;comment:去重key"`
	Uid          int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	SubmissionId int64  `gorm:"not null;index:idx_submission_id;comment:提交ID"`
	Change       int64  `gorm:"not null;comment:积分变动,正数为加,负数为扣"`
	Balance      int64  `gorm:"not null;comment:变动后的积分总数"`
	Desc         string `gorm:"type:varchar(256);not null;comment:积分流水描述"`
	Ctime        int64
	Utime        int64
}
