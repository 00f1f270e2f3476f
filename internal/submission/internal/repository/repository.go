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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/submission/internal/repository/dao"
)

var (
	ErrRecordNotFound         = dao.ErrRecordNotFound
	ErrAccountNotFound        = dao.ErrAccountNotFound
	ErrConcurrentModification = dao.ErrConcurrentModification
	ErrDuplicatedPointLog     = dao.ErrDuplicatedPointLog
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=repomocks -typed SubmissionRepository
type SubmissionRepository interface {
	Save(ctx context.Context, sub domain.Submission) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Submission, error)
	FindByChallengeUid(ctx context.Context, challengeId, uid int64) (domain.Submission, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error)
	PendingList(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error)
	CountPassedByUid(ctx context.Context, uid int64) (int64, error)

	// ApplyReview 一次评审的原子落库,冲突时返回 ErrConcurrentModification
	ApplyReview(ctx context.Context, submissionId int64, decision domain.SubmissionStatus, reviewerId int64, feedback string) (domain.Reviewed, error)
	CreateAccount(ctx context.Context, uid int64) error
	AccountByUid(ctx context.Context, uid int64) (domain.PointAccount, error)
	TopAccounts(ctx context.Context, n int) ([]domain.PointAccount, error)
}

type submissionRepository struct {
	dao    dao.SubmissionDAO
	ledger dao.LedgerDAO
}

func NewSubmissionRepository(d dao.SubmissionDAO, ledger dao.LedgerDAO) SubmissionRepository {
	return &submissionRepository{
		dao:    d,
		ledger: ledger,
	}
}

func (r *submissionRepository) Save(ctx context.Context, sub domain.Submission) (int64, error) {
	return r.dao.Upsert(ctx, r.toEntity(sub))
}

func (r *submissionRepository) FindById(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.dao.FindById(ctx, id)
	return r.toDomain(s), err
}

func (r *submissionRepository) FindByChallengeUid(ctx context.Context, challengeId, uid int64) (domain.Submission, error) {
	s, err := r.dao.FindByChallengeUid(ctx, challengeId, uid)
	return r.toDomain(s), err
}

func (r *submissionRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error) {
	ss, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) PendingList(ctx context.Context, offset, limit int) ([]domain.Submission, int64, error) {
	total, err := r.dao.PendingCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	ss, err := r.dao.PendingList(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(ss, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	}), total, nil
}

func (r *submissionRepository) CountPassedByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountPassedByUid(ctx, uid)
}

func (r *submissionRepository) ApplyReview(ctx context.Context, submissionId int64, decision domain.SubmissionStatus, reviewerId int64, feedback string) (domain.Reviewed, error) {
	return r.ledger.ApplyReview(ctx, submissionId, decision.ToUint8(), reviewerId, feedback)
}

func (r *submissionRepository) CreateAccount(ctx context.Context, uid int64) error {
	return r.ledger.CreateAccount(ctx, uid)
}

func (r *submissionRepository) AccountByUid(ctx context.Context, uid int64) (domain.PointAccount, error) {
	a, err := r.ledger.FindAccountByUid(ctx, uid)
	if err != nil {
		return domain.PointAccount{}, err
	}
	logs, err := r.ledger.FindLogsByUid(ctx, uid)
	return r.toDomainAccount(a, logs), err
}

func (r *submissionRepository) TopAccounts(ctx context.Context, n int) ([]domain.PointAccount, error) {
	as, err := r.ledger.TopAccounts(ctx, n)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.PointAccount) domain.PointAccount {
		return r.toDomainAccount(src, nil)
	}), nil
}

func (r *submissionRepository) toEntity(sub domain.Submission) dao.Submission {
	return dao.Submission{
		Id:          sub.Id,
		ChallengeId: sub.ChallengeId,
		Uid:         sub.Uid,
		Code:        sub.Code,
		Language:    sub.Language,
		Status:      sub.Status.ToUint8(),
		Points:      sub.Points,
	}
}

func (r *submissionRepository) toDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		Id:          s.Id,
		ChallengeId: s.ChallengeId,
		Uid:         s.Uid,
		Code:        s.Code,
		Language:    s.Language,
		Status:      domain.SubmissionStatus(s.Status),
		Points:      s.Points,
		Feedback:    s.Feedback,
		SubmittedAt: s.SubmittedAt,
		ReviewedAt:  s.ReviewedAt,
		ReviewedBy:  s.ReviewedBy,
	}
}

func (r *submissionRepository) toDomainAccount(a dao.PointAccount, logs []dao.PointLog) domain.PointAccount {
	return domain.PointAccount{
		Uid:             a.Uid,
		Total:           a.Total,
		LastPointUpdate: a.LastPointUpdate,
		Logs: slice.Map(logs, func(idx int, src dao.PointLog) domain.PointLog {
			return domain.PointLog{
				Id:           src.Id,
				Key:          src.Key,
				Uid:          src.Uid,
				SubmissionId: src.SubmissionId,
				Change:       src.Change,
				Balance:      src.Balance,
				Desc:         src.Desc,
			}
		}),
	}
}
