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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestSubmissionGORMDAO_Upsert(t *testing.T) {
	testCases := []struct {
		name    string
		sub     Submission
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "并发首次提交撞唯一索引",
			sub: Submission{
				Id:          1,
				ChallengeId: 2,
				Uid:         3,
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				// 查不到,走创建分支
				mock.ExpectQuery("SELECT \\* FROM `submissions` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnError(&mysql.MySQLError{
						Number: 1062,
					})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrConcurrentModification,
		},
		{
			name: "首次提交成功",
			sub: Submission{
				Id:          1,
				ChallengeId: 2,
				Uid:         3,
			},
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `submissions` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("INSERT INTO `submissions` .*").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantErr: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			d := NewSubmissionGORMDAO(db)
			_, err = d.Upsert(context.Background(), tc.sub)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.wantErr))
		})
	}
}
