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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./project.go -destination=./mocks/project.mock.go -package=daomocks -typed ProjectDAO
type ProjectDAO interface {
	Create(ctx context.Context, p Project) (int64, error)
	GetById(ctx context.Context, id int64) (Project, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Project, error)
	List(ctx context.Context, offset, limit int) ([]Project, error)
	Count(ctx context.Context) (int64, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
}

type projectGORMDAO struct {
	db *egorm.Component
}

func NewProjectGORMDAO(db *egorm.Component) ProjectDAO {
	return &projectGORMDAO{db: db}
}

func (g *projectGORMDAO) Create(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *projectGORMDAO) GetById(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (g *projectGORMDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Project, error) {
	var ps []Project
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).Find(&ps).Error
	return ps, err
}

func (g *projectGORMDAO) List(ctx context.Context, offset, limit int) ([]Project, error) {
	var ps []Project
	err := g.db.WithContext(ctx).
		Order("submitted_at DESC").
		Offset(offset).Limit(limit).Find(&ps).Error
	return ps, err
}

func (g *projectGORMDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Project{}).Count(&cnt).Error
	return cnt, err
}

func (g *projectGORMDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var cnt int64
	err := g.db.WithContext(ctx).Model(&Project{}).
		Where("uid = ?", uid).Count(&cnt).Error
	return cnt, err
}

type Project struct {
	Id          int64  `gorm:"primaryKey;comment:雪花ID"`
	Uid         int64  `gorm:"not null;index:idx_uid;comment:提交人"`
	Name        string `gorm:"type:varchar(256);not null;comment:项目名"`
	RepoURL     string `gorm:"type:varchar(512);comment:仓库地址"`
	Description string `gorm:"type:text;comment:项目介绍"`
	SubmittedAt int64  `gorm:"not null;comment:提交时间"`
	Ctime       int64
	Utime       int64
}
