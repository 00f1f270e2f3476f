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

package badge

import (
	"github.com/opencoderclub/clubhouse/internal/badge/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/service"
	"github.com/opencoderclub/clubhouse/internal/badge/internal/web"
)

type Badge = domain.Badge
type BadgeCriteria = domain.BadgeCriteria
type CriteriaType = domain.CriteriaType
type UserStats = domain.UserStats
type UserBadge = domain.UserBadge
type Service = service.Service
type Handler = web.Handler
type AdminHandler = web.AdminHandler

const (
	CriteriaTypePoints     = domain.CriteriaTypePoints
	CriteriaTypeChallenges = domain.CriteriaTypeChallenges
	CriteriaTypeEvents     = domain.CriteriaTypeEvents
	CriteriaTypeProjects   = domain.CriteriaTypeProjects
)

var (
	ErrBadgeNotFound   = service.ErrBadgeNotFound
	ErrBadgeAwarded    = service.ErrBadgeAwarded
	ErrInvalidCriteria = service.ErrInvalidCriteria
	ErrCriteriaLocked  = service.ErrCriteriaLocked
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
