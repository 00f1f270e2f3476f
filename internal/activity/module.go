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

package activity

import (
	"github.com/opencoderclub/clubhouse/internal/activity/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/service"
	"github.com/opencoderclub/clubhouse/internal/activity/internal/web"
)

type Activity = domain.Activity
type ActivityStatus = domain.ActivityStatus
type Rsvp = domain.Rsvp
type Service = service.Service
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var (
	ErrActivityNotFound = service.ErrActivityNotFound
	ErrRsvpNotFound     = service.ErrRsvpNotFound
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
