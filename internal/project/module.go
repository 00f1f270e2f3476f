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

package project

import (
	"github.com/opencoderclub/clubhouse/internal/project/internal/domain"
	"github.com/opencoderclub/clubhouse/internal/project/internal/service"
	"github.com/opencoderclub/clubhouse/internal/project/internal/web"
)

type Project = domain.Project
type Service = service.Service
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var ErrProjectNotFound = service.ErrProjectNotFound

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
