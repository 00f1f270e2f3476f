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

package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/opencoderclub/clubhouse/internal/pkg/snowflake"
)

// InitIDGenerator 每个实例要配置不同的 node,否则 ID 会撞
func InitIDGenerator() snowflake.Generator {
	nodeId := econf.GetInt64("snowflake.node")
	res, err := snowflake.NewNodeGenerator(nodeId)
	if err != nil {
		panic(err)
	}
	return res
}
