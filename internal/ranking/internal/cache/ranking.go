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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/opencoderclub/clubhouse/internal/ranking/internal/domain"
)

type RankingCache interface {
	GetTop(ctx context.Context) ([]domain.Rank, error)
	SetTop(ctx context.Context, ranks []domain.Rank) error
	DelTop(ctx context.Context) error
}

type rankingECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewRankingECache(ec ecache.Cache) RankingCache {
	return &rankingECache{
		ec: &ecache.NamespaceCache{
			Namespace: "ranking:",
			C:         ec,
		},
		// 榜单允许短暂陈旧,积分变动事件会主动失效
		expiration: 30 * time.Second,
	}
}

func (r *rankingECache) GetTop(ctx context.Context) ([]domain.Rank, error) {
	val := r.ec.Get(ctx, r.topKey())
	if val.Err != nil {
		return nil, val.Err
	}
	data, err := val.AsBytes()
	if err != nil {
		return nil, err
	}
	var ranks []domain.Rank
	err = json.Unmarshal(data, &ranks)
	return ranks, err
}

func (r *rankingECache) SetTop(ctx context.Context, ranks []domain.Rank) error {
	data, err := json.Marshal(ranks)
	if err != nil {
		return err
	}
	return r.ec.Set(ctx, r.topKey(), data, r.expiration)
}

func (r *rankingECache) DelTop(ctx context.Context) error {
	_, err := r.ec.Delete(ctx, r.topKey())
	return err
}

// 注意 Namespace 设置
func (r *rankingECache) topKey() string {
	return "top"
}
