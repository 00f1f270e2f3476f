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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/opencoderclub/clubhouse/internal/challenge/internal/domain"
)

type ChallengeCache interface {
	GetPubDetail(ctx context.Context, id int64) (domain.Challenge, error)
	SetPubDetail(ctx context.Context, c domain.Challenge) error
	DelPubDetail(ctx context.Context, id int64) error
}

type challengeECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewChallengeECache(ec ecache.Cache) ChallengeCache {
	return &challengeECache{
		ec: &ecache.NamespaceCache{
			Namespace: "challenge:",
			C:         ec,
		},
		expiration: 10 * time.Minute,
	}
}

func (q *challengeECache) GetPubDetail(ctx context.Context, id int64) (domain.Challenge, error) {
	val := q.ec.Get(ctx, q.pubKey(id))
	if val.Err != nil {
		return domain.Challenge{}, val.Err
	}
	data, err := val.AsBytes()
	if err != nil {
		return domain.Challenge{}, err
	}
	var c domain.Challenge
	err = json.Unmarshal(data, &c)
	return c, err
}

func (q *challengeECache) SetPubDetail(ctx context.Context, c domain.Challenge) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return q.ec.Set(ctx, q.pubKey(c.Id), data, q.expiration)
}

func (q *challengeECache) DelPubDetail(ctx context.Context, id int64) error {
	_, err := q.ec.Delete(ctx, q.pubKey(id))
	return err
}

// 注意 Namespace 设置
func (q *challengeECache) pubKey(id int64) string {
	return fmt.Sprintf("pub:%d", id)
}
