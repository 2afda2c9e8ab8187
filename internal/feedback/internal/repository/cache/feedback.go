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
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// FeedbackCache 详情缓存由外部填充，这里只负责淘汰
type FeedbackCache interface {
	Delete(ctx context.Context, id int64) error
}

type feedbackCache struct {
	ec ecache.Cache
}

func NewFeedbackCache(ec ecache.Cache) FeedbackCache {
	return &feedbackCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "wpuserfeedback:",
		},
	}
}

func (c *feedbackCache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return errors.Wrapf(err, "淘汰反馈缓存 %d 失败", id)
}

func (c *feedbackCache) key(id int64) string {
	return fmt.Sprintf("feedback_%d", id)
}
