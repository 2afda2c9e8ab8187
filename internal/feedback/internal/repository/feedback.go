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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/domain"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository/cache"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository/dao"
)

// FeedbackRepository 反馈的存储访问层，所有写操作都只影响单行
type FeedbackRepository interface {
	// Create 五个字段都必须非空，否则不会触碰存储
	Create(ctx context.Context, fb domain.Feedback) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Feedback, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Feedback, error)
	// UpdateContent 只更新 Subject 和 Message，返回是否真的有行被修改
	UpdateContent(ctx context.Context, fb domain.Feedback) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CachedFeedbackRepository 读写都走数据库，更新和删除成功之后淘汰 feedback_<id> 缓存
type CachedFeedbackRepository struct {
	dao    dao.FeedbackDAO
	cache  cache.FeedbackCache
	logger *elog.Component
}

func NewCachedFeedbackRepository(d dao.FeedbackDAO, c cache.FeedbackCache) FeedbackRepository {
	return &CachedFeedbackRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedFeedbackRepository) Create(ctx context.Context, fb domain.Feedback) (int64, error) {
	if fb.Missing() != "" {
		return 0, errs.ErrValidation
	}
	id, err := repo.dao.Insert(ctx, repo.toEntity(fb))
	if err != nil {
		return 0, &errs.StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

func (repo *CachedFeedbackRepository) List(ctx context.Context, offset, limit int) ([]domain.Feedback, error) {
	res, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, &errs.StorageError{Op: "list", Err: err}
	}
	return slice.Map(res, func(idx int, src dao.Feedback) domain.Feedback {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedFeedbackRepository) Count(ctx context.Context) (int64, error) {
	cnt, err := repo.dao.Count(ctx)
	if err != nil {
		return 0, &errs.StorageError{Op: "count", Err: err}
	}
	return cnt, nil
}

// FindByID 总是查数据库，缓存只在写之后淘汰
func (repo *CachedFeedbackRepository) FindByID(ctx context.Context, id int64) (domain.Feedback, error) {
	entity, err := repo.dao.FindByID(ctx, id)
	switch {
	case errors.Is(err, dao.ErrRecordNotFound):
		return domain.Feedback{}, errs.ErrNotFound
	case err != nil:
		return domain.Feedback{}, &errs.StorageError{Op: "find", Err: err}
	}
	return repo.toDomain(entity), nil
}

func (repo *CachedFeedbackRepository) UpdateContent(ctx context.Context, fb domain.Feedback) (bool, error) {
	affected, err := repo.dao.UpdateContent(ctx, fb.ID, fb.Subject, fb.Message)
	if err != nil {
		return false, &errs.StorageError{Op: "update", Err: err}
	}
	repo.evict(ctx, fb.ID)
	return affected > 0, nil
}

func (repo *CachedFeedbackRepository) Delete(ctx context.Context, id int64) (bool, error) {
	affected, err := repo.dao.Delete(ctx, id)
	if err != nil {
		return false, &errs.StorageError{Op: "delete", Err: err}
	}
	repo.evict(ctx, id)
	return affected > 0, nil
}

func (repo *CachedFeedbackRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("淘汰反馈缓存失败", elog.Int64("id", id), elog.FieldErr(err))
	}
}

func (repo *CachedFeedbackRepository) toEntity(fb domain.Feedback) dao.Feedback {
	return dao.Feedback{
		ID:        fb.ID,
		FirstName: fb.FirstName,
		LastName:  fb.LastName,
		Email:     fb.Email,
		Subject:   fb.Subject,
		Message:   fb.Message,
	}
}

func (repo *CachedFeedbackRepository) toDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:        fb.ID,
		FirstName: fb.FirstName,
		LastName:  fb.LastName,
		Email:     fb.Email,
		Subject:   fb.Subject,
		Message:   fb.Message,
		Ctime:     fb.Ctime,
		Utime:     fb.Utime,
	}
}
