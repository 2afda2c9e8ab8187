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

package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/domain"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository"
	"github.com/jahir07/wp-user-feedback/internal/pkg/sanitizer"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	// Submit c端: 清洗并校验后落库
	Submit(ctx context.Context, fb domain.Feedback) (int64, error)
	// List 管理端: 按 id 倒序分页，pageSize 或 pageNo 不合法时返回空
	List(ctx context.Context, pageSize, pageNo int) ([]domain.Feedback, error)
	// ListWithTotal 同 List，顺带返回总数
	ListWithTotal(ctx context.Context, pageSize, pageNo int) ([]domain.Feedback, int64, error)
	// Info 详情
	Info(ctx context.Context, id int64) (domain.Feedback, error)
	// Update 只改主题和内容，空串会覆盖原值
	Update(ctx context.Context, id int64, subject, message string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type service struct {
	repo   repository.FeedbackRepository
	logger *elog.Component
}

func NewService(repo repository.FeedbackRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, fb domain.Feedback) (int64, error) {
	fb = domain.Feedback{
		FirstName: sanitizer.Text(fb.FirstName),
		LastName:  sanitizer.Text(fb.LastName),
		Email:     sanitizer.Email(fb.Email),
		Subject:   sanitizer.Text(fb.Subject),
		Message:   sanitizer.HTML(fb.Message),
	}
	if field := fb.Missing(); field != "" {
		s.logger.Debug("反馈缺少必填字段", elog.String("field", field))
		return 0, errs.ErrValidation
	}
	id, err := s.repo.Create(ctx, fb)
	if err != nil {
		s.logger.Error("保存反馈失败", elog.FieldErr(err))
	}
	return id, err
}

func (s *service) List(ctx context.Context, pageSize, pageNo int) ([]domain.Feedback, error) {
	if pageSize < 1 || pageNo < 1 {
		return []domain.Feedback{}, nil
	}
	return s.repo.List(ctx, (pageNo-1)*pageSize, pageSize)
}

func (s *service) ListWithTotal(ctx context.Context, pageSize, pageNo int) ([]domain.Feedback, int64, error) {
	var (
		eg    errgroup.Group
		list  []domain.Feedback
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.List(ctx, pageSize, pageNo)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *service) Info(ctx context.Context, id int64) (domain.Feedback, error) {
	if id < 1 {
		return domain.Feedback{}, errs.ErrNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int64, subject, message string) (bool, error) {
	if id < 1 {
		return false, nil
	}
	return s.repo.UpdateContent(ctx, domain.Feedback{
		ID:      id,
		Subject: sanitizer.Text(subject),
		Message: sanitizer.HTML(message),
	})
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	if id < 1 {
		return false, nil
	}
	return s.repo.Delete(ctx, id)
}
