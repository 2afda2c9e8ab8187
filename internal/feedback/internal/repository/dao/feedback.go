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

type FeedbackDAO interface {
	// Insert 返回自增 id
	Insert(ctx context.Context, fb Feedback) (int64, error)
	// List 按 id 倒序
	List(ctx context.Context, offset, limit int) ([]Feedback, error)
	FindByID(ctx context.Context, id int64) (Feedback, error)
	Count(ctx context.Context) (int64, error)
	// UpdateContent 只改主题和内容，返回受影响的行数
	UpdateContent(ctx context.Context, id int64, subject, message string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type GORMFeedbackDAO struct {
	db *egorm.Component
}

func NewFeedbackDAO(db *egorm.Component) FeedbackDAO {
	return &GORMFeedbackDAO{db: db}
}

func (d *GORMFeedbackDAO) Insert(ctx context.Context, fb Feedback) (int64, error) {
	now := time.Now().Truncate(time.Second)
	fb.ID = 0
	fb.Ctime = now
	fb.Utime = now
	err := d.db.WithContext(ctx).Create(&fb).Error
	return fb.ID, err
}

func (d *GORMFeedbackDAO) List(ctx context.Context, offset, limit int) ([]Feedback, error) {
	var res []Feedback
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMFeedbackDAO) FindByID(ctx context.Context, id int64) (Feedback, error) {
	var res Feedback
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GORMFeedbackDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Feedback{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMFeedbackDAO) UpdateContent(ctx context.Context, id int64, subject, message string) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Feedback{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subject":      subject,
			"message":      message,
			"date_updated": time.Now().Truncate(time.Second),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMFeedbackDAO) Delete(ctx context.Context, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Feedback{})
	return res.RowsAffected, res.Error
}
