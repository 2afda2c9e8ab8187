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

import "time"

// Feedback 对应 wpuserfeedback 表
type Feedback struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"type:varchar(55);not null"`
	LastName  string    `gorm:"type:varchar(55);not null"`
	Email     string    `gorm:"type:varchar(100);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Ctime     time.Time `gorm:"column:date_created;type:datetime;not null"`
	Utime     time.Time `gorm:"column:date_updated;type:datetime;not null;index:idx_date_updated"`
}

func (Feedback) TableName() string {
	return "wpuserfeedback"
}
