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
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var feedbackColumns = []string{"id", "first_name", "last_name", "email", "subject", "message", "date_created", "date_updated"}

func newTestDAO(t *testing.T, mockDB *sql.DB) FeedbackDAO {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return NewFeedbackDAO(db)
}

// datetimeArg 时间列写入的是精确到秒的 time.Time
type datetimeArg struct{}

func (datetimeArg) Match(v driver.Value) bool {
	t, ok := v.(time.Time)
	return ok && !t.IsZero() && t.Nanosecond() == 0
}

func TestGORMFeedbackDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "插入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `wpuserfeedback` .*").
					WithArgs("Jane", "Doe", "jane@x.com", "Hi", "Hello", datetimeArg{}, datetimeArg{}).
					WillReturnResult(sqlmock.NewResult(7, 1))
				return mockDB
			},
			wantID: 7,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `wpuserfeedback` .*").
					WillReturnError(errors.New("db down"))
				return mockDB
			},
			wantErr: errors.New("db down"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDAO(t, tc.mock(t))
			id, err := d.Insert(context.Background(), Feedback{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@x.com",
				Subject:   "Hi",
				Message:   "Hello",
			})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGORMFeedbackDAO_List(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows(feedbackColumns).
		AddRow(2, "John", "Roe", "john@x.com", "Second", "World", t2, t2).
		AddRow(1, "Jane", "Doe", "jane@x.com", "First", "Hello", t1, t1)
	mock.ExpectQuery("SELECT \\* FROM `wpuserfeedback` ORDER BY id DESC LIMIT \\? OFFSET \\?").
		WillReturnRows(rows)

	d := newTestDAO(t, mockDB)
	res, err := d.List(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []Feedback{
		{ID: 2, FirstName: "John", LastName: "Roe", Email: "john@x.com", Subject: "Second", Message: "World", Ctime: t2, Utime: t2},
		{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Subject: "First", Message: "Hello", Ctime: t1, Utime: t1},
	}, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGORMFeedbackDAO_FindByID(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    Feedback
		wantErr error
	}{
		{
			name: "找到",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `wpuserfeedback` WHERE id = \\?").
					WillReturnRows(sqlmock.NewRows(feedbackColumns).
						AddRow(1, "Jane", "Doe", "jane@x.com", "Hi", "Hello", created, created))
			},
			want: Feedback{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Subject: "Hi", Message: "Hello", Ctime: created, Utime: created},
		},
		{
			name: "不存在",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `wpuserfeedback` WHERE id = \\?").
					WillReturnRows(sqlmock.NewRows(feedbackColumns))
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			d := newTestDAO(t, mockDB)
			res, err := d.FindByID(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestGORMFeedbackDAO_Count(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `wpuserfeedback`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))
	d := newTestDAO(t, mockDB)
	cnt, err := d.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), cnt)
}

func TestGORMFeedbackDAO_UpdateContent(t *testing.T) {
	testCases := []struct {
		name         string
		affected     int64
		wantAffected int64
	}{
		{name: "更新成功", affected: 1, wantAffected: 1},
		{name: "id 不存在", affected: 0, wantAffected: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			mock.ExpectExec("UPDATE `wpuserfeedback` SET .* WHERE id = \\?").
				WillReturnResult(sqlmock.NewResult(0, tc.affected))
			d := newTestDAO(t, mockDB)
			affected, err := d.UpdateContent(context.Background(), 1, "Hi2", "")
			require.NoError(t, err)
			assert.Equal(t, tc.wantAffected, affected)
		})
	}
}

func TestGORMFeedbackDAO_Delete(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("DELETE FROM `wpuserfeedback` WHERE id = \\?").
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	d := newTestDAO(t, mockDB)
	affected, err := d.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = d.Delete(context.Background(), 4)
	assert.Error(t, err)
}
