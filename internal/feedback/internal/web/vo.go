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

package web

import (
	"time"

	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/domain"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type Feedback struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	DateCreated string `json:"date_created"`
	DateUpdated string `json:"date_updated"`
}

func newFeedback(fb domain.Feedback) Feedback {
	return Feedback{
		ID:          fb.ID,
		FirstName:   fb.FirstName,
		LastName:    fb.LastName,
		Email:       fb.Email,
		Subject:     fb.Subject,
		Message:     fb.Message,
		DateCreated: fb.Ctime.Format(time.DateTime),
		DateUpdated: fb.Utime.Format(time.DateTime),
	}
}

type ListResp struct {
	Items []Feedback `json:"items"`
	Total int64      `json:"total"`
}

type UpdateReq struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateResp struct {
	Updated bool `json:"updated"`
}

type DeleteResp struct {
	Deleted bool `json:"deleted"`
}

type ErrorResp struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusResp 表单提交和旧版回调的统一返回
type StatusResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type PaginateResp struct {
	ListHTML   string `json:"list_html"`
	Pagination string `json:"pagination"`
}

type BootstrapResp struct {
	Root  string `json:"root"`
	Nonce string `json:"nonce"`
	Cap   bool   `json:"cap"`
}

// 下面是模板使用的数据

type formPage struct {
	Title   string
	Action  string
	Nonce   string
	Visitor Visitor
}

type resultsPage struct {
	Title      string
	Authorized bool
	LoginURL   string
	Nonce      string
	PerPage    int
	Items      []Feedback
	Links      []pageLink
}
