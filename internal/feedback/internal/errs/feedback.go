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

package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrValidation 必填字段缺失
	ErrValidation = errors.New("feedback: all fields are required")
	// ErrNotFound id 对应的反馈不存在
	ErrNotFound = errors.New("feedback: not found")
)

// StorageError 底层存储失败
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("feedback: %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrorCode REST 接口的错误响应
type ErrorCode struct {
	Status int
	Code   string
	Msg    string
}

var (
	BadID       = ErrorCode{Status: http.StatusBadRequest, Code: "bad_id", Msg: "Invalid ID."}
	NotFound    = ErrorCode{Status: http.StatusNotFound, Code: "not_found", Msg: "Feedback not found."}
	Forbidden   = ErrorCode{Status: http.StatusForbidden, Code: "rest_forbidden", Msg: "Sorry, you are not allowed to do that."}
	SystemError = ErrorCode{Status: http.StatusInternalServerError, Code: "system_error", Msg: "Something went wrong."}
)
