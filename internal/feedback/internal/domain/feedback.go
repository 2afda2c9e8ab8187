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

package domain

import "time"

// Feedback 一条访客反馈
type Feedback struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
	Ctime     time.Time
	Utime     time.Time
}

// Missing 返回第一个为空的必填字段名，全部非空时返回空串
func (f Feedback) Missing() string {
	switch {
	case f.FirstName == "":
		return "first_name"
	case f.LastName == "":
		return "last_name"
	case f.Email == "":
		return "email"
	case f.Subject == "":
		return "subject"
	case f.Message == "":
		return "message"
	}
	return ""
}
