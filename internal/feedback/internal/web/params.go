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
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// intval 读取开头的整数部分，保留符号，"2abc" 为 2，开头没有数字时 ok 为 false
func intval(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		ok = true
		n = n*10 + int(r-'0')
		if n > 1<<31 {
			n = 1 << 31
			break
		}
	}
	if neg {
		n = -n
	}
	return n, ok
}

// absint 取开头的整数部分的绝对值，解析不出来时为 0
func absint(s string) int {
	n, _ := intval(s)
	if n < 0 {
		return -n
	}
	return n
}

// clampPerPage 缺省或开头没有数字时用默认值，否则限制在 [1, maxPerPage]
func clampPerPage(raw string, present bool) int {
	if !present {
		return defaultPerPage
	}
	v, ok := intval(raw)
	if !ok {
		return defaultPerPage
	}
	return max(1, min(maxPerPage, v))
}

// restPage 缺省或开头没有数字时为第一页，非正数原样返回
func restPage(raw string, present bool) int {
	if !present {
		return 1
	}
	v, ok := intval(raw)
	if !ok {
		return 1
	}
	return v
}

// parseID 路径里的 id 必须是正整数
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// withQuery 在当前地址上替换一个查询参数
func withQuery(u *url.URL, key string, val int) string {
	next := *u
	q := next.Query()
	q.Set(key, strconv.Itoa(val))
	next.RawQuery = q.Encode()
	return next.RequestURI()
}

// loginURL 登录之后跳回 redirectTo
func loginURL(base, redirectTo string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("redirect_to", redirectTo)
	u.RawQuery = q.Encode()
	return u.String()
}
