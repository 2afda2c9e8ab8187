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

package sanitizer

import (
	"regexp"
	"strings"
)

var (
	localInvalid  = regexp.MustCompile("[^a-zA-Z0-9!#$%&'*+/=?^_`{|}~.-]")
	domainInvalid = regexp.MustCompile(`[^a-zA-Z0-9-]+`)
	multiDots     = regexp.MustCompile(`\.{2,}`)
)

const trimSet = " \t\n\r\x00\x0B"

// Email 去掉地址里的非法字符，结构不合法时返回空串
func Email(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 6 {
		return ""
	}
	at := strings.Index(s, "@")
	if at < 1 {
		return ""
	}
	local := localInvalid.ReplaceAllString(s[:at], "")
	if local == "" {
		return ""
	}
	domain := multiDots.ReplaceAllString(s[at+1:], "")
	domain = strings.Trim(domain, trimSet+".")
	if domain == "" {
		return ""
	}
	subs := strings.Split(domain, ".")
	if len(subs) < 2 {
		return ""
	}
	parts := make([]string, 0, len(subs))
	for _, sub := range subs {
		sub = strings.Trim(sub, trimSet+"-")
		sub = domainInvalid.ReplaceAllString(sub, "")
		if sub != "" {
			parts = append(parts, sub)
		}
	}
	if len(parts) < 2 {
		return ""
	}
	return local + "@" + strings.Join(parts, ".")
}
