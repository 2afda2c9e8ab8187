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

// Package sanitizer 清洗访客输入，输出可以直接落库并回显
package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()

	whitespaces = regexp.MustCompile(`[\r\n\t ]+`)
	octets      = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// Text 单行文本：去掉所有标签、折叠空白、去掉百分号编码
func Text(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	s = stripTags(s)
	s = whitespaces.ReplaceAllString(s, " ")
	for octets.MatchString(s) {
		s = octets.ReplaceAllString(s, "")
	}
	s = whitespaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// maxStripRounds 每一轮最多解开一层实体编码
const maxStripRounds = 8

// stripTags 去标签后还原实体，实体里藏着的标签要再去一次，直到结果不再变化
func stripTags(s string) string {
	for i := 0; i < maxStripRounds; i++ {
		next := html.UnescapeString(strict.Sanitize(s))
		if next == s {
			return next
		}
		s = next
	}
	// 编码层数过多，保留转义后的形式
	return strict.Sanitize(s)
}

// HTML 正文：保留安全的富文本标签
func HTML(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	return strings.TrimSpace(ugc.Sanitize(s))
}
