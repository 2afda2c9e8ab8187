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

import "strconv"

const (
	paginateEndSize = 1
	paginateMidSize = 2
)

// pageLink 分页条中的一项
type pageLink struct {
	Kind string
	Text string
	URL  string
}

const (
	linkPrev    = "prev"
	linkNext    = "next"
	linkPage    = "page"
	linkCurrent = "current"
	linkDots    = "dots"
)

// paginateLinks 两端各保留 paginateEndSize 页，当前页左右各 paginateMidSize 页，
// 中间用省略号隔开。总页数少于 2 时没有分页条。
func paginateLinks(totalPages, current int, pageURL func(page int) string) []pageLink {
	if totalPages < 2 {
		return nil
	}
	var links []pageLink
	if current > 1 {
		links = append(links, pageLink{Kind: linkPrev, Text: "«", URL: pageURL(current - 1)})
	}
	dots := false
	for n := 1; n <= totalPages; n++ {
		switch {
		case n == current:
			links = append(links, pageLink{Kind: linkCurrent, Text: strconv.Itoa(n)})
			dots = true
		case n <= paginateEndSize ||
			(n >= current-paginateMidSize && n <= current+paginateMidSize) ||
			n > totalPages-paginateEndSize:
			links = append(links, pageLink{Kind: linkPage, Text: strconv.Itoa(n), URL: pageURL(n)})
			dots = true
		case dots:
			links = append(links, pageLink{Kind: linkDots, Text: "…"})
			dots = false
		}
	}
	if current < totalPages {
		links = append(links, pageLink{Kind: linkNext, Text: "»", URL: pageURL(current + 1)})
	}
	return links
}

// totalPages 向上取整
func totalPages(total int64, perPage int) int {
	if perPage < 1 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// cpageURL 旧版分页链接的格式
func cpageURL(page int) string {
	return "?cpage=" + strconv.Itoa(page)
}
