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
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gotomicro/ego/core/elog"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var views = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

func renderString(name string, data any) (string, error) {
	var buf bytes.Buffer
	err := views.ExecuteTemplate(&buf, name, data)
	return buf.String(), err
}

func renderHTML(ctx *ginx.Context, name string, data any) (ginx.Result, error) {
	page, err := renderString(name, data)
	if err != nil {
		elog.Error("渲染模板失败", elog.String("template", name), elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	return ginx.Result{}, ginx.ErrNoResponse
}
