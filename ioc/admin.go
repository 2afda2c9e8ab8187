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

package ioc

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/jahir07/wp-user-feedback/internal/feedback"
	"github.com/jahir07/wp-user-feedback/internal/pkg/middleware"
)

type AdminServer *egin.Component

func InitAdminServer(fm *feedback.Module, mb *middleware.MetricsBuilder) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware("X-WP-Nonce"), mb.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	fm.AdminHdl.PrivateRoutes(res.Engine)
	return res
}
