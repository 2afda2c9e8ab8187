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
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback"
	"github.com/jahir07/wp-user-feedback/internal/pkg/middleware"
)

func InitMetrics() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder(econf.GetString("metrics.namespace")).
		IgnorePaths("/hello")
}

// corsMiddleware 允许 localhost 以及 cors.allowedOrigins 里配置的域名
func corsMiddleware(allowHeaders ...string) gin.HandlerFunc {
	var cfg config.CORSConfig
	err := econf.UnmarshalKey("cors", &cfg)
	if err != nil {
		panic(err)
	}
	return cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     append([]string{"Authorization", "Content-Type"}, allowHeaders...),
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range cfg.AllowedOrigins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	})
}

func initGinxServer(sp session.Provider,
	fm *feedback.Module,
	mb *middleware.MetricsBuilder,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware(), mb.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	fm.Hdl.PublicRoutes(res.Engine)
	// 防伪令牌和权限由各自的 guard 校验
	fm.Hdl.PrivateRoutes(res.Engine)
	return res
}
