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
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const (
	// ManageCapability 查看和管理反馈需要的权限
	ManageCapability = "manage_options"

	authContextKey = "_feedback_auth"
)

// AuthContext 当前请求的身份，由 session 解析而来，显式传给每个处理函数
type AuthContext interface {
	LoggedIn() bool
	Can(capability string) bool
	UID() int64
	SessionID() string
	Visitor() Visitor
}

// Visitor 用于预填表单
type Visitor struct {
	FirstName string
	LastName  string
	Email     string
}

type sessionAuth struct {
	claims session.Claims
}

func (a sessionAuth) LoggedIn() bool {
	return a.claims.Uid > 0
}

func (a sessionAuth) Can(capability string) bool {
	caps := a.claims.Get("capabilities").StringOrDefault("")
	for _, c := range strings.Split(caps, ",") {
		if strings.TrimSpace(c) == capability {
			return true
		}
	}
	return false
}

func (a sessionAuth) UID() int64 {
	return a.claims.Uid
}

func (a sessionAuth) SessionID() string {
	return a.claims.SSID
}

func (a sessionAuth) Visitor() Visitor {
	return Visitor{
		FirstName: a.claims.Get("first_name").StringOrDefault(""),
		LastName:  a.claims.Get("last_name").StringOrDefault(""),
		Email:     a.claims.Get("email").StringOrDefault(""),
	}
}

// anonymous 没有登录的访客
type anonymous struct{}

func (anonymous) LoggedIn() bool    { return false }
func (anonymous) Can(string) bool   { return false }
func (anonymous) UID() int64        { return 0 }
func (anonymous) SessionID() string { return "" }
func (anonymous) Visitor() Visitor  { return Visitor{} }

// resolveAuth 同一个请求只解析一次
func resolveAuth(sp session.Provider, ctx *gin.Context) AuthContext {
	if val, ok := ctx.Get(authContextKey); ok {
		if ac, ok := val.(AuthContext); ok {
			return ac
		}
	}
	var ac AuthContext = anonymous{}
	sess, err := sp.Get(&ginx.Context{Context: ctx})
	if err == nil && sess != nil {
		ac = sessionAuth{claims: sess.Claims()}
	}
	ctx.Set(authContextKey, ac)
	return ac
}

type authHandlerFunc func(ctx *ginx.Context, ac AuthContext) (ginx.Result, error)

// withAuth 匿名访客也能进入处理函数，是否放行由处理函数根据 AuthContext 决定
func withAuth(sp session.Provider, fn authHandlerFunc) gin.HandlerFunc {
	return ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
		return fn(ctx, resolveAuth(sp, ctx.Context))
	})
}

// reply 接口约定返回裸 JSON，不套 ginx.Result，写完响应之后让 ginx 不再处理
func reply(ctx *ginx.Context, status int, body any) (ginx.Result, error) {
	ctx.JSON(status, body)
	return ginx.Result{}, ginx.ErrNoResponse
}
