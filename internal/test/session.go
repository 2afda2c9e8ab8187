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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_session"

var errNoSession = errors.New("test: 未登录")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 直接从 gin.Context 里读取测试预先放好的 session
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// SetSession 返回一个中间件，把 claims 对应的 session 放进请求
func SetSession(claims session.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(sessionKey, session.NewMemorySession(claims))
	}
}

// AdminClaims 拥有管理权限的用户
func AdminClaims(uid int64, ssid string) session.Claims {
	return session.Claims{
		Uid:  uid,
		SSID: ssid,
		Data: map[string]string{
			"capabilities": "read,manage_options",
			"first_name":   "Jane",
			"last_name":    "Doe",
			"email":        "jane@x.com",
		},
	}
}
