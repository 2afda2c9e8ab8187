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
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/pkg/nonce"
)

const (
	// restNonceAction SPA 调用 REST 接口时使用
	restNonceAction = "wp_rest"
	// ajaxNonceAction 表单提交和旧版页面回调使用
	ajaxNonceAction = "wpuserfeedback"

	restNonceHeader = "X-WP-Nonce"
)

// GuardBuilder 两道关卡依次执行：防伪令牌、管理权限
// 任何一道失败都直接终止请求，不会触碰存储
type GuardBuilder struct {
	sp       session.Provider
	nonceSvc nonce.Service
	action   string
	source   func(ctx *gin.Context) string
	deny     func(ctx *gin.Context)
}

// NewRESTGuardBuilder 令牌从请求头读取，拒绝时返回 403
func NewRESTGuardBuilder(sp session.Provider, nonceSvc nonce.Service) *GuardBuilder {
	return &GuardBuilder{
		sp:       sp,
		nonceSvc: nonceSvc,
		action:   restNonceAction,
		source:   restNonce,
		deny: func(ctx *gin.Context) {
			ctx.AbortWithStatusJSON(errs.Forbidden.Status, ErrorResp{
				Error:   errs.Forbidden.Code,
				Message: errs.Forbidden.Msg,
			})
		},
	}
}

// NewAjaxGuardBuilder 令牌从表单或查询参数读取，拒绝时返回 error 状态
func NewAjaxGuardBuilder(sp session.Provider, nonceSvc nonce.Service) *GuardBuilder {
	return &GuardBuilder{
		sp:       sp,
		nonceSvc: nonceSvc,
		action:   ajaxNonceAction,
		source:   ajaxNonce,
		deny: func(ctx *gin.Context) {
			ctx.AbortWithStatusJSON(http.StatusOK, StatusResp{Status: statusError})
		},
	}
}

func (b *GuardBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ac := resolveAuth(b.sp, ctx)
		err := b.nonceSvc.Verify(b.source(ctx), b.action, ac.UID(), ac.SessionID())
		if err != nil {
			elog.Debug("防伪令牌校验失败", elog.Int64("uid", ac.UID()), elog.FieldErr(err))
			b.deny(ctx)
			return
		}
		if !ac.LoggedIn() || !ac.Can(ManageCapability) {
			elog.Debug("没有管理权限", elog.Int64("uid", ac.UID()))
			b.deny(ctx)
			return
		}
		ctx.Next()
	}
}

func restNonce(ctx *gin.Context) string {
	if token := ctx.GetHeader(restNonceHeader); token != "" {
		return token
	}
	return ctx.Query("_wpnonce")
}

func ajaxNonce(ctx *gin.Context) string {
	if token, ok := ctx.GetPostForm("nonce"); ok {
		return token
	}
	return ctx.Query("nonce")
}
