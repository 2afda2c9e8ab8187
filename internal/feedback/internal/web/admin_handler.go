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
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/service"
	"github.com/jahir07/wp-user-feedback/internal/pkg/nonce"
)

const restPrefix = "/wpuf/v1"

// AdminHandler 管理端 SPA 使用的 REST 接口
type AdminHandler struct {
	svc      service.Service
	nonceSvc nonce.Service
	sp       session.Provider
	guard    *GuardBuilder
	restRoot string
	logger   *elog.Component
}

func NewAdminHandler(svc service.Service, nonceSvc nonce.Service, sp session.Provider, cfg config.FeedbackConfig) *AdminHandler {
	root := cfg.RESTRoot
	if root == "" {
		root = restPrefix + "/"
	}
	return &AdminHandler{
		svc:      svc,
		nonceSvc: nonceSvc,
		sp:       sp,
		guard:    NewRESTGuardBuilder(sp, nonceSvc),
		restRoot: root,
		logger:   elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.GET(restPrefix+"/bootstrap", withAuth(h.sp, h.Bootstrap))
	g := server.Group(restPrefix+"/feedback", h.guard.Build())
	g.GET("", withAuth(h.sp, h.List))
	g.GET("/:id", withAuth(h.sp, h.Detail))
	g.POST("/:id", withAuth(h.sp, h.Update))
	g.DELETE("/:id", withAuth(h.sp, h.Delete))
}

// Bootstrap 管理页面启动时需要的接口地址、令牌和权限
func (h *AdminHandler) Bootstrap(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	if !ac.LoggedIn() {
		return h.abort(ctx, errs.Forbidden)
	}
	token, err := h.nonceSvc.Create(restNonceAction, ac.UID(), ac.SessionID())
	if err != nil {
		h.logger.Error("生成防伪令牌失败", elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return h.abort(ctx, errs.SystemError)
	}
	return reply(ctx, http.StatusOK, BootstrapResp{
		Root:  h.restRoot,
		Nonce: token,
		Cap:   ac.Can(ManageCapability),
	})
}

func (h *AdminHandler) List(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	perPage := clampPerPage(ctx.GetQuery("per_page"))
	page := restPage(ctx.GetQuery("page"))
	items, total, err := h.svc.ListWithTotal(ctx.Request.Context(), perPage, page)
	if err != nil {
		h.logger.Error("查询反馈列表失败", elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return h.abort(ctx, errs.SystemError)
	}
	vos := make([]Feedback, 0, len(items))
	for _, item := range items {
		vos = append(vos, newFeedback(item))
	}
	return reply(ctx, http.StatusOK, ListResp{
		Items: vos,
		Total: total,
	})
}

func (h *AdminHandler) Detail(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	id, ok := parseID(ctx.Context.Param("id"))
	if !ok {
		return h.abort(ctx, errs.BadID)
	}
	fb, err := h.svc.Info(ctx.Request.Context(), id)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return h.abort(ctx, errs.NotFound)
	case err != nil:
		h.logger.Error("查询反馈详情失败", elog.Int64("id", id), elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return h.abort(ctx, errs.SystemError)
	default:
		return reply(ctx, http.StatusOK, newFeedback(fb))
	}
}

// Update 请求体里缺省的字段会被清空
func (h *AdminHandler) Update(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	id, ok := parseID(ctx.Context.Param("id"))
	if !ok {
		return h.abort(ctx, errs.BadID)
	}
	var req UpdateReq
	// 请求体可以为空
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req = UpdateReq{}
	}
	updated, err := h.svc.Update(ctx.Request.Context(), id, req.Subject, req.Message)
	if err != nil {
		h.logger.Error("更新反馈失败", elog.Int64("id", id), elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return h.abort(ctx, errs.SystemError)
	}
	return reply(ctx, http.StatusOK, UpdateResp{Updated: updated})
}

func (h *AdminHandler) Delete(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	id, ok := parseID(ctx.Context.Param("id"))
	if !ok {
		return h.abort(ctx, errs.BadID)
	}
	deleted, err := h.svc.Delete(ctx.Request.Context(), id)
	if err != nil {
		h.logger.Error("删除反馈失败", elog.Int64("id", id), elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return h.abort(ctx, errs.SystemError)
	}
	return reply(ctx, http.StatusOK, DeleteResp{Deleted: deleted})
}

func (h *AdminHandler) abort(ctx *ginx.Context, code errs.ErrorCode) (ginx.Result, error) {
	ctx.Abort()
	return reply(ctx, code.Status, ErrorResp{
		Error:   code.Code,
		Message: code.Msg,
	})
}
