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
	"net/url"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/domain"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/service"
	"github.com/jahir07/wp-user-feedback/internal/pkg/nonce"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	msgSubmitted      = "Thank you for sending us your feedback."
	msgSecurityFailed = "Security check failed."
	msgInvalidPayload = "Invalid request payload."
	msgRequired       = "Please fill in all required fields."
	msgStorageFailed  = "Could not insert feedback into database."
	msgInvalidID      = "Invalid ID."

	defaultFormTitle    = "Submit your feedback"
	defaultResultsTitle = "Feedback Results"

	submitPath = "/feedback/submit"
)

var submissionFields = []string{"first_name", "last_name", "email", "subject", "message"}

var submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wpuf_feedback_submissions_total",
	Help: "按结果统计的反馈提交次数",
}, []string{"status"})

// Handler 访客表单、结果页以及旧版页面的回调
type Handler struct {
	svc         service.Service
	nonceSvc    nonce.Service
	sp          session.Provider
	guard       *GuardBuilder
	listPerPage int
	loginURL    string
	logger      *elog.Component
}

func NewHandler(svc service.Service, nonceSvc nonce.Service, sp session.Provider, cfg config.FeedbackConfig) *Handler {
	perPage := cfg.ListPerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return &Handler{
		svc:         svc,
		nonceSvc:    nonceSvc,
		sp:          sp,
		guard:       NewAjaxGuardBuilder(sp, nonceSvc),
		listPerPage: perPage,
		loginURL:    cfg.LoginURL,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/feedback")
	g.GET("/form", withAuth(h.sp, h.Form))
	g.POST("/submit", withAuth(h.sp, h.Submit))
	g.GET("/results", withAuth(h.sp, h.Results))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/feedback/ajax", h.guard.Build())
	g.GET("/results", withAuth(h.sp, h.ListResults))
	g.GET("/detail", withAuth(h.sp, h.Detail))
	g.POST("/paginate", withAuth(h.sp, h.Paginate))
}

// Form 表单页，预填当前访客的姓名和邮箱
func (h *Handler) Form(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	token, err := h.nonceSvc.Create(ajaxNonceAction, ac.UID(), ac.SessionID())
	if err != nil {
		h.logger.Error("生成防伪令牌失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	return renderHTML(ctx, "form", formPage{
		Title:   ctx.DefaultQuery("title", defaultFormTitle),
		Action:  submitPath,
		Nonce:   token,
		Visitor: ac.Visitor(),
	})
}

// Submit 访客提交反馈
func (h *Handler) Submit(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	err := h.nonceSvc.Verify(ajaxNonce(ctx.Context), ajaxNonceAction, ac.UID(), ac.SessionID())
	if err != nil {
		return h.submitResult(ctx, "invalid_nonce", StatusResp{Status: statusError, Message: msgSecurityFailed})
	}
	fb, ok := parseSubmission(ctx.Context)
	if !ok {
		return h.submitResult(ctx, "invalid_payload", StatusResp{Status: statusError, Message: msgInvalidPayload})
	}
	_, err = h.svc.Submit(ctx.Request.Context(), fb)
	switch {
	case err == nil:
		return h.submitResult(ctx, statusSuccess, StatusResp{Status: statusSuccess, Message: msgSubmitted})
	case errors.Is(err, errs.ErrValidation):
		return h.submitResult(ctx, "validation", StatusResp{Status: statusError, Message: msgRequired})
	default:
		h.logger.Error("保存反馈失败", elog.FieldErr(err))
		return h.submitResult(ctx, "storage", StatusResp{Status: statusError, Message: msgStorageFailed})
	}
}

func (h *Handler) submitResult(ctx *ginx.Context, label string, resp StatusResp) (ginx.Result, error) {
	submissions.WithLabelValues(label).Inc()
	return reply(ctx, http.StatusOK, resp)
}

// parseSubmission data 字段里是序列化后的表单，没有 data 时直接读表单字段
func parseSubmission(ctx *gin.Context) (domain.Feedback, bool) {
	var vals url.Values
	if data, ok := ctx.GetPostForm("data"); ok && data != "" {
		parsed, err := url.ParseQuery(data)
		if err != nil {
			return domain.Feedback{}, false
		}
		vals = parsed
	} else {
		vals = url.Values{}
		for _, field := range submissionFields {
			if v, ok := ctx.GetPostForm(field); ok {
				vals.Set(field, v)
			}
		}
		if len(vals) == 0 {
			return domain.Feedback{}, false
		}
	}
	return domain.Feedback{
		FirstName: vals.Get("first_name"),
		LastName:  vals.Get("last_name"),
		Email:     vals.Get("email"),
		Subject:   vals.Get("subject"),
		Message:   vals.Get("message"),
	}, true
}

// Results 结果页，只有管理员能看到列表
func (h *Handler) Results(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	page := resultsPage{
		Title: ctx.DefaultQuery("title", defaultResultsTitle),
	}
	if !ac.LoggedIn() || !ac.Can(ManageCapability) {
		page.LoginURL = loginURL(h.loginURL, ctx.Request.URL.RequestURI())
		return renderHTML(ctx, "results", page)
	}

	perPage := h.listPerPage
	if raw, ok := ctx.GetQuery("list_per_page"); ok && absint(raw) > 0 {
		perPage = absint(raw)
	}
	current := 1
	if raw, ok := ctx.GetQuery("cpage"); ok {
		current = absint(raw)
	}
	items, total, err := h.svc.ListWithTotal(ctx.Request.Context(), perPage, current)
	if err != nil {
		h.logger.Error("查询反馈列表失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	token, err := h.nonceSvc.Create(ajaxNonceAction, ac.UID(), ac.SessionID())
	if err != nil {
		h.logger.Error("生成防伪令牌失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	page.Authorized = true
	page.Nonce = token
	page.PerPage = perPage
	page.Items = h.toVOs(items)
	page.Links = paginateLinks(totalPages(total, perPage), current, func(n int) string {
		return withQuery(ctx.Request.URL, "cpage", n)
	})
	return renderHTML(ctx, "results", page)
}

// ListResults 旧版页面加载列表，返回表格片段
func (h *Handler) ListResults(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	perPage := legacyPerPage(ctx.GetQuery("list_per_page"))
	pageNo := legacyPage(ctx.GetQuery("page_no"))
	items, err := h.svc.List(ctx.Request.Context(), perPage, pageNo)
	if err != nil {
		h.logger.Error("查询反馈列表失败", elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	return renderHTML(ctx, "table", h.toVOs(items))
}

// Detail 旧版页面查看详情
func (h *Handler) Detail(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	id := absint(ctx.Context.Query("id"))
	if id == 0 {
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError, Message: msgInvalidID})
	}
	fb, err := h.svc.Info(ctx.Request.Context(), int64(id))
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			h.logger.Error("查询反馈详情失败", elog.Int("id", id), elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		}
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	return renderHTML(ctx, "detail", newFeedback(fb))
}

// Paginate 旧版页面翻页，返回列表片段和分页条
func (h *Handler) Paginate(ctx *ginx.Context, ac AuthContext) (ginx.Result, error) {
	pageNo := legacyPage(ctx.GetPostForm("page_no"))
	perPage := legacyPerPage(ctx.GetPostForm("list_per_page"))
	if pageNo == 0 {
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	items, total, err := h.svc.ListWithTotal(ctx.Request.Context(), perPage, pageNo)
	if err != nil {
		h.logger.Error("翻页失败", elog.Int64("uid", ac.UID()), elog.FieldErr(err))
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	listHTML, err := renderString("rows", h.toVOs(items))
	if err != nil {
		h.logger.Error("渲染列表失败", elog.FieldErr(err))
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	pagination, err := renderString("pagination", paginateLinks(totalPages(total, perPage), pageNo, cpageURL))
	if err != nil {
		h.logger.Error("渲染分页失败", elog.FieldErr(err))
		return reply(ctx, http.StatusOK, StatusResp{Status: statusError})
	}
	return reply(ctx, http.StatusOK, PaginateResp{
		ListHTML:   listHTML,
		Pagination: pagination,
	})
}

func (h *Handler) toVOs(items []domain.Feedback) []Feedback {
	return slice.Map(items, func(idx int, src domain.Feedback) Feedback {
		return newFeedback(src)
	})
}

// legacyPerPage 旧版回调的每页条数，缺省或为 0 时用默认值
func legacyPerPage(raw string, present bool) int {
	if !present || absint(raw) == 0 {
		return defaultPerPage
	}
	return absint(raw)
}

// legacyPage 旧版回调的页码，缺省时为第一页
func legacyPage(raw string, present bool) int {
	if !present {
		return 1
	}
	return absint(raw)
}
