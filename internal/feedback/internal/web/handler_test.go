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
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/domain"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/errs"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/service"
	svcmocks "github.com/jahir07/wp-user-feedback/internal/feedback/internal/service/mocks"
	"github.com/jahir07/wp-user-feedback/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWebServer(svc service.Service, claims *session.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	if claims != nil {
		server.Use(test.SetSession(*claims))
	}
	hdl := NewHandler(svc, newTestNonce(), &test.SessionProvider{}, config.FeedbackConfig{
		LoginURL: "/wp-login.php",
	})
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func postForm(t *testing.T, path string, form url.Values) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_Submit(t *testing.T) {
	raw := domain.Feedback{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Subject:   "Hi",
		Message:   "Hello",
	}
	fields := func(token string) url.Values {
		return url.Values{
			"nonce":      {token},
			"first_name": {"Jane"},
			"last_name":  {"Doe"},
			"email":      {"jane@x.com"},
			"subject":    {"Hi"},
			"message":    {"Hello"},
		}
	}
	testCases := []struct {
		name     string
		form     func(t *testing.T) url.Values
		mock     func(ctrl *gomock.Controller) service.Service
		wantResp StatusResp
	}{
		{
			name: "直接提交表单字段",
			form: func(t *testing.T) url.Values {
				return fields(mustNonce(t, ajaxNonceAction, 0, ""))
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), raw).Return(int64(1), nil)
				return svc
			},
			wantResp: StatusResp{Status: statusSuccess, Message: msgSubmitted},
		},
		{
			name: "序列化在 data 字段里",
			form: func(t *testing.T) url.Values {
				data := fields("")
				data.Del("nonce")
				return url.Values{
					"nonce": {mustNonce(t, ajaxNonceAction, 0, "")},
					"data":  {data.Encode()},
				}
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), raw).Return(int64(1), nil)
				return svc
			},
			wantResp: StatusResp{Status: statusSuccess, Message: msgSubmitted},
		},
		{
			name: "令牌无效",
			form: func(t *testing.T) url.Values {
				return fields("bad-token")
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantResp: StatusResp{Status: statusError, Message: msgSecurityFailed},
		},
		{
			name: "令牌属于已登录用户",
			form: func(t *testing.T) url.Values {
				return fields(mustNonce(t, ajaxNonceAction, testUID, testSSID))
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantResp: StatusResp{Status: statusError, Message: msgSecurityFailed},
		},
		{
			name: "没有任何字段",
			form: func(t *testing.T) url.Values {
				return url.Values{"nonce": {mustNonce(t, ajaxNonceAction, 0, "")}}
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			wantResp: StatusResp{Status: statusError, Message: msgInvalidPayload},
		},
		{
			name: "缺少必填字段",
			form: func(t *testing.T) url.Values {
				form := fields(mustNonce(t, ajaxNonceAction, 0, ""))
				form.Del("message")
				return form
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(int64(0), errs.ErrValidation)
				return svc
			},
			wantResp: StatusResp{Status: statusError, Message: msgRequired},
		},
		{
			name: "存储失败",
			form: func(t *testing.T) url.Values {
				return fields(mustNonce(t, ajaxNonceAction, 0, ""))
			},
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().Submit(gomock.Any(), raw).
					Return(int64(0), &errs.StorageError{Op: "insert", Err: errors.New("db down")})
				return svc
			},
			wantResp: StatusResp{Status: statusError, Message: msgStorageFailed},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newWebServer(tc.mock(ctrl), nil)
			recorder := test.NewJSONResponseRecorder[StatusResp]()
			server.ServeHTTP(recorder, postForm(t, "/feedback/submit", tc.form(t)))
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Form(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := newWebServer(svcmocks.NewMockService(ctrl), adminClaims())
	req, err := http.NewRequest(http.MethodGet, "/feedback/form", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Submit your feedback")
	assert.Contains(t, body, `value="Jane"`)
	assert.Contains(t, body, `value="Doe"`)
	assert.Contains(t, body, `value="jane@x.com"`)
	assert.Contains(t, body, `name="nonce"`)

	anonymous := newWebServer(svcmocks.NewMockService(ctrl), nil)
	req, err = http.NewRequest(http.MethodGet, "/feedback/form?title=Tell+us", nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	anonymous.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body = recorder.Body.String()
	assert.Contains(t, body, "Tell us")
	assert.Contains(t, body, `name="first_name" type="text" class="form-control rounded-0 inputFirstName" placeholder="First Name" value="" required`)
}

func TestHandler_Results(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anonymous := newWebServer(svcmocks.NewMockService(ctrl), nil)
	req, err := http.NewRequest(http.MethodGet, "/feedback/results", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	anonymous.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "You are not authorized to view the content of this page.")
	assert.Contains(t, body, "/wp-login.php?redirect_to=%2Ffeedback%2Fresults")
	assert.NotContains(t, body, "load-lists")

	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().ListWithTotal(gomock.Any(), 10, 2).Return([]domain.Feedback{
		{ID: 15, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Subject: "Hi <b>there</b>"},
	}, int64(25), nil)
	admin := newWebServer(svc, adminClaims())
	req, err = http.NewRequest(http.MethodGet, "/feedback/results?cpage=2", nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	admin.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body = recorder.Body.String()
	assert.Contains(t, body, "Feedback Results")
	assert.Contains(t, body, `data-id="15"`)
	assert.Contains(t, body, "Hi &lt;b&gt;there&lt;/b&gt;")
	assert.Contains(t, body, `<span aria-current="page" class="page-numbers current">2</span>`)
	assert.Contains(t, body, `href="/feedback/results?cpage=3"`)
	assert.Contains(t, body, `class="prev page-numbers"`)
}

func TestHandler_LegacyGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	subscriber := session.Claims{Uid: 2, SSID: "ssid-2", Data: map[string]string{"capabilities": "read"}}
	testCases := []struct {
		name   string
		claims *session.Claims
		token  func(t *testing.T) string
	}{
		{name: "没有令牌", claims: adminClaims(), token: func(t *testing.T) string { return "" }},
		{name: "令牌是 REST 的", claims: adminClaims(), token: func(t *testing.T) string {
			return mustNonce(t, restNonceAction, testUID, testSSID)
		}},
		{name: "没有权限", claims: &subscriber, token: func(t *testing.T) string {
			return mustNonce(t, ajaxNonceAction, 2, "ssid-2")
		}},
		{name: "未登录", token: func(t *testing.T) string {
			return mustNonce(t, ajaxNonceAction, 0, "")
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newWebServer(svcmocks.NewMockService(ctrl), tc.claims)
			token := tc.token(t)
			reqs := []*http.Request{
				postForm(t, "/feedback/ajax/paginate", url.Values{"nonce": {token}, "page_no": {"1"}}),
			}
			for _, path := range []string{"/feedback/ajax/results", "/feedback/ajax/detail?id=1&"} {
				sep := "?"
				if strings.Contains(path, "?") {
					sep = ""
				}
				req, err := http.NewRequest(http.MethodGet, path+sep+"nonce="+url.QueryEscape(token), nil)
				require.NoError(t, err)
				reqs = append(reqs, req)
			}
			for _, req := range reqs {
				recorder := test.NewJSONResponseRecorder[StatusResp]()
				server.ServeHTTP(recorder, req)
				assert.Equal(t, http.StatusOK, recorder.Code)
				assert.Equal(t, StatusResp{Status: statusError}, recorder.MustScan())
			}
		})
	}
}

func TestHandler_ListResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), 10, 1).Return([]domain.Feedback{
		{ID: 7, FirstName: "Jane", Email: "jane@x.com", Subject: "Hi"},
	}, nil)
	svc.EXPECT().List(gomock.Any(), 5, 3).Return([]domain.Feedback{}, nil)
	server := newWebServer(svc, adminClaims())
	token := url.QueryEscape(mustNonce(t, ajaxNonceAction, testUID, testSSID))

	req, err := http.NewRequest(http.MethodGet, "/feedback/ajax/results?nonce="+token, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, `<table class="table table-striped wpuserfeedback-table">`)
	assert.Contains(t, body, `<div class="wpuf-view-result" data-id="7" title="View Details">`)

	req, err = http.NewRequest(http.MethodGet, "/feedback/ajax/results?list_per_page=-5&page_no=3abc&nonce="+token, nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestHandler_Detail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Info(gomock.Any(), int64(3)).Return(domain.Feedback{
		ID: 3, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Subject: "Hi", Message: "<b>hello</b>",
	}, nil)
	svc.EXPECT().Info(gomock.Any(), int64(4)).Return(domain.Feedback{}, errs.ErrNotFound)
	server := newWebServer(svc, adminClaims())
	token := url.QueryEscape(mustNonce(t, ajaxNonceAction, testUID, testSSID))

	req, err := http.NewRequest(http.MethodGet, "/feedback/ajax/detail?id=3&nonce="+token, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Detail Information")
	assert.Contains(t, body, "<li><span>Last Name</span>: Doe</li>")
	assert.Contains(t, body, "&lt;b&gt;hello&lt;/b&gt;")

	req, err = http.NewRequest(http.MethodGet, "/feedback/ajax/detail?id=4&nonce="+token, nil)
	require.NoError(t, err)
	notFound := test.NewJSONResponseRecorder[StatusResp]()
	server.ServeHTTP(notFound, req)
	assert.Equal(t, StatusResp{Status: statusError}, notFound.MustScan())

	req, err = http.NewRequest(http.MethodGet, "/feedback/ajax/detail?id=abc&nonce="+token, nil)
	require.NoError(t, err)
	invalid := test.NewJSONResponseRecorder[StatusResp]()
	server.ServeHTTP(invalid, req)
	assert.Equal(t, StatusResp{Status: statusError, Message: msgInvalidID}, invalid.MustScan())
}

func TestHandler_Paginate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().ListWithTotal(gomock.Any(), 2, 2).Return([]domain.Feedback{
		{ID: 3, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Subject: "Hi"},
		{ID: 2, FirstName: "John", LastName: "Roe", Email: "john@x.com", Subject: "Yo"},
	}, int64(5), nil)
	server := newWebServer(svc, adminClaims())
	token := mustNonce(t, ajaxNonceAction, testUID, testSSID)

	recorder := test.NewJSONResponseRecorder[PaginateResp]()
	server.ServeHTTP(recorder, postForm(t, "/feedback/ajax/paginate", url.Values{
		"nonce":         {token},
		"page_no":       {"2"},
		"list_per_page": {"2"},
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Contains(t, res.ListHTML, `data-id="3"`)
	assert.Contains(t, res.ListHTML, `data-id="2"`)
	assert.Equal(t, strings.Join([]string{
		`<a class="prev page-numbers" href="?cpage=1">«</a>`,
		`<a class="page-numbers" href="?cpage=1">1</a>`,
		`<span aria-current="page" class="page-numbers current">2</span>`,
		`<a class="page-numbers" href="?cpage=3">3</a>`,
		`<a class="next page-numbers" href="?cpage=3">»</a>`,
	}, "\n"), res.Pagination)

	zero := test.NewJSONResponseRecorder[StatusResp]()
	server.ServeHTTP(zero, postForm(t, "/feedback/ajax/paginate", url.Values{
		"nonce":   {token},
		"page_no": {"0"},
	}))
	assert.Equal(t, StatusResp{Status: statusError}, zero.MustScan())
}
