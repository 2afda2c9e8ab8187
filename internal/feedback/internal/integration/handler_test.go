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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/integration/startup"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository/dao"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/web"
	"github.com/jahir07/wp-user-feedback/internal/pkg/nonce"
	"github.com/jahir07/wp-user-feedback/internal/test"
	testioc "github.com/jahir07/wp-user-feedback/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	adminUID  = int64(2051)
	adminSSID = "e2e-ssid"
)

type HandlerTestSuite struct {
	suite.Suite
	public *egin.Component
	admin  *egin.Component
	db     *egorm.Component
	dao    dao.FeedbackDAO
	nonce  nonce.Service
}

func (s *HandlerTestSuite) SetupSuite() {
	module := startup.InitModule(&test.SessionProvider{})
	econf.Set("server", map[string]any{"contextTimeout": "1s"})

	public := egin.Load("server").Build()
	module.Hdl.PublicRoutes(public.Engine)
	s.public = public

	admin := egin.Load("server").Build()
	admin.Use(test.SetSession(test.AdminClaims(adminUID, adminSSID)))
	module.AdminHdl.PrivateRoutes(admin.Engine)
	module.Hdl.PrivateRoutes(admin.Engine)
	s.admin = admin

	s.db = testioc.InitDB()
	s.dao = dao.NewFeedbackDAO(s.db)
	cfg := startup.TestConfig()
	s.nonce = nonce.NewJWTNonce(cfg.Nonce.Issuer, cfg.Nonce.Key, cfg.Nonce.Expiration)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `wpuserfeedback`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `wpuserfeedback`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) restToken() string {
	token, err := s.nonce.Create("wp_rest", adminUID, adminSSID)
	require.NoError(s.T(), err)
	return token
}

func (s *HandlerTestSuite) submit(form url.Values) web.StatusResp {
	token, err := s.nonce.Create("wpuserfeedback", 0, "")
	require.NoError(s.T(), err)
	form.Set("nonce", token)
	req, err := http.NewRequest(http.MethodPost, "/feedback/submit", strings.NewReader(form.Encode()))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := test.NewJSONResponseRecorder[web.StatusResp]()
	s.public.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) list(query string) web.ListResp {
	req, err := http.NewRequest(http.MethodGet, "/wpuf/v1/feedback"+query, nil)
	require.NoError(s.T(), err)
	req.Header.Set("X-WP-Nonce", s.restToken())
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.admin.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestFeedbackLifecycle() {
	t := s.T()
	resp := s.submit(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@x.com"},
		"subject":    {"Hi"},
		"message":    {"Hello"},
	})
	assert.Equal(t, web.StatusResp{Status: "success", Message: "Thank you for sending us your feedback."}, resp)

	page := s.list("?page=1&per_page=10")
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Total)
	created := page.Items[0]
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
	assert.Equal(t, "jane@x.com", created.Email)
	assert.Equal(t, "Hi", created.Subject)
	assert.Equal(t, "Hello", created.Message)

	// 只传 subject，message 会被清空
	req, err := http.NewRequest(http.MethodPost, "/wpuf/v1/feedback/"+itoa(created.ID),
		iox.NewJSONReader(web.UpdateReq{Subject: "Hi2"}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-WP-Nonce", s.restToken())
	updated := test.NewJSONResponseRecorder[web.UpdateResp]()
	s.admin.ServeHTTP(updated, req)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.True(t, updated.MustScan().Updated)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	entity, err := s.dao.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi2", entity.Subject)
	assert.Equal(t, "", entity.Message)
	assert.False(t, entity.Utime.Before(entity.Ctime))

	for _, want := range []bool{true, false} {
		req, err = http.NewRequest(http.MethodDelete, "/wpuf/v1/feedback/"+itoa(created.ID), nil)
		require.NoError(t, err)
		req.Header.Set("X-WP-Nonce", s.restToken())
		deleted := test.NewJSONResponseRecorder[web.DeleteResp]()
		s.admin.ServeHTTP(deleted, req)
		require.Equal(t, http.StatusOK, deleted.Code)
		assert.Equal(t, want, deleted.MustScan().Deleted)
	}
	assert.Equal(t, int64(0), s.list("").Total)
}

func (s *HandlerTestSuite) TestSubmitMissingField() {
	t := s.T()
	resp := s.submit(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@x.com"},
		"subject":    {"Hi"},
	})
	assert.Equal(t, web.StatusResp{Status: "error", Message: "Please fill in all required fields."}, resp)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	cnt, err := s.dao.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *HandlerTestSuite) TestPagination() {
	t := s.T()
	for i := 0; i < 12; i++ {
		resp := s.submit(url.Values{
			"first_name": {"Jane"},
			"last_name":  {"Doe"},
			"email":      {"jane@x.com"},
			"subject":    {"Subject " + itoa(int64(i+1))},
			"message":    {"Hello"},
		})
		require.Equal(t, "success", resp.Status)
	}
	first := s.list("?page=1&per_page=5")
	assert.Equal(t, int64(12), first.Total)
	require.Len(t, first.Items, 5)
	assert.Equal(t, "Subject 12", first.Items[0].Subject)

	last := s.list("?page=3&per_page=5")
	require.Len(t, last.Items, 2)
	assert.Equal(t, "Subject 1", last.Items[1].Subject)

	empty := s.list("?page=0")
	assert.Empty(t, empty.Items)
	assert.Equal(t, int64(12), empty.Total)
}

func (s *HandlerTestSuite) TestForbiddenDoesNotMutate() {
	t := s.T()
	resp := s.submit(url.Values{
		"first_name": {"Jane"},
		"last_name":  {"Doe"},
		"email":      {"jane@x.com"},
		"subject":    {"Hi"},
		"message":    {"Hello"},
	})
	require.Equal(t, "success", resp.Status)
	id := s.list("").Items[0].ID

	// 公开的服务上没有管理接口，用一个没有 session 的服务模拟匿名请求
	anonymous := gin.New()
	module := startup.InitModule(&test.SessionProvider{})
	module.AdminHdl.PrivateRoutes(anonymous)
	req, err := http.NewRequest(http.MethodDelete, "/wpuf/v1/feedback/"+itoa(id), bytes.NewReader(nil))
	require.NoError(t, err)
	req.Header.Set("X-WP-Nonce", s.restToken())
	recorder := test.NewJSONResponseRecorder[web.ErrorResp]()
	anonymous.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	assert.Equal(t, int64(1), s.list("").Total)
}

func TestFeedbackHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}
