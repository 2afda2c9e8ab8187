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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/jahir07/wp-user-feedback/config"
)

const (
	defaultListPerPage     = 10
	defaultNonceExpiration = 12 * time.Hour
)

func InitFeedbackConfig() config.FeedbackConfig {
	var cfg config.FeedbackConfig
	err := econf.UnmarshalKey("feedback", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Nonce.Key == "" {
		panic("feedback.nonce.key 未配置")
	}
	if cfg.ListPerPage < 1 {
		cfg.ListPerPage = defaultListPerPage
	}
	if cfg.Nonce.Expiration <= 0 {
		cfg.Nonce.Expiration = defaultNonceExpiration
	}
	if cfg.Nonce.Issuer == "" {
		cfg.Nonce.Issuer = econf.GetString("trace.zipkin.serviceName")
	}
	return cfg
}
