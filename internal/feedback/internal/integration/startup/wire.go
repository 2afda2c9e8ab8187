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

//go:build wireinject

package startup

import (
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/google/wire"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback"
	testioc "github.com/jahir07/wp-user-feedback/internal/test/ioc"
)

func InitModule(sp session.Provider) *feedback.Module {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		TestConfig,
		feedback.InitModule,
	)
	return new(feedback.Module)
}

func TestConfig() config.FeedbackConfig {
	return config.FeedbackConfig{
		ListPerPage: 10,
		LoginURL:    "/wp-login.php",
		RESTRoot:    "/wpuf/v1/",
		Nonce: config.NonceConfig{
			Issuer:     "wpuserfeedback",
			Key:        "e2e-nonce-key",
			Expiration: time.Hour,
		},
	}
}
