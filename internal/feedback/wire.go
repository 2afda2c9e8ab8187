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

package feedback

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository/cache"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/service"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/web"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	sp session.Provider,
	cfg config.FeedbackConfig,
) *Module {
	wire.Build(
		initFeedbackDAO,
		initNonce,
		cache.NewFeedbackCache,
		repository.NewCachedFeedbackRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
