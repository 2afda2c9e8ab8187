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

package feedback

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/jahir07/wp-user-feedback/config"
	"github.com/jahir07/wp-user-feedback/internal/feedback/internal/repository/dao"
	"github.com/jahir07/wp-user-feedback/internal/pkg/nonce"
)

var daoOnce = sync.Once{}

func initTablesOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initFeedbackDAO(db *egorm.Component) dao.FeedbackDAO {
	initTablesOnce(db)
	return dao.NewFeedbackDAO(db)
}

func initNonce(cfg config.FeedbackConfig) nonce.Service {
	return nonce.NewJWTNonce(cfg.Nonce.Issuer, cfg.Nonce.Key, cfg.Nonce.Expiration)
}
