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

package config

import "time"

type DBConfig struct {
	DSN string `yaml:"dsn"`
}

// CORSConfig 允许跨域访问的域名，localhost 总是允许
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// FeedbackConfig 对应配置文件里的 feedback 节点
type FeedbackConfig struct {
	// ListPerPage 结果页默认每页条数
	ListPerPage int `yaml:"listPerPage"`
	// LoginURL 未授权时引导登录的地址，会带上 redirect_to
	LoginURL string `yaml:"loginURL"`
	// RESTRoot 管理端 SPA 使用的接口前缀
	RESTRoot string      `yaml:"restRoot"`
	Nonce    NonceConfig `yaml:"nonce"`
}

type NonceConfig struct {
	Issuer     string        `yaml:"issuer"`
	Key        string        `yaml:"key"`
	Expiration time.Duration `yaml:"expiration"`
}
