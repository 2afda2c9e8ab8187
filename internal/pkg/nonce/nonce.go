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

package nonce

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidNonce = errors.New("nonce: invalid")

// Service 生成和校验与会话、动作绑定的一次性防伪令牌
type Service interface {
	Create(action string, uid int64, ssid string) (string, error)
	Verify(token, action string, uid int64, ssid string) error
}

type claims struct {
	jwt.RegisteredClaims
	Action string `json:"act"`
	SSID   string `json:"sid,omitempty"`
}

// JWTNonce 用 HS256 签名，过期时间由 expire 决定
type JWTNonce struct {
	key     []byte
	issuer  string
	expire  time.Duration
	nowFunc func() time.Time
}

func NewJWTNonce(issuer, key string, expire time.Duration) *JWTNonce {
	return &JWTNonce{
		key:     []byte(key),
		issuer:  issuer,
		expire:  expire,
		nowFunc: time.Now,
	}
}

func (n *JWTNonce) Create(action string, uid int64, ssid string) (string, error) {
	now := n.nowFunc()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    n.issuer,
			Subject:   strconv.FormatInt(uid, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(n.expire)),
		},
		Action: action,
		SSID:   ssid,
	})
	return token.SignedString(n.key)
}

func (n *JWTNonce) Verify(token, action string, uid int64, ssid string) error {
	if token == "" {
		return ErrInvalidNonce
	}
	var clm claims
	t, err := jwt.ParseWithClaims(token, &clm,
		func(token *jwt.Token) (interface{}, error) {
			return n.key, nil
		},
		jwt.WithTimeFunc(n.nowFunc),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(n.issuer),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNonce, err)
	}
	if !t.Valid ||
		clm.Action != action ||
		clm.Subject != strconv.FormatInt(uid, 10) ||
		clm.SSID != ssid {
		return ErrInvalidNonce
	}
	return nil
}
