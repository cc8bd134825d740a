package api

import (
	"context"
	"net/http"

	"github.com/CamiMaidana/FamilyMed/internal/domain"
)

// RegisterRequest 注册请求
// Name and GroupName are optional; the server creates the family group and
// leaves the new user as its admin.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name,omitempty"`
	GroupName string `json:"groupName,omitempty"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse 登录/注册响应（凭证 + 用户）
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        domain.User `json:"user"`
}

// Register 注册新用户（POST /auth/register）
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login 登录（POST /auth/login）
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me 获取当前用户（GET /auth/me）
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
