package screens

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/session"
)

// LoginMode 登录页模式
type LoginMode string

const (
	ModeLogin    LoginMode = "login"
	ModeRegister LoginMode = "register"
)

// LoginController 登录/注册页控制器
// Holds the form fields locally; all validation beyond non-empty checks is the
// server's job and only ever reaches the user as an inline error message.
type LoginController struct {
	api      *api.Client
	sessions session.Store
	logger   *zap.Logger

	Mode      LoginMode
	Email     string
	Password  string
	Name      string // register only, optional
	GroupName string // register only, optional
	Err       string
	Loading   bool
}

func NewLoginController(client *api.Client, sessions session.Store, logger *zap.Logger) *LoginController {
	return &LoginController{
		api:      client,
		sessions: sessions,
		logger:   logger,
		Mode:     ModeLogin,
	}
}

// Submit runs the current mode's auth call. On success the returned credential
// is stored and the target route is reported; on failure the message lands in
// Err and the form stays populated and editable.
func (c *LoginController) Submit(ctx context.Context) (Route, bool) {
	if c.Loading {
		return Route{}, false
	}
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		c.Err = "email and password are required"
		return Route{}, false
	}

	c.Err = ""
	c.Loading = true
	defer func() { c.Loading = false }()

	var (
		res *api.AuthResponse
		err error
	)
	if c.Mode == ModeRegister {
		res, err = c.api.Register(ctx, api.RegisterRequest{
			Email:     strings.TrimSpace(c.Email),
			Password:  c.Password,
			Name:      strings.TrimSpace(c.Name),
			GroupName: strings.TrimSpace(c.GroupName),
		})
	} else {
		res, err = c.api.Login(ctx, api.LoginRequest{
			Email:    strings.TrimSpace(c.Email),
			Password: c.Password,
		})
	}
	if err != nil {
		c.Err = err.Error()
		return Route{}, false
	}

	c.sessions.Set(res.AccessToken)
	c.logger.Info("logged in", zap.String("user_id", res.User.ID), zap.String("mode", string(c.Mode)))
	return Route{Name: RoutePatients}, true
}
