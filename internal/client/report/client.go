// Package report 是报表页面的客户端：拉取汇总数据、计算派生指标并在本地生成工作簿
package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"clinical-trial-system/internal/client/session"
	"clinical-trial-system/internal/dto"
	"clinical-trial-system/internal/global/httpclient"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized 服务端返回 401，本地会话已被清除
var ErrUnauthorized = errors.New("session expired, please log in again")

// ErrNotLoggedIn 本地没有会话
var ErrNotLoggedIn = errors.New("not logged in")

// APIError 服务端返回的非 2xx 响应
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d", e.Status)
	}
	return fmt.Sprintf("server responded %d: %s", e.Status, e.Message)
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Client struct {
	http    *resty.Client
	session *session.Session
}

// NewClient baseURL 形如 http://localhost:5000/api
func NewClient(baseURL string, sess *session.Session) *Client {
	c := &Client{http: httpclient.New(baseURL), session: sess}
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized && resp.Request.Token != "" {
			// 令牌失效：清除会话，订阅者据此退出登录
			_ = c.session.Clear()
		}
		return nil
	})
	return c
}

func (c *Client) Session() *session.Session {
	return c.session
}

// Login 成功后写入会话
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResp, error) {
	var out dto.LoginResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(dto.LoginReq{Username: username, Password: password}).
		SetResult(&out).
		SetError(&errorBody{}).
		Post("/auth/login")
	if err != nil {
		return nil, err
	}
	if err := asError(resp); err != nil {
		return nil, err
	}
	if err := c.session.Set(session.State{Token: out.Token, User: out.User}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) Summary(ctx context.Context) (*dto.Summary, error) {
	var out dto.Summary
	if err := c.get(ctx, "/reports/summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Participation(ctx context.Context) ([]dto.Participation, error) {
	out := make([]dto.Participation, 0)
	if err := c.get(ctx, "/reports/participation", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Snapshot(ctx context.Context) (*dto.Snapshot, error) {
	var out dto.Snapshot
	if err := c.get(ctx, "/reports/export", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotLoggedIn
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(out).
		SetError(&errorBody{}).
		Get(path)
	if err != nil {
		return err
	}
	return asError(resp)
}

func asError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusUnauthorized && resp.Request.Token != "" {
		return ErrUnauthorized
	}
	apiErr := &APIError{Status: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
