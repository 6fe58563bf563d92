package dto

import "clinical-trial-system/internal/model"

// UserInfo 对外展示的用户信息，不含密码
type UserInfo struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResp struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
