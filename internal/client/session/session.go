// Package session 保存报表客户端的登录状态，可选持久化到 JSON 文件
package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"clinical-trial-system/internal/dto"

	"github.com/natefinch/atomic"
)

// State 一次登录得到的令牌与用户信息
type State struct {
	Token string       `json:"token"`
	User  dto.UserInfo `json:"user"`
}

// Session 线程安全的会话对象。Set 与 Clear 会通知所有订阅者，
// 退出登录（包括服务端返回 401）借此传播到各个使用方
type Session struct {
	mu     sync.RWMutex
	path   string
	state  *State
	nextID int
	subs   map[int]func(*State)
}

// New 创建会话；path 为空时只保存在内存中，文件不存在视为未登录
func New(path string) (*Session, error) {
	s := &Session{path: path, subs: make(map[int]func(*State))}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	if st.Token != "" {
		s.state = &st
	}
	return s, nil
}

// Get 返回当前会话的副本，未登录时返回 nil
func (s *Session) Get() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return nil
	}
	st := *s.state
	return &st
}

// Token 未登录时为空串
func (s *Session) Token() string {
	if st := s.Get(); st != nil {
		return st.Token
	}
	return ""
}

func (s *Session) Set(st State) error {
	s.mu.Lock()
	if err := s.persist(&st); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = &st
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		cp := st
		fn(&cp)
	}
	return nil
}

// Clear 退出登录；已经是未登录状态时不重复通知
func (s *Session) Clear() error {
	s.mu.Lock()
	if s.state == nil {
		s.mu.Unlock()
		return nil
	}
	if err := s.persist(nil); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = nil
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
	return nil
}

// Subscribe 订阅会话变化，退出登录时回调参数为 nil。返回取消订阅函数
func (s *Session) Subscribe(fn func(*State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// snapshotSubs 需持有锁；回调在锁外执行，允许回调里再读会话
func (s *Session) snapshotSubs() []func(*State) {
	subs := make([]func(*State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// persist 需持有锁；原子替换会话文件，不会留下写了一半的内容
func (s *Session) persist(st *State) error {
	if s.path == "" {
		return nil
	}
	if st == nil {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}

	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}
