package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionFinished    = errors.New("session already finished")
	ErrNotRevealed        = errors.New("card not revealed yet")
	ErrInvalidProficiency = errors.New("invalid proficiency value")
	ErrEmptyGroups        = errors.New("at least one group must be selected")
	ErrCorpusUnavailable  = errors.New("vocabulary corpus unavailable")
)
