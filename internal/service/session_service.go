package service

import (
	"context"
	"fmt"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/logger"
	"lexilearn_backend/pkg/monitoring"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionState 测试会话状态机
type SessionState string

const (
	StateItemShown    SessionState = "item_shown"    // 当前卡片仅显示词头
	StateItemRevealed SessionState = "item_revealed" // 卡片已翻开，等待作答
	StateComplete     SessionState = "complete"      // 全部作答完毕
	StateEmpty        SessionState = "empty"         // 筛选结果为空，会话未开始即终止
)

// TestSession 一次进行中的测试会话。
// 进度工作副本只由持有会话锁的请求串行修改；持久化交给 outbox，不阻塞答题。
type TestSession struct {
	ID     string
	UserID uint
	Config TestConfig

	State SessionState
	Items []model.VocabularyItem // 会话开始时洗牌一次，之后顺序固定
	Index int

	progress map[uint]model.VocabularyProgress
	counts   map[model.ProficiencyLevel]int
	unsaved  atomic.Int64 // outbox 可能在任意goroutine回调，独立于会话锁

	startedAt  time.Time
	lastActive time.Time

	mu sync.Mutex
}

// CardView 会话当前卡片对前端的投影：未翻开时只给词头
type CardView struct {
	VocabularyID      uint   `json:"vocabularyId"`
	Word              string `json:"word"`
	Revealed          bool   `json:"revealed"`
	PartOfSpeech      string `json:"partOfSpeech,omitempty"`
	ChineseDefinition string `json:"chineseDefinition,omitempty"`
	EnglishDefinition string `json:"englishDefinition,omitempty"`
	Example           string `json:"example,omitempty"`
}

type SessionResults struct {
	Mastered         int `json:"mastered"`
	SomewhatFamiliar int `json:"somewhatFamiliar"`
	NotFamiliar      int `json:"notFamiliar"`
	UnsavedCount     int `json:"unsavedCount"` // 重试耗尽后仍未落库的答题数
}

type SessionView struct {
	ID       string          `json:"id"`
	State    SessionState    `json:"state"`
	Total    int             `json:"total"`
	Position int             `json:"position"` // 1-based，Complete/Empty 时为 Total
	Current  *CardView       `json:"current,omitempty"`
	Results  *SessionResults `json:"results,omitempty"`
}

type SessionService struct {
	Source     VocabularySource
	Progress   ProgressStore
	Favourites FavouriteStore
	Records RecordStore
	Outbox  *ProgressOutbox
	Cfg        *config.Config

	sessions map[string]*TestSession
	mu       sync.Mutex
}

func NewSessionService(
	source VocabularySource,
	progress ProgressStore,
	favourites FavouriteStore,
	records RecordStore,
	outbox *ProgressOutbox,
	cfg *config.Config,
) *SessionService {
	return &SessionService{
		Source:     source,
		Progress:   progress,
		Favourites: favourites,
		Records:    records,
		Outbox:     outbox,
		Cfg:        cfg,
		sessions:   make(map[string]*TestSession),
	}
}

// Start 发起一次测试会话。
// 语料不可用是致命错误；进度/收藏读取失败降级为空集并告警。
// 筛选集在语料与进度都取回之后才构建，洗牌只在这里发生一次。
func (s *SessionService) Start(ctx context.Context, userID uint, cfg TestConfig) (*SessionView, error) {
	if cfg.Language == "" {
		cfg.Language = util.DefaultLanguage
	}
	cfg.GroupSize = s.Cfg.Session.GroupSize

	for _, lvl := range cfg.ProficiencyLevels {
		if !lvl.Valid() {
			return nil, util.ErrInvalidProficiency
		}
	}
	if len(cfg.SelectedGroups) == 0 {
		return nil, util.ErrEmptyGroups
	}

	corpus, err := s.Source.Corpus(ctx, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCorpusUnavailable, err)
	}

	progress, err := s.Progress.FindByUser(userID)
	if err != nil {
		logger.Log.Warn("progress fetch failed, defaulting to empty", zap.Uint("userId", userID), zap.Error(err))
		progress = nil
	}

	favSet := make(map[uint]bool)
	if cfg.OnlyFavourites {
		ids, err := s.Favourites.ListIDs(userID)
		if err != nil {
			logger.Log.Warn("favourites fetch failed, defaulting to empty", zap.Uint("userId", userID), zap.Error(err))
		}
		for _, id := range ids {
			favSet[id] = true
		}
	}

	items := BuildTestSet(corpus, cfg, progress, favSet)

	session := &TestSession{
		ID:         uuid.New().String(),
		UserID:     userID,
		Config:     cfg,
		Items:      items,
		progress:   make(map[uint]model.VocabularyProgress, len(progress)),
		counts:     make(map[model.ProficiencyLevel]int),
		startedAt:  time.Now(),
		lastActive: time.Now(),
	}
	for _, entry := range progress {
		session.progress[entry.VocabularyID] = entry
	}

	if len(items) == 0 {
		session.State = StateEmpty
	} else {
		// Fisher–Yates，每会话仅此一次
		rand.Shuffle(len(session.Items), func(i, j int) {
			session.Items[i], session.Items[j] = session.Items[j], session.Items[i]
		})
		session.State = StateItemShown
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	monitoring.SessionsStarted.Inc()

	return session.view(), nil
}

func (s *SessionService) Get(userID uint, sessionID string) (*SessionView, error) {
	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()
	return session.view(), nil
}

// Flip 翻开当前卡片。重复翻开是无害操作，直接返回当前视图。
func (s *SessionService) Flip(userID uint, sessionID string) (*SessionView, error) {
	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()

	switch session.State {
	case StateItemShown:
		session.State = StateItemRevealed
	case StateItemRevealed:
		// 幂等
	default:
		return nil, util.ErrSessionFinished
	}

	return session.view(), nil
}

// Answer 对已翻开的卡片作答并推进会话。
// vocabularyId 必须指向当前卡片；指向上一张卡片的重复提交被静默忽略（双击防护），
// 进度工作副本同步更新，持久化写入交给 outbox 后立即推进。
func (s *SessionService) Answer(userID uint, sessionID string, vocabularyID uint, answer model.ProficiencyLevel) (*SessionView, error) {
	if !answer.Valid() {
		return nil, util.ErrInvalidProficiency
	}

	session, err := s.find(userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastActive = time.Now()

	switch session.State {
	case StateComplete:
		// 最后一张卡片作答后会话已收尾，对它的重复提交同样静默忽略
		if n := len(session.Items); n > 0 && session.Items[n-1].ID == vocabularyID {
			return session.view(), nil
		}
		return nil, util.ErrSessionFinished
	case StateEmpty:
		return nil, util.ErrSessionFinished
	}

	current := session.Items[session.Index]
	if vocabularyID != current.ID {
		// 推进后对上一张卡片的重复作答：忽略，不改变任何状态
		if session.Index > 0 && session.Items[session.Index-1].ID == vocabularyID {
			return session.view(), nil
		}
		return nil, fmt.Errorf("vocabulary %d is not the current card", vocabularyID)
	}

	if session.State != StateItemRevealed {
		return nil, util.ErrNotRevealed
	}

	entry, ok := session.progress[current.ID]
	if !ok {
		entry = model.VocabularyProgress{
			UserID:       userID,
			VocabularyID: current.ID,
		}
	}
	entry.MasteredCount = ApplyAnswer(entry.MasteredCount, answer)
	entry.LastTestDate = time.Now()
	session.progress[current.ID] = entry
	session.counts[answer]++

	monitoring.AnswersTotal.WithLabelValues(string(answer)).Inc()

	// 持久化交给重试队列；丢弃时回调累加未保存计数
	s.Outbox.Enqueue(entry, func() {
		session.unsaved.Add(1)
	})

	session.Index++
	if session.Index >= len(session.Items) {
		session.State = StateComplete
		monitoring.SessionsCompleted.Inc()
		s.archive(session)
	} else {
		session.State = StateItemShown
	}

	return session.view(), nil
}

// Abandon 放弃会话
func (s *SessionService) Abandon(userID uint, sessionID string) error {
	if _, err := s.find(userID, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// CleanupExpired 移除空闲超时的会话，由后台定时任务调用
func (s *SessionService) CleanupExpired() int {
	cutoff := time.Now().Add(-s.Cfg.Session.IdleExpire)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		session.mu.Lock()
		expired := session.lastActive.Before(cutoff)
		session.mu.Unlock()
		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionService) find(userID uint, sessionID string) (*TestSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()

	if !ok || session.UserID != userID {
		return nil, util.ErrSessionNotFound
	}
	return session, nil
}

// archive 把完成的会话写成测试记录；失败只告警，不影响会话结束
func (s *SessionService) archive(session *TestSession) {
	record := &model.TestRecord{
		UserID:             session.UserID,
		Language:           session.Config.Language,
		Level:              session.Config.Level,
		TotalItems:         len(session.Items),
		MasteredAnswers:    session.counts[model.Mastered],
		SomewhatAnswers:    session.counts[model.SomewhatFamiliar],
		NotFamiliarAnswers: session.counts[model.NotFamiliar],
		DurationSeconds:    int(time.Since(session.startedAt).Seconds()),
		CompletedAt:        time.Now(),
	}
	if err := s.Records.Create(record); err != nil {
		logger.Log.Warn("test record archive failed", zap.String("sessionId", session.ID), zap.Error(err))
	}
}

// view 基于当前状态构建前端视图，调用方须持有会话锁
func (t *TestSession) view() *SessionView {
	view := &SessionView{
		ID:    t.ID,
		State: t.State,
		Total: len(t.Items),
	}

	switch t.State {
	case StateComplete, StateEmpty:
		view.Position = len(t.Items)
		view.Results = &SessionResults{
			Mastered:         t.counts[model.Mastered],
			SomewhatFamiliar: t.counts[model.SomewhatFamiliar],
			NotFamiliar:      t.counts[model.NotFamiliar],
			UnsavedCount:     int(t.unsaved.Load()),
		}
	default:
		view.Position = t.Index + 1
		item := t.Items[t.Index]
		card := &CardView{
			VocabularyID: item.ID,
			Word:         item.Word,
			Revealed:     t.State == StateItemRevealed,
		}
		if card.Revealed {
			card.PartOfSpeech = item.PartOfSpeech
			card.ChineseDefinition = item.ChineseDefinition
			card.EnglishDefinition = item.EnglishDefinition
			card.Example = item.Example
		}
		view.Current = card
	}

	return view
}
