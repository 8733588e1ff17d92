package service

import (
	"context"
	"errors"
	"fmt"
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/util"
	"lexilearn_backend/pkg/logger"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	m.Run()
}

type fakeSource struct {
	items []model.VocabularyItem
	err   error
}

func (f *fakeSource) Corpus(ctx context.Context, language string) ([]model.VocabularyItem, error) {
	return f.items, f.err
}

type fakeProgressStore struct {
	mu       sync.Mutex
	existing []model.VocabularyProgress
	upserts  []model.VocabularyProgress
	failures int
	findErr  error
}

func (f *fakeProgressStore) FindByUser(userID uint) ([]model.VocabularyProgress, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.existing, nil
}

func (f *fakeProgressStore) Upsert(entry *model.VocabularyProgress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("storage unavailable")
	}
	f.upserts = append(f.upserts, *entry)
	return nil
}

func (f *fakeProgressStore) saved() []model.VocabularyProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.VocabularyProgress, len(f.upserts))
	copy(out, f.upserts)
	return out
}

type fakeFavouriteStore struct {
	ids []uint
	err error
}

func (f *fakeFavouriteStore) ListIDs(userID uint) ([]uint, error) {
	return f.ids, f.err
}

type fakeRecordStore struct {
	mu      sync.Mutex
	records []model.TestRecord
}

func (f *fakeRecordStore) Create(record *model.TestRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *record)
	return nil
}

func testCorpus(n int) []model.VocabularyItem {
	items := make([]model.VocabularyItem, 0, n)
	for i := 0; i < n; i++ {
		item := word(uint(i+1), fmt.Sprintf("word%03d", i), "A1")
		item.ChineseDefinition = "释义"
		item.EnglishDefinition = "definition"
		items = append(items, item)
	}
	return items
}

func newTestSessionService(source *fakeSource, progress *fakeProgressStore, favourites *fakeFavouriteStore) (*SessionService, *fakeRecordStore, *ProgressOutbox) {
	cfg := &config.Config{
		Session: config.SessionConfig{
			GroupSize:  20,
			IdleExpire: 30 * time.Minute,
		},
	}
	outbox := NewProgressOutbox(progress, config.OutboxConfig{
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
		QueueSize:   64,
	})
	outbox.Start()

	records := &fakeRecordStore{}
	svc := NewSessionService(source, progress, favourites, records, outbox, cfg)
	return svc, records, outbox
}

func defaultTestConfig() TestConfig {
	return TestConfig{
		Level:          "A1",
		SelectedGroups: []int{1},
		ProficiencyLevels: []model.ProficiencyLevel{
			model.Mastered, model.SomewhatFamiliar, model.NotFamiliar,
		},
	}
}

func TestSessionStartValidation(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(5)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	cfg := defaultTestConfig()
	cfg.ProficiencyLevels = []model.ProficiencyLevel{"expert"}
	_, err := svc.Start(context.Background(), 1, cfg)
	assert.ErrorIs(t, err, util.ErrInvalidProficiency)

	cfg = defaultTestConfig()
	cfg.SelectedGroups = nil
	_, err = svc.Start(context.Background(), 1, cfg)
	assert.ErrorIs(t, err, util.ErrEmptyGroups)
}

func TestSessionStartCorpusUnavailable(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{err: errors.New("db down")}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	_, err := svc.Start(context.Background(), 1, defaultTestConfig())
	assert.ErrorIs(t, err, util.ErrCorpusUnavailable)
}

func TestSessionStartProgressFetchDegrades(t *testing.T) {
	// 进度读取失败不阻断会话，按空进度处理
	progress := &fakeProgressStore{findErr: errors.New("db down")}
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(3)}, progress, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	assert.Equal(t, StateItemShown, view.State)
	assert.Equal(t, 3, view.Total)
}

func TestSessionEmptyResult(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(3)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	cfg := defaultTestConfig()
	cfg.Level = "C2"
	view, err := svc.Start(context.Background(), 1, cfg)
	require.NoError(t, err)

	assert.Equal(t, StateEmpty, view.State)
	assert.Equal(t, 0, view.Total)
	assert.Nil(t, view.Current)
	require.NotNil(t, view.Results)
	assert.Equal(t, 0, view.Results.Mastered)

	// 空会话不接受翻卡与作答
	_, err = svc.Flip(1, view.ID)
	assert.ErrorIs(t, err, util.ErrSessionFinished)
	_, err = svc.Answer(1, view.ID, 1, model.Mastered)
	assert.ErrorIs(t, err, util.ErrSessionFinished)
}

func TestSessionCardHidesDefinitionsUntilFlip(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	require.NotNil(t, view.Current)

	assert.False(t, view.Current.Revealed)
	assert.NotEmpty(t, view.Current.Word)
	assert.Empty(t, view.Current.ChineseDefinition)
	assert.Empty(t, view.Current.EnglishDefinition)

	view, err = svc.Flip(1, view.ID)
	require.NoError(t, err)
	assert.True(t, view.Current.Revealed)
	assert.Equal(t, "释义", view.Current.ChineseDefinition)
	assert.Equal(t, "definition", view.Current.EnglishDefinition)
}

func TestSessionFlipIdempotent(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)

	first, err := svc.Flip(1, view.ID)
	require.NoError(t, err)
	second, err := svc.Flip(1, view.ID)
	require.NoError(t, err)

	assert.Equal(t, StateItemRevealed, second.State)
	assert.Equal(t, first.Position, second.Position)
	assert.Equal(t, first.Current.VocabularyID, second.Current.VocabularyID)
}

func TestSessionAnswerRequiresFlip(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)

	_, err = svc.Answer(1, view.ID, view.Current.VocabularyID, model.Mastered)
	assert.ErrorIs(t, err, util.ErrNotRevealed)
}

func TestSessionAnswerRejectsWrongCard(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(5)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	view, err = svc.Flip(1, view.ID)
	require.NoError(t, err)

	_, err = svc.Answer(1, view.ID, 9999, model.Mastered)
	assert.Error(t, err)

	_, err = svc.Answer(1, view.ID, view.Current.VocabularyID, "expert")
	assert.ErrorIs(t, err, util.ErrInvalidProficiency)
}

func TestSessionDoubleAnswerIgnored(t *testing.T) {
	progress := &fakeProgressStore{}
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(3)}, progress, &fakeFavouriteStore{})

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	view, err = svc.Flip(1, view.ID)
	require.NoError(t, err)

	firstCard := view.Current.VocabularyID
	view, err = svc.Answer(1, view.ID, firstCard, model.Mastered)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Position)

	// 对上一张卡片的重复提交被静默忽略，不改变进度也不推进会话
	again, err := svc.Answer(1, view.ID, firstCard, model.Mastered)
	require.NoError(t, err)
	assert.Equal(t, view.Position, again.Position)
	assert.Equal(t, view.Current.VocabularyID, again.Current.VocabularyID)

	outbox.Stop()
	saved := progress.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, firstCard, saved[0].VocabularyID)
	assert.Equal(t, 1, saved[0].MasteredCount)
}

func TestSessionDoubleAnswerOnLastCardIgnored(t *testing.T) {
	progress := &fakeProgressStore{}
	svc, records, outbox := newTestSessionService(&fakeSource{items: testCorpus(1)}, progress, &fakeFavouriteStore{})

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	view, err = svc.Flip(1, view.ID)
	require.NoError(t, err)

	lastCard := view.Current.VocabularyID
	view, err = svc.Answer(1, view.ID, lastCard, model.Mastered)
	require.NoError(t, err)
	require.Equal(t, StateComplete, view.State)

	// 收尾后的重复提交：静默返回结果视图，进度与归档都不翻倍
	again, err := svc.Answer(1, view.ID, lastCard, model.Mastered)
	require.NoError(t, err)
	assert.Equal(t, StateComplete, again.State)
	assert.Equal(t, view.Results, again.Results)

	// 指向其他卡片的提交仍然报会话已结束
	_, err = svc.Answer(1, view.ID, 9999, model.Mastered)
	assert.ErrorIs(t, err, util.ErrSessionFinished)

	outbox.Stop()
	saved := progress.saved()
	require.Len(t, saved, 1)
	assert.Equal(t, 1, saved[0].MasteredCount)
	assert.Len(t, records.records, 1)
}

func TestSessionCompleteFlow(t *testing.T) {
	progress := &fakeProgressStore{
		existing: []model.VocabularyProgress{progressOf(1, 1, 2)},
	}
	svc, records, outbox := newTestSessionService(&fakeSource{items: testCorpus(4)}, progress, &fakeFavouriteStore{})

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)
	require.Equal(t, 4, view.Total)

	// 每个单词恰好出现一次
	seen := make(map[uint]bool)
	answers := []model.ProficiencyLevel{
		model.Mastered, model.SomewhatFamiliar, model.NotFamiliar, model.Mastered,
	}
	for i := 0; view.State != StateComplete; i++ {
		view, err = svc.Flip(1, view.ID)
		require.NoError(t, err)

		id := view.Current.VocabularyID
		assert.False(t, seen[id], "item %d repeated", id)
		seen[id] = true

		view, err = svc.Answer(1, view.ID, id, answers[i])
		require.NoError(t, err)
	}

	assert.Len(t, seen, 4)
	require.NotNil(t, view.Results)
	assert.Equal(t, 2, view.Results.Mastered)
	assert.Equal(t, 1, view.Results.SomewhatFamiliar)
	assert.Equal(t, 1, view.Results.NotFamiliar)
	assert.Equal(t, 0, view.Results.UnsavedCount)

	outbox.Stop()
	assert.Len(t, progress.saved(), 4)

	require.Len(t, records.records, 1)
	record := records.records[0]
	assert.Equal(t, uint(1), record.UserID)
	assert.Equal(t, "A1", record.Level)
	assert.Equal(t, 4, record.TotalItems)
	assert.Equal(t, 2, record.MasteredAnswers)

	// 会话结束后不再接受操作
	_, err = svc.Flip(1, view.ID)
	assert.ErrorIs(t, err, util.ErrSessionFinished)
}

func TestSessionOwnership(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)

	// 其他用户拿不到这个会话
	_, err = svc.Get(2, view.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, err = svc.Get(1, "no-such-session")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionAbandon(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(1, view.ID))
	_, err = svc.Get(1, view.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	assert.ErrorIs(t, svc.Abandon(1, view.ID), util.ErrSessionNotFound)
}

func TestSessionCleanupExpired(t *testing.T) {
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(2)}, &fakeProgressStore{}, &fakeFavouriteStore{})
	defer outbox.Stop()

	view, err := svc.Start(context.Background(), 1, defaultTestConfig())
	require.NoError(t, err)

	// 尚未过期
	assert.Equal(t, 0, svc.CleanupExpired())

	svc.Cfg.Session.IdleExpire = time.Nanosecond
	time.Sleep(time.Millisecond)
	assert.Equal(t, 1, svc.CleanupExpired())

	_, err = svc.Get(1, view.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionOnlyFavourites(t *testing.T) {
	favourites := &fakeFavouriteStore{ids: []uint{2, 3}}
	svc, _, outbox := newTestSessionService(&fakeSource{items: testCorpus(5)}, &fakeProgressStore{}, favourites)
	defer outbox.Stop()

	cfg := defaultTestConfig()
	cfg.OnlyFavourites = true
	view, err := svc.Start(context.Background(), 1, cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Total)
}
