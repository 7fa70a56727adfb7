package subscriber

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	subs   map[uint]*Subscriber
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{subs: make(map[uint]*Subscriber), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, sub *Subscriber) error {
	for _, existing := range r.subs {
		if existing.Email == sub.Email {
			return ErrAlreadySubscribed
		}
	}
	sub.ID = r.nextID
	r.nextID++
	clone := *sub
	r.subs[sub.ID] = &clone
	return nil
}

func (r *fakeRepo) FindByEmail(_ context.Context, email string) (*Subscriber, error) {
	for _, sub := range r.subs {
		if sub.Email == email {
			clone := *sub
			return &clone, nil
		}
	}
	return nil, ErrSubscriberNotFound
}

func (r *fakeRepo) Update(_ context.Context, sub *Subscriber) error {
	if _, ok := r.subs[sub.ID]; !ok {
		return ErrSubscriberNotFound
	}
	clone := *sub
	r.subs[sub.ID] = &clone
	return nil
}

func (r *fakeRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, sub := range r.subs {
		if sub.IsActive {
			count++
		}
	}
	return count, nil
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo) Service {
	svc := NewService(repo).(*service)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestSubscribe(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	result, err := svc.Subscribe(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, ResultSubscribed, result)

	sub, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "Alice", sub.Name)
	assert.Equal(t, testNow, sub.SubscribedDate)
}

func TestSubscribe_Duplicate(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "alice@example.com", "Alice")
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	count, _ := svc.ActiveCount(ctx)
	assert.Equal(t, int64(1), count)
}

func TestSubscribe_EmailRequired(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Subscribe(context.Background(), "   ", "Alice")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestSubscribe_Reactivation(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	// 订阅 → 退订 → 再订阅:同一条记录翻转回活跃,不插入新行
	_, err := svc.Subscribe(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(ctx, "alice@example.com"))

	result, err := svc.Subscribe(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, ResultReactivated, result)

	assert.Len(t, repo.subs, 1)
	sub, _ := repo.FindByEmail(ctx, "alice@example.com")
	assert.True(t, sub.IsActive)
}

func TestUnsubscribe(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "alice@example.com"))

	sub, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.False(t, sub.IsActive)

	// 已退订再退订 → NotFound
	err = svc.Unsubscribe(ctx, "alice@example.com")
	assert.ErrorIs(t, err, ErrSubscriberNotFound)
}

func TestUnsubscribe_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	err := svc.Unsubscribe(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrSubscriberNotFound)
}

func TestActiveCount(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Subscribe(ctx, email, "")
		require.NoError(t, err)
	}
	require.NoError(t, svc.Unsubscribe(ctx, "b@example.com"))

	count, err := svc.ActiveCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
