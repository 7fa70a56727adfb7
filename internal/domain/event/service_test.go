package event

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =========================================
// 内存伪仓储(计数器语义与mysql实现一致:条件递增、下限0)
// =========================================

type fakeEventRepo struct {
	events map[uint]*Event
	nextID uint
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uint]*Event), nextID: 1}
}

func (r *fakeEventRepo) Create(_ context.Context, e *Event) error {
	e.ID = r.nextID
	r.nextID++
	clone := *e
	r.events[e.ID] = &clone
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *Event) error {
	if _, ok := r.events[e.ID]; !ok {
		return ErrEventNotFound
	}
	clone := *e
	r.events[e.ID] = &clone
	return nil
}

func (r *fakeEventRepo) Cancel(_ context.Context, id uint) error {
	e, ok := r.events[id]
	if !ok {
		return ErrEventNotFound
	}
	e.IsActive = false
	return nil
}

func (r *fakeEventRepo) List(_ context.Context, params ListParams) ([]*Event, int64, error) {
	var filtered []*Event
	for _, e := range r.events {
		if !e.IsActive || e.EventDate.Before(params.Now) {
			continue
		}
		if params.EventType != "" && !strings.Contains(e.EventType, params.EventType) {
			continue
		}
		clone := *e
		filtered = append(filtered, &clone)
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].EventDate.Before(filtered[j].EventDate) })

	total := int64(len(filtered))
	offset := (params.Page - 1) * params.PageSize
	if offset >= len(filtered) {
		return nil, total, nil
	}
	end := offset + params.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (r *fakeEventRepo) DistinctEventTypes(_ context.Context) ([]string, error) {
	set := make(map[string]struct{})
	for _, e := range r.events {
		if e.IsActive {
			set[e.EventType] = struct{}{}
		}
	}
	types := make([]string, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

func (r *fakeEventRepo) IncrementRegistrations(_ context.Context, id uint) error {
	e, ok := r.events[id]
	if !ok {
		return ErrEventNotFound
	}
	if e.CurrentRegistrations >= e.Capacity {
		return ErrEventFull
	}
	e.CurrentRegistrations++
	return nil
}

func (r *fakeEventRepo) DecrementRegistrations(_ context.Context, id uint) error {
	e, ok := r.events[id]
	if !ok {
		return nil
	}
	if e.CurrentRegistrations > 0 {
		e.CurrentRegistrations--
	}
	return nil
}

type fakeRegRepo struct {
	regs   map[uint]*Registration
	nextID uint
}

func newFakeRegRepo() *fakeRegRepo {
	return &fakeRegRepo{regs: make(map[uint]*Registration), nextID: 1}
}

func (r *fakeRegRepo) Create(_ context.Context, reg *Registration) error {
	for _, existing := range r.regs {
		if existing.EventID == reg.EventID && existing.Email == reg.Email {
			return ErrAlreadyRegistered
		}
	}
	reg.ID = r.nextID
	r.nextID++
	clone := *reg
	r.regs[reg.ID] = &clone
	return nil
}

func (r *fakeRegRepo) FindByEventAndEmail(_ context.Context, eventID uint, email string) (*Registration, error) {
	for _, reg := range r.regs {
		if reg.EventID == eventID && reg.Email == email {
			clone := *reg
			return &clone, nil
		}
	}
	return nil, ErrRegistrationNotFound
}

func (r *fakeRegRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.regs[id]; !ok {
		return ErrRegistrationNotFound
	}
	delete(r.regs, id)
	return nil
}

func (r *fakeRegRepo) ListByEvent(_ context.Context, eventID uint) ([]*Registration, error) {
	var result []*Registration
	for _, reg := range r.regs {
		if reg.EventID == eventID {
			clone := *reg
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RegisteredDate.Before(result[j].RegisteredDate) })
	return result, nil
}

// fakeTransactor 直接执行fn(单测不需要真事务)
type fakeTransactor struct{}

func (fakeTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// =========================================
// 测试环境
// =========================================

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc       Service
	eventRepo *fakeEventRepo
	regRepo   *fakeRegRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	eventRepo := newFakeEventRepo()
	regRepo := newFakeRegRepo()
	svc := NewService(eventRepo, regRepo, fakeTransactor{}).(*service)
	svc.now = func() time.Time { return testNow }
	return &testEnv{svc: svc, eventRepo: eventRepo, regRepo: regRepo}
}

func (e *testEnv) seedEvent(t *testing.T, capacity int, date time.Time) *Event {
	t.Helper()
	event, err := e.svc.CreateEvent(context.Background(), &Event{
		Name:      "Author Reading",
		EventType: "Reading",
		EventDate: date,
		Location:  "Main store",
		Capacity:  capacity,
	})
	require.NoError(t, err)
	return event
}

// =========================================
// 报名状态机
// =========================================

func TestRegister_Success(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	reg, err := env.svc.Register(ctx, event.ID, "alice@example.com", "Alice")
	require.NoError(t, err)

	assert.Equal(t, event.ID, reg.EventID)
	assert.Equal(t, "alice@example.com", reg.Email)
	assert.Equal(t, testNow, reg.RegisteredDate)
	assert.False(t, reg.IsAttended)

	got, err := env.svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentRegistrations)
}

func TestRegister_EventNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Register(context.Background(), 99, "a@example.com", "A")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegister_CancelledEvent(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	require.NoError(t, env.svc.CancelEvent(ctx, event.ID))

	_, err := env.svc.Register(ctx, event.ID, "a@example.com", "A")
	assert.ErrorIs(t, err, ErrEventCancelled)
}

func TestRegister_PassedEvent(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(-time.Hour))

	_, err := env.svc.Register(context.Background(), event.ID, "a@example.com", "A")
	assert.ErrorIs(t, err, ErrEventPassed)
}

func TestRegister_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	_, err := env.svc.Register(ctx, event.ID, "a@example.com", "A")
	require.NoError(t, err)

	// 同一邮箱重复报名 → 冲突,不产生重复记录
	_, err = env.svc.Register(ctx, event.ID, "a@example.com", "A")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	regs, err := env.svc.ListRegistrations(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	got, _ := env.svc.GetEvent(ctx, event.ID)
	assert.Equal(t, 1, got.CurrentRegistrations)
}

func TestRegister_CapacityInvariant(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 1, testNow.Add(48*time.Hour))
	ctx := context.Background()

	_, err := env.svc.Register(ctx, event.ID, "first@example.com", "First")
	require.NoError(t, err)

	// 容量1已满,第二个不同邮箱必须被拒,计数器保持1
	_, err = env.svc.Register(ctx, event.ID, "second@example.com", "Second")
	assert.ErrorIs(t, err, ErrEventFull)

	got, _ := env.svc.GetEvent(ctx, event.ID)
	assert.Equal(t, 1, got.CurrentRegistrations)
}

func TestRegister_ConditionalIncrementClosesRace(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 1, testNow.Add(48*time.Hour))
	ctx := context.Background()

	// 模拟竞态:预检之后、事务提交之前另一个请求占满了容量
	// 条件递增必须兜底拒绝,而不是把计数器顶到2
	require.NoError(t, env.eventRepo.IncrementRegistrations(ctx, event.ID))

	err := env.eventRepo.IncrementRegistrations(ctx, event.ID)
	assert.ErrorIs(t, err, ErrEventFull)

	got, _ := env.svc.GetEvent(ctx, event.ID)
	assert.Equal(t, 1, got.CurrentRegistrations)
	assert.LessOrEqual(t, got.CurrentRegistrations, got.Capacity)
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	_, err := env.svc.Register(ctx, event.ID, "", "A")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = env.svc.Register(ctx, event.ID, "a@example.com", "  ")
	assert.ErrorIs(t, err, ErrNameRequired)
}

// =========================================
// 取消报名
// =========================================

func TestUnregister(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	_, err := env.svc.Register(ctx, event.ID, "a@example.com", "A")
	require.NoError(t, err)

	require.NoError(t, env.svc.Unregister(ctx, event.ID, "a@example.com"))

	got, _ := env.svc.GetEvent(ctx, event.ID)
	assert.Equal(t, 0, got.CurrentRegistrations)

	// 记录已删,再取消 → NotFound
	err = env.svc.Unregister(ctx, event.ID, "a@example.com")
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestUnregister_DecrementFloor(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	// 计数器已是0时取消报名(计数器失配的防御场景),不能降到负数
	reg := &Registration{EventID: event.ID, Email: "ghost@example.com", Name: "Ghost", RegisteredDate: testNow}
	require.NoError(t, env.regRepo.Create(ctx, reg))

	require.NoError(t, env.svc.Unregister(ctx, event.ID, "ghost@example.com"))

	got, _ := env.svc.GetEvent(ctx, event.ID)
	assert.Equal(t, 0, got.CurrentRegistrations)
}

// =========================================
// 列表与类型筛选
// =========================================

func TestListEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	later := env.seedEvent(t, 10, testNow.Add(72*time.Hour))
	sooner := env.seedEvent(t, 10, testNow.Add(24*time.Hour))
	passed := env.seedEvent(t, 10, testNow.Add(-24*time.Hour))
	cancelled := env.seedEvent(t, 10, testNow.Add(24*time.Hour))
	require.NoError(t, env.svc.CancelEvent(ctx, cancelled.ID))

	page, err := env.svc.ListEvents(ctx, "", 1, 10)
	require.NoError(t, err)

	// 已过期和已取消的不出现,按活动日期升序
	require.Equal(t, int64(2), page.TotalCount)
	assert.Equal(t, sooner.ID, page.Events[0].ID)
	assert.Equal(t, later.ID, page.Events[1].ID)
	for _, e := range page.Events {
		assert.NotEqual(t, passed.ID, e.ID)
		assert.NotEqual(t, cancelled.ID, e.ID)
	}
}

func TestListEvents_TypeFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateEvent(ctx, &Event{Name: "Signing", EventType: "Book Signing", EventDate: testNow.Add(time.Hour), Capacity: 5})
	require.NoError(t, err)
	_, err = env.svc.CreateEvent(ctx, &Event{Name: "Club", EventType: "Book Club", EventDate: testNow.Add(time.Hour), Capacity: 5})
	require.NoError(t, err)

	page, err := env.svc.ListEvents(ctx, "Signing", 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, "Book Signing", page.Events[0].EventType)
}

func TestListEvents_PagingClamp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	page, err := env.svc.ListEvents(ctx, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, DefaultPageSize, page.PageSize)

	page, err = env.svc.ListEvents(ctx, "", 1, 99)
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, page.PageSize)
}

func TestListEventTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, et := range []string{"Reading", "Book Signing", "Reading"} {
		_, err := env.svc.CreateEvent(ctx, &Event{Name: "e", EventType: et, EventDate: testNow.Add(time.Hour), Capacity: 5})
		require.NoError(t, err)
	}

	types, err := env.svc.ListEventTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Book Signing", "Reading"}, types)
}

// =========================================
// 活动CRUD
// =========================================

func TestUpdateEvent_Partial(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	newName := "Renamed Reading"
	zeroCapacity := 0
	updated, err := env.svc.UpdateEvent(ctx, event.ID, UpdateParams{
		Name:     &newName,
		Capacity: &zeroCapacity, // 非正容量忽略,保留原值
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Reading", updated.Name)
	assert.Equal(t, event.EventType, updated.EventType)
	assert.Equal(t, event.Location, updated.Location)
	assert.Equal(t, 10, updated.Capacity)
}

func TestUpdateEvent_NotFound(t *testing.T) {
	env := newTestEnv(t)
	name := "x"
	_, err := env.svc.UpdateEvent(context.Background(), 42, UpdateParams{Name: &name})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCancelEvent(t *testing.T) {
	env := newTestEnv(t)
	event := env.seedEvent(t, 10, testNow.Add(48*time.Hour))
	ctx := context.Background()

	require.NoError(t, env.svc.CancelEvent(ctx, event.ID))

	got, err := env.svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, env.svc.CancelEvent(ctx, 42), ErrEventNotFound)
}

func TestListRegistrations_EventNotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.ListRegistrations(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
