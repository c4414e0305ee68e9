package schedule

import (
	"context"
	"fmt"
	"salonflow-service/internal/app/config"
	"salonflow-service/internal/app/contracts"
	"salonflow-service/internal/app/models"
	"salonflow-service/internal/pkg/caldate"
	"salonflow-service/internal/pkg/constvars"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeStore is an in-memory stand-in for the salon API with per-date failure
// injection, so batch partial-failure and retry behavior can be exercised
// against real upsert/delete semantics.
type fakeStore struct {
	rules      []models.WorkRule
	exceptions map[string]models.ScheduleException
	blocks     map[string]models.ScheduleBlock
	nextID     int

	failSaveExceptionOn map[string]bool
	failCreateBlockOn   map[string]bool
}

func newFakeStore(rules ...models.WorkRule) *fakeStore {
	return &fakeStore{
		rules:               rules,
		exceptions:          make(map[string]models.ScheduleException),
		blocks:              make(map[string]models.ScheduleBlock),
		failSaveExceptionOn: make(map[string]bool),
		failCreateBlockOn:   make(map[string]bool),
	}
}

func (s *fakeStore) GetRules(ctx context.Context, employeeID string) ([]models.WorkRule, error) {
	out := make([]models.WorkRule, len(s.rules))
	copy(out, s.rules)
	return out, nil
}

func (s *fakeStore) SaveRules(ctx context.Context, employeeID string, rules []models.WorkRule) error {
	s.rules = make([]models.WorkRule, len(rules))
	copy(s.rules, rules)
	return nil
}

func (s *fakeStore) GetExceptions(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleException, error) {
	var out []models.ScheduleException
	for _, exception := range s.exceptions {
		if !exception.Date.Before(from) && !exception.Date.After(to) {
			out = append(out, exception)
		}
	}
	return out, nil
}

func (s *fakeStore) SaveException(ctx context.Context, exception models.ScheduleException) error {
	if s.failSaveExceptionOn[exception.Date.String()] {
		return fmt.Errorf("store unavailable")
	}
	s.exceptions[exception.Date.String()] = exception
	return nil
}

func (s *fakeStore) DeleteException(ctx context.Context, employeeID string, date caldate.Date) error {
	delete(s.exceptions, date.String())
	return nil
}

func (s *fakeStore) GetBlocks(ctx context.Context, employeeID string, from, to caldate.Date) ([]models.ScheduleBlock, error) {
	var out []models.ScheduleBlock
	for _, block := range s.blocks {
		if !block.Date.Before(from) && !block.Date.After(to) {
			out = append(out, block)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateBlock(ctx context.Context, block models.ScheduleBlock) (*models.ScheduleBlock, error) {
	if s.failCreateBlockOn[block.Date.String()] {
		return nil, fmt.Errorf("store unavailable")
	}
	s.nextID++
	block.ID = fmt.Sprintf("blk-%d", s.nextID)
	s.blocks[block.ID] = block
	return &block, nil
}

func (s *fakeStore) DeleteBlock(ctx context.Context, blockID string) error {
	delete(s.blocks, blockID)
	return nil
}

type fakeRedis struct {
	store           map[string]string
	deletedPrefixes []string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (r *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.store[key] = string(payload)
	return nil
}

func (r *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	return r.store[key], nil
}

func (r *fakeRedis) Delete(ctx context.Context, key string) error {
	delete(r.store, key)
	return nil
}

func (r *fakeRedis) DeleteByPrefix(ctx context.Context, prefix string) error {
	r.deletedPrefixes = append(r.deletedPrefixes, prefix)
	for key := range r.store {
		if strings.HasPrefix(key, prefix) {
			delete(r.store, key)
		}
	}
	return nil
}

type fakeAudit struct {
	audits    []models.ScheduleAudit
	lastLimit int64
}

func (a *fakeAudit) CreateScheduleAudit(ctx context.Context, audit *models.ScheduleAudit) error {
	a.audits = append(a.audits, *audit)
	return nil
}

func (a *fakeAudit) FindScheduleAuditsByEmployeeID(ctx context.Context, employeeID string, limit int64) ([]models.ScheduleAudit, error) {
	a.lastLimit = limit
	matched := make([]models.ScheduleAudit, 0)
	for i := len(a.audits) - 1; i >= 0 && int64(len(matched)) < limit; i-- {
		if a.audits[i].EmployeeID == employeeID {
			matched = append(matched, a.audits[i])
		}
	}
	return matched, nil
}

type fakePublisher struct {
	events []contracts.ScheduleUpdatedEvent
}

func (p *fakePublisher) PublishScheduleUpdated(ctx context.Context, event contracts.ScheduleUpdatedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newTestUsecase(store *fakeStore) (*scheduleUsecase, *fakeRedis, *fakeAudit, *fakePublisher) {
	redis := newFakeRedis()
	audit := &fakeAudit{}
	publisher := &fakePublisher{}
	uc := &scheduleUsecase{
		WorkRuleClient:  store,
		ExceptionClient: store,
		BlockClient:     store,
		RedisRepository: redis,
		AuditRepository: audit,
		Publisher:       publisher,
		InternalConfig: &config.InternalConfig{
			App: config.App{ScheduleCacheTTLInMinutes: 5},
		},
		Log: zap.NewNop(),
	}
	return uc, redis, audit, publisher
}

func ownerSession() *models.Session {
	return &models.Session{SessionID: "s1", UserID: "u1", Role: constvars.RoleOwner}
}

func dateOf(value string) caldate.Date {
	date, err := caldate.ParseDate(value)
	if err != nil {
		panic(err)
	}
	return date
}

func templateInput(dates ...caldate.Date) contracts.ApplyTemplateInput {
	return contracts.ApplyTemplateInput{
		Dates:    dates,
		Template: contracts.TimeTemplateInput{StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 20}},
		Breaks: []contracts.BreakInput{
			{StartTime: caldate.Clock{Hour: 13}, EndTime: caldate.Clock{Hour: 14}, Reason: "lunch"},
		},
	}
}

func TestApplyTemplate(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")

	t.Run("writes exception and breaks for every date", func(t *testing.T) {
		store := newFakeStore()
		uc, redis, audit, publisher := newTestUsecase(store)

		outcome, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday, monday.AddDays(1)))

		assert.NoError(t, err)
		assert.Equal(t, []string{"2026-02-16", "2026-02-17"}, outcome.SucceededDates)
		assert.Empty(t, outcome.FailedDates)
		assert.Len(t, store.exceptions, 2)
		assert.Len(t, store.blocks, 2)

		resolved, err := uc.ResolveDay(ctx, "emp-1", monday)
		assert.NoError(t, err)
		assert.True(t, resolved.IsWorkingDay)
		assert.Equal(t, "10:00", resolved.StartTime.String())
		assert.Equal(t, "20:00", resolved.EndTime.String())
		assert.Len(t, resolved.Blocks, 1)
		assert.Equal(t, "lunch", resolved.Blocks[0].Reason)

		assert.Contains(t, redis.deletedPrefixes, "schedule:resolved:emp-1:")
		assert.Len(t, audit.audits, 1)
		assert.Equal(t, models.AuditOperationApplyTemplate, audit.audits[0].Operation)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, []string{"2026-02-16", "2026-02-17"}, publisher.events[0].Dates)
	})

	t.Run("applying twice is idempotent, not additive", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)
		input := templateInput(monday, monday.AddDays(1))

		_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", input)
		assert.NoError(t, err)
		firstResolve, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(1))
		assert.NoError(t, err)

		_, err = uc.ApplyTemplate(ctx, ownerSession(), "emp-1", input)
		assert.NoError(t, err)
		secondResolve, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(1))
		assert.NoError(t, err)

		assert.Len(t, store.exceptions, 2)
		assert.Len(t, store.blocks, 2, "old blocks replaced, not accumulated")
		for i := range firstResolve.Days {
			first := firstResolve.Days[i]
			second := secondResolve.Days[i]
			assert.Equal(t, first.Date, second.Date)
			assert.Equal(t, first.IsWorkingDay, second.IsWorkingDay)
			assert.Equal(t, first.StartTime.String(), second.StartTime.String())
			assert.Equal(t, first.EndTime.String(), second.EndTime.String())
			assert.Len(t, second.Blocks, len(first.Blocks))
		}
	})

	t.Run("one failing date does not block the rest", func(t *testing.T) {
		store := newFakeStore()
		failing := monday.AddDays(2)
		store.failSaveExceptionOn[failing.String()] = true
		uc, _, _, publisher := newTestUsecase(store)

		dates := make([]caldate.Date, 0, 5)
		for i := 0; i < 5; i++ {
			dates = append(dates, monday.AddDays(i))
		}

		outcome, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(dates...))

		assert.NoError(t, err)
		assert.Len(t, outcome.SucceededDates, 4)
		assert.Len(t, outcome.FailedDates, 1)
		assert.Equal(t, failing.String(), outcome.FailedDates[0].Date)
		assert.NotEmpty(t, outcome.FailedDates[0].Reason)

		schedule, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(4))
		assert.NoError(t, err)
		for _, day := range schedule.Days {
			if day.Date.Equal(failing) {
				assert.False(t, day.IsWorkingDay, "the failed date is unchanged")
				continue
			}
			assert.True(t, day.IsWorkingDay)
		}

		assert.Equal(t, outcome.SucceededDates, publisher.events[0].Dates)
	})

	t.Run("retrying just the failed date converges", func(t *testing.T) {
		store := newFakeStore()
		failing := monday.AddDays(1)
		store.failCreateBlockOn[failing.String()] = true
		uc, _, _, _ := newTestUsecase(store)

		outcome, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday, failing))
		assert.NoError(t, err)
		assert.Equal(t, []string{failing.String()}, []string{outcome.FailedDates[0].Date})

		store.failCreateBlockOn[failing.String()] = false
		retry, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(failing))
		assert.NoError(t, err)
		assert.Equal(t, []string{failing.String()}, retry.SucceededDates)
		assert.Len(t, store.blocks, 2)
	})

	t.Run("duplicate and unordered dates are processed once, ascending", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, publisher := newTestUsecase(store)

		later := monday.AddDays(3)
		outcome, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(later, monday, later))

		assert.NoError(t, err)
		assert.Equal(t, []string{monday.String(), later.String()}, outcome.SucceededDates)
		assert.Len(t, store.exceptions, 2)
		assert.Equal(t, outcome.SucceededDates, publisher.events[0].Dates)
	})

	t.Run("master cannot edit another employee", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)
		master := &models.Session{SessionID: "s2", UserID: "u2", Role: constvars.RoleMaster, EmployeeID: "emp-1"}

		_, err := uc.ApplyTemplate(ctx, master, "emp-2", templateInput(monday))

		assert.Error(t, err)
		assert.Empty(t, store.exceptions, "no write reaches the store")
	})

	t.Run("empty date selection is rejected before any write", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput())

		assert.Error(t, err)
	})

	t.Run("invalid templates are rejected before any write", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		invalid := []contracts.ApplyTemplateInput{
			{
				Dates:    []caldate.Date{monday},
				Template: contracts.TimeTemplateInput{StartTime: caldate.Clock{Hour: 20}, EndTime: caldate.Clock{Hour: 10}},
			},
			{
				Dates:    []caldate.Date{monday},
				Template: contracts.TimeTemplateInput{StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 20}},
				Breaks: []contracts.BreakInput{
					{StartTime: caldate.Clock{Hour: 14}, EndTime: caldate.Clock{Hour: 13}},
				},
			},
			{
				Dates:    []caldate.Date{monday},
				Template: contracts.TimeTemplateInput{StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 20}},
				Breaks: []contracts.BreakInput{
					{StartTime: caldate.Clock{Hour: 12}, EndTime: caldate.Clock{Hour: 14}},
					{StartTime: caldate.Clock{Hour: 13}, EndTime: caldate.Clock{Hour: 15}},
				},
			},
			{
				Dates:    []caldate.Date{monday},
				Template: contracts.TimeTemplateInput{StartTime: caldate.Clock{Hour: 10}, EndTime: caldate.Clock{Hour: 20}},
				Breaks: []contracts.BreakInput{
					{StartTime: caldate.Clock{Hour: 20}, EndTime: caldate.Clock{Hour: 21}},
				},
			},
		}

		for i, input := range invalid {
			_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", input)
			assert.Error(t, err, "case %d", i)
		}
		assert.Empty(t, store.exceptions)
	})
}

func TestMakeDaysOff(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")
	mondayRule := models.WorkRule{
		EmployeeID:   "emp-1",
		DayOfWeek:    time.Monday,
		IsWorkingDay: true,
		StartTime:    clockOf(10, 0),
		EndTime:      clockOf(20, 0),
	}

	t.Run("reverts one Monday without touching the next", func(t *testing.T) {
		store := newFakeStore(mondayRule)
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday))
		assert.NoError(t, err)

		outcome, err := uc.MakeDaysOff(ctx, ownerSession(), "emp-1", []caldate.Date{monday})
		assert.NoError(t, err)
		assert.Equal(t, []string{monday.String()}, outcome.SucceededDates)
		assert.Empty(t, store.exceptions)
		assert.Empty(t, store.blocks)

		// With no exception left the weekday rule is back in charge, so a
		// second Monday keeps its 10:00-20:00 hours while this one stays off
		// only if the rule says so. Here the rule says working, so reverting
		// means back to the rule, not forced off.
		resolved, err := uc.ResolveDay(ctx, "emp-1", monday)
		assert.NoError(t, err)
		assert.True(t, resolved.IsWorkingDay)
		assert.Equal(t, "10:00", resolved.StartTime.String())
	})

	t.Run("a date with no rule reverts to non-working", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday))
		assert.NoError(t, err)

		_, err = uc.MakeDaysOff(ctx, ownerSession(), "emp-1", []caldate.Date{monday})
		assert.NoError(t, err)

		resolved, err := uc.ResolveDay(ctx, "emp-1", monday)
		assert.NoError(t, err)
		assert.False(t, resolved.IsWorkingDay)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := newFakeStore(mondayRule)
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.MakeDaysOff(ctx, ownerSession(), "emp-1", []caldate.Date{monday})
		assert.NoError(t, err)
		outcome, err := uc.MakeDaysOff(ctx, ownerSession(), "emp-1", []caldate.Date{monday})
		assert.NoError(t, err)
		assert.Equal(t, []string{monday.String()}, outcome.SucceededDates)
	})
}

func TestSetDay(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")

	t.Run("upserts a single-date exception and returns the fresh resolve", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, publisher := newTestUsecase(store)

		start := caldate.Clock{Hour: 12}
		end := caldate.Clock{Hour: 18}
		resolved, err := uc.SetDay(ctx, ownerSession(), "emp-1", monday, contracts.DayEditInput{
			IsWorkingDay: true,
			StartTime:    &start,
			EndTime:      &end,
		})

		assert.NoError(t, err)
		assert.True(t, resolved.IsWorkingDay)
		assert.True(t, resolved.SourceIsException)
		assert.Equal(t, "12:00", resolved.StartTime.String())
		assert.Len(t, store.exceptions, 1)
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, models.AuditOperationSetDay, publisher.events[0].Operation)
	})

	t.Run("marks a single date off via exception", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		resolved, err := uc.SetDay(ctx, ownerSession(), "emp-1", monday, contracts.DayEditInput{IsWorkingDay: false})

		assert.NoError(t, err)
		assert.False(t, resolved.IsWorkingDay)
		assert.True(t, resolved.SourceIsException)
	})

	t.Run("rejects a working day without times", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.SetDay(ctx, ownerSession(), "emp-1", monday, contracts.DayEditInput{IsWorkingDay: true})

		assert.Error(t, err)
		assert.Empty(t, store.exceptions)
	})
}

func TestReplaceWeeklyRule(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the matching weekday and keeps the rest", func(t *testing.T) {
		store := newFakeStore(
			models.WorkRule{ID: "r-mon", EmployeeID: "emp-1", DayOfWeek: time.Monday, IsWorkingDay: true, StartTime: clockOf(10, 0), EndTime: clockOf(20, 0)},
			models.WorkRule{ID: "r-tue", EmployeeID: "emp-1", DayOfWeek: time.Tuesday, IsWorkingDay: true, StartTime: clockOf(10, 0), EndTime: clockOf(20, 0)},
		)
		uc, _, _, publisher := newTestUsecase(store)

		start := caldate.Clock{Hour: 9}
		end := caldate.Clock{Hour: 17}
		err := uc.ReplaceWeeklyRule(ctx, ownerSession(), "emp-1", time.Tuesday, contracts.DayEditInput{
			IsWorkingDay: true,
			StartTime:    &start,
			EndTime:      &end,
		})

		assert.NoError(t, err)
		assert.Len(t, store.rules, 2)
		for _, rule := range store.rules {
			if rule.DayOfWeek == time.Tuesday {
				assert.Equal(t, "r-tue", rule.ID, "replacement keeps the stored rule ID")
				assert.Equal(t, "09:00", rule.StartTime.String())
				assert.Equal(t, "17:00", rule.EndTime.String())
			} else {
				assert.Equal(t, "10:00", rule.StartTime.String())
			}
		}
		assert.Len(t, publisher.events, 1)
		assert.Equal(t, models.AuditOperationReplaceWeeklyRule, publisher.events[0].Operation)
	})

	t.Run("inserts a rule for a weekday that had none", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		err := uc.ReplaceWeeklyRule(ctx, ownerSession(), "emp-1", time.Sunday, contracts.DayEditInput{IsWorkingDay: false})

		assert.NoError(t, err)
		assert.Len(t, store.rules, 1)
		assert.Equal(t, time.Sunday, store.rules[0].DayOfWeek)
		assert.False(t, store.rules[0].IsWorkingDay)
	})

	t.Run("affects every week thereafter", func(t *testing.T) {
		store := newFakeStore(
			models.WorkRule{EmployeeID: "emp-1", DayOfWeek: time.Monday, IsWorkingDay: true, StartTime: clockOf(10, 0), EndTime: clockOf(20, 0)},
		)
		uc, _, _, _ := newTestUsecase(store)

		err := uc.ReplaceWeeklyRule(ctx, ownerSession(), "emp-1", time.Monday, contracts.DayEditInput{IsWorkingDay: false})
		assert.NoError(t, err)

		monday := dateOf("2026-02-16")
		for week := 0; week < 3; week++ {
			resolved, err := uc.ResolveDay(ctx, "emp-1", monday.AddDays(7*week))
			assert.NoError(t, err)
			assert.False(t, resolved.IsWorkingDay)
		}
	})
}

func TestAuditHistory(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")

	t.Run("returns the recorded batch edits for the employee", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		_, err := uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday))
		assert.NoError(t, err)
		_, err = uc.MakeDaysOff(ctx, ownerSession(), "emp-2", []caldate.Date{monday})
		assert.NoError(t, err)

		audits, err := uc.AuditHistory(ctx, "emp-1", 10)
		assert.NoError(t, err)
		assert.Len(t, audits, 1)
		assert.Equal(t, "emp-1", audits[0].EmployeeID)
		assert.Equal(t, models.AuditOperationApplyTemplate, audits[0].Operation)
	})

	t.Run("zero and oversized limits fall back to the default", func(t *testing.T) {
		store := newFakeStore()
		uc, _, auditRepo, _ := newTestUsecase(store)

		_, err := uc.AuditHistory(ctx, "emp-1", 0)
		assert.NoError(t, err)
		assert.Equal(t, defaultAuditHistoryLimit, auditRepo.lastLimit)

		_, err = uc.AuditHistory(ctx, "emp-1", 10_000)
		assert.NoError(t, err)
		assert.Equal(t, defaultAuditHistoryLimit, auditRepo.lastLimit)
	})

	t.Run("an employee with no edits gets an empty, non-nil history", func(t *testing.T) {
		store := newFakeStore()
		uc, _, _, _ := newTestUsecase(store)

		audits, err := uc.AuditHistory(ctx, "emp-9", 10)
		assert.NoError(t, err)
		assert.NotNil(t, audits)
		assert.Empty(t, audits)
	})
}

func TestResolveRangeCaching(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")

	t.Run("second read is served from cache", func(t *testing.T) {
		store := newFakeStore()
		uc, redis, _, _ := newTestUsecase(store)

		first, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(6))
		assert.NoError(t, err)
		assert.Len(t, redis.store, 1)

		// Mutate the store behind the cache; the cached view must win until
		// a write invalidates it.
		store.exceptions[monday.String()] = models.ScheduleException{Date: monday, IsWorkingDay: true, StartTime: clockOf(8, 0), EndTime: clockOf(12, 0)}

		second, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(6))
		assert.NoError(t, err)
		assert.Equal(t, first.Days[0].IsWorkingDay, second.Days[0].IsWorkingDay)
		assert.False(t, second.Days[0].IsWorkingDay)
	})

	t.Run("a write invalidates the cached range", func(t *testing.T) {
		store := newFakeStore()
		uc, redis, _, _ := newTestUsecase(store)

		_, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(6))
		assert.NoError(t, err)
		assert.Len(t, redis.store, 1)

		_, err = uc.ApplyTemplate(ctx, ownerSession(), "emp-1", templateInput(monday))
		assert.NoError(t, err)
		assert.Empty(t, redis.store, "cache cleared by the batch write")

		refreshed, err := uc.ResolveRange(ctx, "emp-1", monday, monday.AddDays(6))
		assert.NoError(t, err)
		assert.True(t, refreshed.Days[0].IsWorkingDay)
	})
}

func TestBuildGrid(t *testing.T) {
	ctx := context.Background()
	monday := dateOf("2026-02-16")

	store := newFakeStore(models.WorkRule{
		EmployeeID:   "emp-1",
		DayOfWeek:    time.Monday,
		IsWorkingDay: true,
		StartTime:    clockOf(10, 0),
		EndTime:      clockOf(20, 0),
	})
	uc, _, _, _ := newTestUsecase(store)

	layout, err := uc.BuildGrid(ctx, "emp-1", contracts.BuildGridInput{
		Date: monday,
		Events: []contracts.GridEventInput{{
			ID:        "appt-1",
			StartTime: caldate.Clock{Hour: 10},
			EndTime:   caldate.Clock{Hour: 11, Minute: 30},
		}},
		StartHour:  9,
		EndHour:    23,
		SlotHeight: 80,
	})

	assert.NoError(t, err)
	assert.True(t, layout.IsWorkingDay)
	assert.Len(t, layout.Placements, 1)
	assert.InDelta(t, 80.0, layout.Placements[0].TopOffset, 1e-9)
	assert.InDelta(t, 118.0, layout.Placements[0].Height, 1e-9, "default padding of 2 applies")
}
