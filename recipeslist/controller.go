package recipeslist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"fetchrecipes/networking"
	"fetchrecipes/store"
	"fetchrecipes/types"
)

// Fetcher runs one recipe request
type Fetcher interface {
	Fetch(ctx context.Context, rt networking.RequestType) networking.Result
}

// Controller owns a recipe list store and turns reload actions into fetches.
// Each fetch runs on its own goroutine. Completions are applied in the order
// they finish, so the last one to complete wins.
type Controller struct {
	store   *store.Store[ListState, Action]
	fetcher Fetcher
	log     *slog.Logger

	seed        []types.RecipeView
	initialLoad bool
	maxLogs     int
	now         func() time.Time

	mu        sync.Mutex
	started   bool
	closed    bool
	ctx       context.Context
	cancel    context.CancelFunc
	actionSub *store.Subscription
	wg        sync.WaitGroup
}

// Option configures a Controller
type Option func(*Controller)

// WithSeed sets the recipes shown by Start before any fetch completes
func WithSeed(recipes []types.RecipeView) Option {
	return func(c *Controller) { c.seed = recipes }
}

// WithInitialLoad makes Start dispatch an AllRecipes reload
func WithInitialLoad(enabled bool) Option {
	return func(c *Controller) { c.initialLoad = enabled }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.log = logger }
}

// WithMaxLogs caps the activity log kept in state
func WithMaxLogs(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxLogs = n
		}
	}
}

// WithClock overrides time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New creates an idle controller with its own store
func New(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		maxLogs: 50,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	c.log = c.log.With("component", "recipeslist")
	c.store = store.New[ListState, Action](ListState{
		Phase:   PhaseIdle,
		Recipes: []types.RecipeView{},
	})
	return c
}

// Start seeds the list and begins handling reload actions.
// Fetches run under a context derived from ctx.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New("controller is closed")
	}
	if c.started {
		c.mu.Unlock()
		return errors.New("controller already started")
	}
	c.started = true
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	seed := append([]types.RecipeView{}, c.seed...)
	c.store.Update(func(s ListState) ListState {
		s.Recipes = seed
		s.UpdatedAt = c.now()
		return s.withLog(c.now(), fmt.Sprintf("Seeded %d recipes", len(seed)), c.maxLogs)
	})

	sub := c.store.SubscribeActions(c.handleAction)
	c.mu.Lock()
	c.actionSub = sub
	c.mu.Unlock()

	c.log.Info("recipe list started", "seed", len(seed), "initial_load", c.initialLoad)

	if c.initialLoad {
		if _, err := c.Dispatch(networking.AllRecipes); err != nil {
			c.log.Warn("initial load not dispatched", "error", err)
		}
	}
	return nil
}

// ErrNotRunning is returned by Dispatch before Start or after Close
var ErrNotRunning = errors.New("recipe list is not running")

// Dispatch sends a reload action and returns its id. It never blocks on the fetch.
func (c *Controller) Dispatch(rt networking.RequestType) (string, error) {
	c.mu.Lock()
	running := c.started && !c.closed
	c.mu.Unlock()
	if !running {
		return "", ErrNotRunning
	}

	id := uuid.NewString()
	c.store.Send(Action{ID: id, Type: rt})
	return id, nil
}

// ObserveState registers fn for every state change, starting with the current state
func (c *Controller) ObserveState(fn func(ListState)) *store.Subscription {
	return c.store.Subscribe(fn)
}

// State returns the current snapshot
func (c *Controller) State() ListState {
	return c.store.State()
}

// Wait blocks until every in-flight fetch has been applied
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight fetches, waits for them and drops every observer
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cancel := c.cancel
	sub := c.actionSub
	c.mu.Unlock()

	sub.Cancel()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	c.store.Close()
	c.log.Info("recipe list closed")
}

func (c *Controller) handleAction(a Action) {
	c.mu.Lock()
	if c.closed || !c.started {
		c.mu.Unlock()
		return
	}
	c.wg.Add(1)
	ctx := c.ctx
	c.mu.Unlock()

	c.store.Update(func(s ListState) ListState {
		s.Phase = PhaseLoading
		s.InFlight++
		s.RequestID = a.ID
		s.RequestType = a.Type
		return s.withLog(c.now(), fmt.Sprintf("Loading %s", a.Type), c.maxLogs)
	})
	c.log.Debug("reload dispatched", "request_id", a.ID, "request_type", string(a.Type))

	go func() {
		defer c.wg.Done()
		result := c.fetcher.Fetch(ctx, a.Type)
		c.apply(a, result)
	}()
}

func (c *Controller) apply(a Action, result networking.Result) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	c.store.Update(func(s ListState) ListState {
		now := c.now()
		if s.InFlight > 0 {
			s.InFlight--
		}
		s.UpdatedAt = now

		switch {
		case !result.OK():
			s.Phase = PhaseErrored
			s.LastError = result.Err()
			return s.withLog(now, fmt.Sprintf("Error loading %s: %v", a.Type, result.Err()), c.maxLogs)
		case len(result.Recipes()) == 0:
			s.Phase = PhaseErrored
			s.Recipes = []types.RecipeView{}
			s.LastError = networking.NewFetchError(networking.KindEmptyPayload, nil)
			return s.withLog(now, fmt.Sprintf("No recipes in %s", a.Type), c.maxLogs)
		default:
			s.Phase = PhaseLoaded
			s.Recipes = result.Recipes()
			s.LastError = nil
			s.ScrollToTop = !s.ScrollToTop
			return s.withLog(now, fmt.Sprintf("Loaded %d recipes from %s", len(result.Recipes()), a.Type), c.maxLogs)
		}
	})

	if result.OK() {
		c.log.Info("reload applied", "request_id", a.ID, "request_type", string(a.Type), "count", len(result.Recipes()))
	} else {
		c.log.Warn("reload failed", "request_id", a.ID, "request_type", string(a.Type), "error", result.Err())
	}
}
