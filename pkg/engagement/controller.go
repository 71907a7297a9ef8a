// Package engagement toggles likes and scraps optimistically: the local
// state flips immediately and is reconciled with the server's answer, or
// restored exactly if the request fails.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/neighborbank/cli/pkg/api"
	"github.com/neighborbank/cli/pkg/content"
	clierrors "github.com/neighborbank/cli/pkg/errors"
	"github.com/neighborbank/cli/pkg/logger"
	"github.com/neighborbank/cli/pkg/session"
)

// ErrClosed is returned for results that arrive after Close.
var ErrClosed = errors.New("engagement controller closed")

// Engagement is the kind of toggle.
type Engagement string

const (
	Like  Engagement = "like"
	Scrap Engagement = "scrap"
)

// Target identifies a piece of content.
type Target struct {
	Kind content.Kind
	ID   int64
}

// Key identifies one toggle. Like and scrap of the same target are independent.
type Key struct {
	Target     Target
	Engagement Engagement
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s:%d", k.Engagement, k.Target.Kind, k.Target.ID)
}

// State is the engagement state of one key. Count is only meaningful for likes.
type State struct {
	Active  bool
	Count   int
	Pending bool
}

// Phase is a step of the toggle state machine.
type Phase string

const (
	PhasePending    Phase = "pending"
	PhaseConfirmed  Phase = "confirmed"
	PhaseRolledBack Phase = "rolled_back"
)

// Observer is told about every transition of every key.
type Observer func(key Key, phase Phase, state State)

// API is the subset of the REST client the controller needs.
type API interface {
	LikePost(ctx context.Context, req api.LikePostRequest) (int, error)
	ScrapQuestion(ctx context.Context, req api.ScrapQuestionRequest) error
	ScrapPost(ctx context.Context, req api.ScrapPostRequest) error
	IsQuestionScrapped(ctx context.Context, customerID, questionID int64) (bool, error)
	IsPostScrapped(ctx context.Context, customerID, postID int64) (bool, error)
}

// Controller owns the engagement state of one detail view for one session.
type Controller struct {
	mu       sync.Mutex
	api      API
	session  session.Session
	states   map[Key]State
	observer Observer
	closed   bool
}

// Option configures a Controller
type Option func(*Controller)

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// NewController creates a controller acting as sess.
func NewController(a API, sess session.Session, opts ...Option) *Controller {
	c := &Controller{
		api:     a,
		session: sess,
		states:  make(map[Key]State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state of key.
func (c *Controller) State(key Key) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[key]
}

// Load seeds the like count from the detail record and, for a signed-in
// customer, the scrap flag from the server.
func (c *Controller) Load(ctx context.Context, target Target, likeCount int) error {
	if likeCount < 0 {
		likeCount = 0
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	likeKey := Key{Target: target, Engagement: Like}
	st := c.states[likeKey]
	st.Count = likeCount
	c.states[likeKey] = st
	c.mu.Unlock()

	if !c.session.IsCustomer() {
		return nil
	}

	scrapped, err := c.isScrapped(ctx, target)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	scrapKey := Key{Target: target, Engagement: Scrap}
	if st := c.states[scrapKey]; !st.Pending {
		st.Active = scrapped
		c.states[scrapKey] = st
	}
	return nil
}

// Toggle flips key optimistically, sends the request and settles on the
// server's answer. On failure the state before the call is restored.
func (c *Controller) Toggle(ctx context.Context, key Key) (State, error) {
	if err := c.authorize(key); err != nil {
		return c.State(key), err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return State{}, ErrClosed
	}
	before := c.states[key]
	if before.Pending {
		c.mu.Unlock()
		return before, clierrors.ConcurrentToggleError(key.String())
	}

	optimistic := before
	optimistic.Active = !before.Active
	optimistic.Pending = true
	if key.Engagement == Like {
		if optimistic.Active {
			optimistic.Count++
		} else if optimistic.Count > 0 {
			optimistic.Count--
		}
	}
	c.states[key] = optimistic
	c.mu.Unlock()
	c.notify(key, PhasePending, optimistic)

	confirmed, err := c.send(ctx, key, before, optimistic)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		logger.Debug("Dropping toggle result after close", "key", key.String())
		return State{}, ErrClosed
	}

	if err != nil {
		c.states[key] = before
		c.mu.Unlock()
		logger.Warn("Toggle failed, rolled back", "key", key.String(), "error", err)
		c.notify(key, PhaseRolledBack, before)
		return before, clierrors.ToggleRequestFailed(key.String(), err)
	}

	confirmed.Pending = false
	c.states[key] = confirmed
	c.mu.Unlock()
	c.notify(key, PhaseConfirmed, confirmed)
	return confirmed, nil
}

// Close drops every result that arrives afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Controller) authorize(key Key) error {
	switch key.Engagement {
	case Like:
		if err := c.session.Require("like posts"); err != nil {
			return err
		}
		if key.Target.Kind != content.KindCommunity {
			return clierrors.ValidationError("target", "only community posts can be liked")
		}
	case Scrap:
		if err := c.session.RequireCustomer("scrap content"); err != nil {
			return err
		}
	default:
		return clierrors.ValidationError("engagement", fmt.Sprintf("unknown engagement %q", key.Engagement))
	}
	switch key.Target.Kind {
	case content.KindQuestion, content.KindCommunity:
		return nil
	default:
		return clierrors.ValidationError("target", fmt.Sprintf("unknown content kind %q", key.Target.Kind))
	}
}

// send performs the request and returns the authoritative state. A like
// count that moved tells which way the server toggled; an unchanged count
// keeps the optimistic flag.
func (c *Controller) send(ctx context.Context, key Key, before, optimistic State) (State, error) {
	userID := c.session.UserID
	target := key.Target

	if key.Engagement == Like {
		count, err := c.api.LikePost(ctx, api.LikePostRequest{PostID: target.ID, CustomerID: userID})
		if err != nil {
			return State{}, err
		}
		st := optimistic
		st.Count = count
		if count != before.Count {
			st.Active = count > before.Count
		}
		return st, nil
	}

	var err error
	if target.Kind == content.KindQuestion {
		err = c.api.ScrapQuestion(ctx, api.ScrapQuestionRequest{QuestionID: target.ID, CustomerID: userID})
	} else {
		err = c.api.ScrapPost(ctx, api.ScrapPostRequest{PostID: target.ID, CustomerID: userID})
	}
	if err != nil {
		return State{}, err
	}

	st := optimistic
	scrapped, checkErr := c.isScrapped(ctx, target)
	if checkErr != nil {
		logger.Warn("Could not confirm scrap state, keeping local value", "key", key.String(), "error", checkErr)
		return st, nil
	}
	st.Active = scrapped
	return st, nil
}

func (c *Controller) isScrapped(ctx context.Context, target Target) (bool, error) {
	if target.Kind == content.KindQuestion {
		return c.api.IsQuestionScrapped(ctx, c.session.UserID, target.ID)
	}
	return c.api.IsPostScrapped(ctx, c.session.UserID, target.ID)
}

func (c *Controller) notify(key Key, phase Phase, st State) {
	if c.observer != nil {
		c.observer(key, phase, st)
	}
}
