// Package session drives an authenticated Open API session: it owns the
// connection state machine (disconnected, connecting, connected, app
// authenticated, account authenticated, closing) and exposes one typed
// method per Open API operation.
package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/paxelcool/ctrader-open-api-async/client"
	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/endpoints"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
)

// conn is the transport client surface the session drives.
type conn interface {
	Connect(ctx context.Context) error
	Send(ctx context.Context, msg openapi.Message) (*openapi.ProtoMessage, error)
	Connected() bool
	Close() error
}

// Option configures a Session.
type Option func(*options) error

type options struct {
	logger        zerolog.Logger
	onState       func(from, to State)
	onEvent       func(msg openapi.Message, env *openapi.ProtoMessage)
	clientOptions []client.Option
}

// WithLogger sets the structured logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *options) error {
		cfg.logger = l
		return nil
	}
}

// WithOnStateChange registers a callback for every state transition.
func WithOnStateChange(fn func(from, to State)) Option {
	return func(cfg *options) error {
		cfg.onState = fn
		return nil
	}
}

// WithOnEvent registers a callback for uncorrelated server messages, invoked
// in wire order.
func WithOnEvent(fn func(msg openapi.Message, env *openapi.ProtoMessage)) Option {
	return func(cfg *options) error {
		cfg.onEvent = fn
		return nil
	}
}

// WithClientOptions forwards options to the underlying connection client.
func WithClientOptions(opts ...client.Option) Option {
	return func(cfg *options) error {
		cfg.clientOptions = append(cfg.clientOptions, opts...)
		return nil
	}
}

// Session is one application's authenticated connection to a proxy.
//
// All methods are safe for concurrent use. Like the connection it wraps, a
// Session is single-shot: after Close or a connection loss, build a new one.
type Session struct {
	clientID     string
	clientSecret string
	log          zerolog.Logger
	onState      func(from, to State)

	cl conn

	state     atomic.Int32
	accountID atomic.Int64

	symbolsMu   sync.RWMutex
	symbols     map[string]*openapi.LightSymbol // keyed by symbol name
	symbolsByID map[int64]*openapi.LightSymbol

	handlersMu sync.RWMutex
	handlerSeq int
	handlers   map[openapi.PayloadType]map[int]Handler
	onEvent    func(msg openapi.Message, env *openapi.ProtoMessage)
}

// Handler receives decoded server messages of one payload type, in wire order.
type Handler func(msg openapi.Message, env *openapi.ProtoMessage)

// New builds a session against the host type ("demo" or "live").
func New(hostType, clientID, clientSecret string, opts ...Option) (*Session, error) {
	cfg := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, cterrors.Wrap(cterrors.StageValidate, cterrors.CodeInvalidOption, err)
		}
	}
	if clientID == "" || clientSecret == "" {
		return nil, cterrors.Wrap(cterrors.StageValidate, cterrors.CodeMissingCredentials,
			fmt.Errorf("client id and secret are required"))
	}

	s := &Session{
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          cfg.logger.With().Str("component", "session").Logger(),
		onState:      cfg.onState,
		symbols:      make(map[string]*openapi.LightSymbol),
		symbolsByID:  make(map[int64]*openapi.LightSymbol),
		handlers:     make(map[openapi.PayloadType]map[int]Handler),
		onEvent:      cfg.onEvent,
	}

	clOpts := append([]client.Option{
		client.WithLogger(cfg.logger),
		client.WithOnMessage(s.dispatchEvent),
		client.WithOnDisconnect(func(err error) {
			s.setState(StateDisconnected)
			s.log.Debug().Err(err).Msg("session disconnected")
		}),
	}, cfg.clientOptions...)

	cl, err := client.New(endpoints.HostFor(hostType), clOpts...)
	if err != nil {
		return nil, err
	}
	s.cl = cl
	return s, nil
}

// newWithConn wires a session to an existing connection, for tests.
func newWithConn(cl conn, clientID, clientSecret string) *Session {
	return &Session{
		clientID:     clientID,
		clientSecret: clientSecret,
		log:          zerolog.Nop(),
		cl:           cl,
		symbols:      make(map[string]*openapi.LightSymbol),
		symbolsByID:  make(map[int64]*openapi.LightSymbol),
		handlers:     make(map[openapi.PayloadType]map[int]Handler),
	}
}

// AddHandler registers a handler for one payload type and returns a token for
// RemoveHandler. Handlers for the same type run in registration order.
func (s *Session) AddHandler(pt openapi.PayloadType, fn Handler) int {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	s.handlerSeq++
	id := s.handlerSeq
	m := s.handlers[pt]
	if m == nil {
		m = make(map[int]Handler)
		s.handlers[pt] = m
	}
	m[id] = fn
	return id
}

// RemoveHandler drops a handler registered with AddHandler.
func (s *Session) RemoveHandler(pt openapi.PayloadType, id int) {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()
	delete(s.handlers[pt], id)
}

// dispatchEvent fans a server message out to the generic callback, then to the
// payload-type handlers, preserving wire order.
func (s *Session) dispatchEvent(msg openapi.Message, env *openapi.ProtoMessage) {
	if s.onEvent != nil {
		s.onEvent(msg, env)
	}
	s.handlersMu.RLock()
	m := s.handlers[env.PayloadType]
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]Handler, 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m[id])
	}
	s.handlersMu.RUnlock()
	for _, fn := range fns {
		fn(msg, env)
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// AccountID returns the authenticated trading account, or 0.
func (s *Session) AccountID() int64 { return s.accountID.Load() }

func (s *Session) setState(to State) {
	from := State(s.state.Swap(int32(to)))
	if from == to {
		return
	}
	s.log.Debug().Str("from", from.String()).Str("to", to.String()).Msg("state change")
	if s.onState != nil {
		s.onState(from, to)
	}
}

// Connect dials the proxy and authenticates the application. On success the
// session is in StateAppAuthenticated; chain AuthenticateAccount to bind a
// trading account.
func (s *Session) Connect(ctx context.Context) error {
	s.setState(StateConnecting)
	if err := s.cl.Connect(ctx); err != nil {
		s.setState(StateDisconnected)
		return err
	}
	s.setState(StateConnected)

	resp, err := s.roundTrip(ctx, &openapi.ApplicationAuthReq{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
	})
	if err != nil {
		return remapCode(err, cterrors.CodeServerError, cterrors.CodeAppAuthFailed)
	}
	if _, ok := resp.(*openapi.ApplicationAuthRes); !ok {
		return cterrors.Wrap(cterrors.StageAuth, cterrors.CodeAppAuthFailed,
			fmt.Errorf("unexpected response %T", resp))
	}
	s.setState(StateAppAuthenticated)
	s.log.Info().Msg("application authenticated")
	return nil
}

// AuthenticateAccount binds a trading account to the session with an OAuth
// access token.
func (s *Session) AuthenticateAccount(ctx context.Context, accountID int64, accessToken string) error {
	if st := s.State(); st != StateAppAuthenticated && st != StateAccountAuthenticated {
		return cterrors.Wrap(cterrors.StageAuth, cterrors.CodeNotConnected,
			fmt.Errorf("account auth in state %s", st))
	}
	resp, err := s.roundTrip(ctx, &openapi.AccountAuthReq{
		CtidTraderAccountID: accountID,
		AccessToken:         accessToken,
	})
	if err != nil {
		return remapCode(err, cterrors.CodeServerError, cterrors.CodeAccountAuthFailed)
	}
	res, ok := resp.(*openapi.AccountAuthRes)
	if !ok {
		return cterrors.Wrap(cterrors.StageAuth, cterrors.CodeAccountAuthFailed,
			fmt.Errorf("unexpected response %T", resp))
	}
	s.accountID.Store(res.CtidTraderAccountID)
	s.setState(StateAccountAuthenticated)
	s.log.Info().Int64("account_id", res.CtidTraderAccountID).Msg("account authenticated")
	return nil
}

// Close tears the session down.
func (s *Session) Close() error {
	s.setState(StateClosing)
	err := s.cl.Close()
	s.setState(StateDisconnected)
	return err
}

// roundTrip sends a request and extracts the inner response, mapping server
// error payloads to structured errors.
func (s *Session) roundTrip(ctx context.Context, req openapi.Message) (openapi.Message, error) {
	env, err := s.cl.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	msg, err := openapi.Extract(env)
	if err != nil {
		code := cterrors.CodeMalformedPayload
		if errors.Is(err, openapi.ErrUnknownPayloadType) {
			code = cterrors.CodeUnknownPayloadType
		}
		return nil, cterrors.Wrap(cterrors.StageCodec, code, err)
	}
	switch e := msg.(type) {
	case *openapi.ErrorRes:
		return nil, cterrors.Wrap(cterrors.StageSend, cterrors.CodeServerError,
			fmt.Errorf("%s: %s", e.ErrorCode, e.Description))
	case *openapi.OAErrorRes:
		return nil, cterrors.Wrap(cterrors.StageSend, cterrors.CodeServerError,
			fmt.Errorf("%s: %s", e.ErrorCode, e.Description))
	}
	return msg, nil
}

// requireAccount guards account-scoped operations.
func (s *Session) requireAccount() error {
	if s.State() != StateAccountAuthenticated {
		return cterrors.Wrap(cterrors.StageSend, cterrors.CodeAccountNotAuthenticated,
			fmt.Errorf("state %s", s.State()))
	}
	return nil
}

// remapCode rewrites the code of a structured error, leaving other errors alone.
func remapCode(err error, from, to cterrors.Code) error {
	var ce *cterrors.Error
	if errors.As(err, &ce) && ce.Code == from {
		return &cterrors.Error{Stage: cterrors.StageAuth, Code: to, Err: ce.Err}
	}
	return err
}
