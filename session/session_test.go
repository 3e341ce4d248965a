package session

import (
	"context"
	"errors"
	"testing"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
)

// fakeConn scripts the transport: each Send routes through handle, which maps
// a request to the message the server would answer with.
type fakeConn struct {
	handle    func(msg openapi.Message) openapi.Message
	connected bool
	sent      []openapi.Message
}

func (f *fakeConn) Connect(context.Context) error { f.connected = true; return nil }
func (f *fakeConn) Connected() bool               { return f.connected }
func (f *fakeConn) Close() error                  { f.connected = false; return nil }

func (f *fakeConn) Send(_ context.Context, msg openapi.Message) (*openapi.ProtoMessage, error) {
	f.sent = append(f.sent, msg)
	reply := f.handle(msg)
	if reply == nil {
		return nil, errors.New("no scripted reply")
	}
	return openapi.Wrap(reply, "msg-1")
}

func authedSession(t *testing.T, handle func(msg openapi.Message) openapi.Message) (*Session, *fakeConn) {
	t.Helper()
	fc := &fakeConn{handle: func(msg openapi.Message) openapi.Message {
		switch msg.(type) {
		case *openapi.ApplicationAuthReq:
			return &openapi.ApplicationAuthRes{}
		case *openapi.AccountAuthReq:
			return &openapi.AccountAuthRes{CtidTraderAccountID: 777}
		}
		return handle(msg)
	}}
	s := newWithConn(fc, "id", "secret")
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := s.AuthenticateAccount(context.Background(), 777, "token"); err != nil {
		t.Fatalf("account auth: %v", err)
	}
	return s, fc
}

func TestConnectWalksStates(t *testing.T) {
	fc := &fakeConn{handle: func(msg openapi.Message) openapi.Message {
		if _, ok := msg.(*openapi.ApplicationAuthReq); ok {
			return &openapi.ApplicationAuthRes{}
		}
		return nil
	}}
	s := newWithConn(fc, "id", "secret")

	var seen []State
	s.onState = func(_, to State) { seen = append(seen, to) }

	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	want := []State{StateConnecting, StateConnected, StateAppAuthenticated}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transition %d = %s, want %s", i, seen[i], want[i])
		}
	}
	if s.State() != StateAppAuthenticated {
		t.Fatalf("state = %s", s.State())
	}
}

func TestConnectMapsAppAuthFailure(t *testing.T) {
	fc := &fakeConn{handle: func(msg openapi.Message) openapi.Message {
		if _, ok := msg.(*openapi.ApplicationAuthReq); ok {
			return &openapi.ErrorRes{ErrorCode: "CH_CLIENT_AUTH_FAILURE", Description: "bad secret"}
		}
		return nil
	}}
	s := newWithConn(fc, "id", "wrong")
	err := s.Connect(context.Background())
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeAppAuthFailed {
		t.Fatalf("expected app auth failure, got %v", err)
	}
}

func TestAccountAuthRequiresAppAuth(t *testing.T) {
	s := newWithConn(&fakeConn{}, "id", "secret")
	err := s.AuthenticateAccount(context.Background(), 1, "token")
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeNotConnected {
		t.Fatalf("expected not connected, got %v", err)
	}
}

func TestAccountAuthBindsAccount(t *testing.T) {
	s, _ := authedSession(t, func(openapi.Message) openapi.Message { return nil })
	if s.State() != StateAccountAuthenticated {
		t.Fatalf("state = %s", s.State())
	}
	if s.AccountID() != 777 {
		t.Fatalf("account id = %d", s.AccountID())
	}
}

func TestAccountScopedOpBeforeAccountAuth(t *testing.T) {
	fc := &fakeConn{handle: func(msg openapi.Message) openapi.Message {
		if _, ok := msg.(*openapi.ApplicationAuthReq); ok {
			return &openapi.ApplicationAuthRes{}
		}
		return nil
	}}
	s := newWithConn(fc, "id", "secret")
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	_, err := s.SymbolsList(context.Background(), false)
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeAccountNotAuthenticated {
		t.Fatalf("expected account not authenticated, got %v", err)
	}
	if len(fc.sent) != 1 {
		t.Fatalf("request went to the wire before account auth: %v", fc.sent)
	}
}

func TestSymbolsListFillsNameCache(t *testing.T) {
	s, _ := authedSession(t, func(msg openapi.Message) openapi.Message {
		req, ok := msg.(*openapi.SymbolsListReq)
		if !ok {
			return nil
		}
		if req.CtidTraderAccountID != 777 {
			t.Errorf("account id on request = %d", req.CtidTraderAccountID)
		}
		return &openapi.SymbolsListRes{
			CtidTraderAccountID: 777,
			Symbols: []openapi.LightSymbol{
				{SymbolID: 1, SymbolName: "EURUSD", Enabled: true},
				{SymbolID: 2, SymbolName: "GBPUSD", Enabled: true},
			},
		}
	})

	syms, err := s.SymbolsList(context.Background(), false)
	if err != nil {
		t.Fatalf("symbols list: %v", err)
	}
	if len(syms) != 2 {
		t.Fatalf("symbols = %v", syms)
	}
	got := s.SymbolByName("EURUSD")
	if got == nil || got.SymbolID != 1 {
		t.Fatalf("cache lookup = %+v", got)
	}
	if byID := s.SymbolForID(2); byID == nil || byID.SymbolName != "GBPUSD" {
		t.Fatalf("id lookup = %+v", byID)
	}
	if s.SymbolByName("USDJPY") != nil || s.SymbolForID(3) != nil {
		t.Fatalf("unexpected cache hit")
	}
}

func TestHandlersDispatchByPayloadType(t *testing.T) {
	s := newWithConn(&fakeConn{}, "id", "secret")

	var order []string
	s.onEvent = func(openapi.Message, *openapi.ProtoMessage) {
		order = append(order, "generic")
	}
	first := s.AddHandler(openapi.PayloadTypeSpotEvent, func(msg openapi.Message, _ *openapi.ProtoMessage) {
		if _, ok := msg.(*openapi.SpotEvent); !ok {
			t.Errorf("handler got %T", msg)
		}
		order = append(order, "first")
	})
	s.AddHandler(openapi.PayloadTypeSpotEvent, func(openapi.Message, *openapi.ProtoMessage) {
		order = append(order, "second")
	})
	s.AddHandler(openapi.PayloadTypeExecutionEvent, func(openapi.Message, *openapi.ProtoMessage) {
		t.Errorf("handler for another payload type fired")
	})

	spot := &openapi.SpotEvent{SymbolID: 1}
	env, err := openapi.Wrap(spot, "")
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	s.dispatchEvent(spot, env)

	want := []string{"generic", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("dispatch order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", order, want)
		}
	}

	s.RemoveHandler(openapi.PayloadTypeSpotEvent, first)
	order = nil
	s.dispatchEvent(spot, env)
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("dispatch after remove = %v", order)
	}
}

func TestServerErrorSurfacesCode(t *testing.T) {
	s, _ := authedSession(t, func(msg openapi.Message) openapi.Message {
		if _, ok := msg.(*openapi.TraderReq); ok {
			return &openapi.OAErrorRes{ErrorCode: "TRADING_BAD_VOLUME", Description: "nope"}
		}
		return nil
	})
	_, err := s.Trader(context.Background())
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeServerError {
		t.Fatalf("expected server error, got %v", err)
	}
}

func TestMarketOrderCarriesAccountAndSide(t *testing.T) {
	s, _ := authedSession(t, func(msg openapi.Message) openapi.Message {
		req, ok := msg.(*openapi.NewOrderReq)
		if !ok {
			return nil
		}
		if req.CtidTraderAccountID != 777 {
			t.Errorf("account id = %d", req.CtidTraderAccountID)
		}
		if req.OrderType != openapi.OrderTypeMarket || req.TradeSide != openapi.TradeSideSell {
			t.Errorf("order = %+v", req)
		}
		return &openapi.ExecutionEvent{
			CtidTraderAccountID: 777,
			ExecutionType:       openapi.ExecutionTypeOrderAccepted,
		}
	})
	ev, err := s.MarketOrder(context.Background(), 1, openapi.TradeSideSell, 100000)
	if err != nil {
		t.Fatalf("market order: %v", err)
	}
	if ev.ExecutionType != openapi.ExecutionTypeOrderAccepted {
		t.Fatalf("execution type = %v", ev.ExecutionType)
	}
}

func TestLogoutAccountDropsBinding(t *testing.T) {
	s, _ := authedSession(t, func(msg openapi.Message) openapi.Message {
		if _, ok := msg.(*openapi.AccountLogoutReq); ok {
			return &openapi.AccountLogoutRes{CtidTraderAccountID: 777}
		}
		return nil
	})
	if err := s.LogoutAccount(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s.State() != StateAppAuthenticated || s.AccountID() != 0 {
		t.Fatalf("state = %s, account = %d", s.State(), s.AccountID())
	}
}

func TestCloseWalksToDisconnected(t *testing.T) {
	s, fc := authedSession(t, func(openapi.Message) openapi.Message { return nil })
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if s.State() != StateDisconnected {
		t.Fatalf("state = %s", s.State())
	}
	if fc.connected {
		t.Fatalf("underlying connection still open")
	}
}

func TestVersionAllowedBeforeAccountAuth(t *testing.T) {
	fc := &fakeConn{handle: func(msg openapi.Message) openapi.Message {
		switch msg.(type) {
		case *openapi.ApplicationAuthReq:
			return &openapi.ApplicationAuthRes{}
		case *openapi.VersionReq:
			return &openapi.VersionRes{Version: "92"}
		}
		return nil
	}}
	s := newWithConn(fc, "id", "secret")
	if err := s.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	v, err := s.Version(context.Background())
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if v != "92" {
		t.Fatalf("version = %q", v)
	}
}
