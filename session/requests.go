package session

import (
	"context"
	"fmt"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
)

// typed extracts a concrete response type from a round trip.
func typed[T openapi.Message](s *Session, ctx context.Context, req openapi.Message) (T, error) {
	var zero T
	msg, err := s.roundTrip(ctx, req)
	if err != nil {
		return zero, err
	}
	res, ok := msg.(T)
	if !ok {
		return zero, cterrors.Wrap(cterrors.StageCodec, cterrors.CodeMalformedPayload,
			fmt.Errorf("unexpected response %T", msg))
	}
	return res, nil
}

// Version asks the proxy for its protocol version. Allowed in any connected state.
func (s *Session) Version(ctx context.Context) (string, error) {
	res, err := typed[*openapi.VersionRes](s, ctx, &openapi.VersionReq{})
	if err != nil {
		return "", err
	}
	return res.Version, nil
}

// AccountsByAccessToken lists the trading accounts reachable with an access
// token. Requires app authentication only.
func (s *Session) AccountsByAccessToken(ctx context.Context, accessToken string) ([]openapi.CtidTraderAccount, error) {
	res, err := typed[*openapi.GetAccountsByAccessTokenRes](s, ctx, &openapi.GetAccountsByAccessTokenReq{
		AccessToken: accessToken,
	})
	if err != nil {
		return nil, err
	}
	return res.Accounts, nil
}

// LogoutAccount releases the bound trading account.
func (s *Session) LogoutAccount(ctx context.Context) error {
	if err := s.requireAccount(); err != nil {
		return err
	}
	_, err := typed[*openapi.AccountLogoutRes](s, ctx, &openapi.AccountLogoutReq{
		CtidTraderAccountID: s.AccountID(),
	})
	if err != nil {
		return err
	}
	s.accountID.Store(0)
	s.setState(StateAppAuthenticated)
	return nil
}

// RefreshAccessToken rotates the access token bound to the session in place,
// without re-running account auth.
func (s *Session) RefreshAccessToken(ctx context.Context, refreshToken string) (*openapi.RefreshTokenRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.RefreshTokenRes](s, ctx, &openapi.RefreshTokenReq{RefreshToken: refreshToken})
}

// SymbolsList fetches the light symbol catalog and refreshes the name cache.
func (s *Session) SymbolsList(ctx context.Context, includeArchived bool) ([]openapi.LightSymbol, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.SymbolsListRes](s, ctx, &openapi.SymbolsListReq{
		CtidTraderAccountID:    s.AccountID(),
		IncludeArchivedSymbols: includeArchived,
	})
	if err != nil {
		return nil, err
	}
	s.symbolsMu.Lock()
	for i := range res.Symbols {
		sym := res.Symbols[i]
		s.symbols[sym.SymbolName] = &sym
		s.symbolsByID[sym.SymbolID] = &sym
	}
	s.symbolsMu.Unlock()
	return res.Symbols, nil
}

// SymbolByName resolves a cached light symbol by name. The cache fills on
// SymbolsList; a miss returns nil.
func (s *Session) SymbolByName(name string) *openapi.LightSymbol {
	s.symbolsMu.RLock()
	defer s.symbolsMu.RUnlock()
	return s.symbols[name]
}

// SymbolForID resolves a cached light symbol by id; a miss returns nil.
func (s *Session) SymbolForID(id int64) *openapi.LightSymbol {
	s.symbolsMu.RLock()
	defer s.symbolsMu.RUnlock()
	return s.symbolsByID[id]
}

// SymbolsByID fetches full symbol details for the given ids.
func (s *Session) SymbolsByID(ctx context.Context, symbolIDs ...int64) ([]openapi.Symbol, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.SymbolByIDRes](s, ctx, &openapi.SymbolByIDReq{
		CtidTraderAccountID: s.AccountID(),
		SymbolIDs:           symbolIDs,
	})
	if err != nil {
		return nil, err
	}
	return res.Symbols, nil
}

// AssetList fetches the asset catalog.
func (s *Session) AssetList(ctx context.Context) ([]openapi.Asset, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.AssetListRes](s, ctx, &openapi.AssetListReq{
		CtidTraderAccountID: s.AccountID(),
	})
	if err != nil {
		return nil, err
	}
	return res.Assets, nil
}

// AssetClassList fetches the asset class catalog.
func (s *Session) AssetClassList(ctx context.Context) ([]openapi.AssetClass, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.AssetClassListRes](s, ctx, &openapi.AssetClassListReq{
		CtidTraderAccountID: s.AccountID(),
	})
	if err != nil {
		return nil, err
	}
	return res.AssetClasses, nil
}

// SymbolCategoryList fetches the symbol category catalog.
func (s *Session) SymbolCategoryList(ctx context.Context) ([]openapi.SymbolCategory, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.SymbolCategoryListRes](s, ctx, &openapi.SymbolCategoryListReq{
		CtidTraderAccountID: s.AccountID(),
	})
	if err != nil {
		return nil, err
	}
	return res.SymbolCategories, nil
}

// SubscribeSpots starts quote updates for the given symbols; updates arrive
// as SpotEvent on the event callback.
func (s *Session) SubscribeSpots(ctx context.Context, symbolIDs ...int64) error {
	if err := s.requireAccount(); err != nil {
		return err
	}
	_, err := typed[*openapi.SubscribeSpotsRes](s, ctx, &openapi.SubscribeSpotsReq{
		CtidTraderAccountID: s.AccountID(),
		SymbolIDs:           symbolIDs,
	})
	return err
}

// UnsubscribeSpots stops quote updates for the given symbols.
func (s *Session) UnsubscribeSpots(ctx context.Context, symbolIDs ...int64) error {
	if err := s.requireAccount(); err != nil {
		return err
	}
	_, err := typed[*openapi.UnsubscribeSpotsRes](s, ctx, &openapi.UnsubscribeSpotsReq{
		CtidTraderAccountID: s.AccountID(),
		SymbolIDs:           symbolIDs,
	})
	return err
}

// SubscribeLiveTrendbar adds live trendbar updates for a spot-subscribed symbol.
func (s *Session) SubscribeLiveTrendbar(ctx context.Context, period openapi.TrendbarPeriod, symbolID int64) error {
	if err := s.requireAccount(); err != nil {
		return err
	}
	_, err := typed[*openapi.SubscribeLiveTrendbarRes](s, ctx, &openapi.SubscribeLiveTrendbarReq{
		CtidTraderAccountID: s.AccountID(),
		Period:              period,
		SymbolID:            symbolID,
	})
	return err
}

// UnsubscribeLiveTrendbar stops live trendbar updates.
func (s *Session) UnsubscribeLiveTrendbar(ctx context.Context, period openapi.TrendbarPeriod, symbolID int64) error {
	if err := s.requireAccount(); err != nil {
		return err
	}
	_, err := typed[*openapi.UnsubscribeLiveTrendbarRes](s, ctx, &openapi.UnsubscribeLiveTrendbarReq{
		CtidTraderAccountID: s.AccountID(),
		Period:              period,
		SymbolID:            symbolID,
	})
	return err
}

// Trendbars fetches historical trendbars for a window; count bounds the
// result when non-zero.
func (s *Session) Trendbars(ctx context.Context, from, to int64, period openapi.TrendbarPeriod, symbolID int64, count uint32) (*openapi.GetTrendbarsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.GetTrendbarsRes](s, ctx, &openapi.GetTrendbarsReq{
		CtidTraderAccountID: s.AccountID(),
		FromTimestamp:       from,
		ToTimestamp:         to,
		Period:              period,
		SymbolID:            symbolID,
		Count:               count,
	})
}

// TickData fetches historical ticks for a window.
func (s *Session) TickData(ctx context.Context, symbolID int64, quoteType openapi.QuoteType, from, to int64) (*openapi.GetTickDataRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.GetTickDataRes](s, ctx, &openapi.GetTickDataReq{
		CtidTraderAccountID: s.AccountID(),
		SymbolID:            symbolID,
		Type:                quoteType,
		FromTimestamp:       from,
		ToTimestamp:         to,
	})
}

// NewOrder submits an order. The server acknowledges asynchronously with an
// ExecutionEvent carrying the same correlation id.
func (s *Session) NewOrder(ctx context.Context, req *openapi.NewOrderReq) (*openapi.ExecutionEvent, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	req.CtidTraderAccountID = s.AccountID()
	return typed[*openapi.ExecutionEvent](s, ctx, req)
}

// MarketOrder submits an immediate-execution order.
func (s *Session) MarketOrder(ctx context.Context, symbolID int64, side openapi.TradeSide, volume int64) (*openapi.ExecutionEvent, error) {
	return s.NewOrder(ctx, &openapi.NewOrderReq{
		SymbolID:  symbolID,
		OrderType: openapi.OrderTypeMarket,
		TradeSide: side,
		Volume:    volume,
	})
}

// LimitOrder submits an order that rests at the limit price.
func (s *Session) LimitOrder(ctx context.Context, symbolID int64, side openapi.TradeSide, volume int64, limitPrice float64) (*openapi.ExecutionEvent, error) {
	return s.NewOrder(ctx, &openapi.NewOrderReq{
		SymbolID:   symbolID,
		OrderType:  openapi.OrderTypeLimit,
		TradeSide:  side,
		Volume:     volume,
		LimitPrice: &limitPrice,
	})
}

// StopOrder submits an order that triggers at the stop price.
func (s *Session) StopOrder(ctx context.Context, symbolID int64, side openapi.TradeSide, volume int64, stopPrice float64) (*openapi.ExecutionEvent, error) {
	return s.NewOrder(ctx, &openapi.NewOrderReq{
		SymbolID:  symbolID,
		OrderType: openapi.OrderTypeStop,
		TradeSide: side,
		Volume:    volume,
		StopPrice: &stopPrice,
	})
}

// CancelOrder cancels a resting order.
func (s *Session) CancelOrder(ctx context.Context, orderID int64) (*openapi.ExecutionEvent, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.ExecutionEvent](s, ctx, &openapi.CancelOrderReq{
		CtidTraderAccountID: s.AccountID(),
		OrderID:             orderID,
	})
}

// AmendOrder changes a resting order in place.
func (s *Session) AmendOrder(ctx context.Context, req *openapi.AmendOrderReq) (*openapi.ExecutionEvent, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	req.CtidTraderAccountID = s.AccountID()
	return typed[*openapi.ExecutionEvent](s, ctx, req)
}

// AmendPositionSLTP changes a position's protection levels. Nil leaves a
// level untouched on the server.
func (s *Session) AmendPositionSLTP(ctx context.Context, positionID int64, stopLoss, takeProfit *float64) (*openapi.ExecutionEvent, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.ExecutionEvent](s, ctx, &openapi.AmendPositionSLTPReq{
		CtidTraderAccountID: s.AccountID(),
		PositionID:          positionID,
		StopLoss:            stopLoss,
		TakeProfit:          takeProfit,
	})
}

// ClosePosition closes volume units of a position; partial volume leaves the
// remainder open.
func (s *Session) ClosePosition(ctx context.Context, positionID, volume int64) (*openapi.ExecutionEvent, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.ExecutionEvent](s, ctx, &openapi.ClosePositionReq{
		CtidTraderAccountID: s.AccountID(),
		PositionID:          positionID,
		Volume:              volume,
	})
}

// Reconcile fetches the open positions and resting orders snapshot.
func (s *Session) Reconcile(ctx context.Context) (*openapi.ReconcileRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.ReconcileRes](s, ctx, &openapi.ReconcileReq{
		CtidTraderAccountID: s.AccountID(),
	})
}

// Trader fetches the account's trader record (balance, deposit asset).
func (s *Session) Trader(ctx context.Context) (*openapi.Trader, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	res, err := typed[*openapi.TraderRes](s, ctx, &openapi.TraderReq{
		CtidTraderAccountID: s.AccountID(),
	})
	if err != nil {
		return nil, err
	}
	return &res.Trader, nil
}

// DealList fetches closed deals in a window; maxRows bounds the result when
// non-nil.
func (s *Session) DealList(ctx context.Context, from, to int64, maxRows *int32) (*openapi.DealListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.DealListRes](s, ctx, &openapi.DealListReq{
		CtidTraderAccountID: s.AccountID(),
		FromTimestamp:       from,
		ToTimestamp:         to,
		MaxRows:             maxRows,
	})
}

// OrderList fetches historical orders; nil bounds mean an unbounded window.
func (s *Session) OrderList(ctx context.Context, from, to *int64) (*openapi.OrderListRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.OrderListRes](s, ctx, &openapi.OrderListReq{
		CtidTraderAccountID: s.AccountID(),
		FromTimestamp:       from,
		ToTimestamp:         to,
	})
}

// OrderDetails fetches one order with its deals.
func (s *Session) OrderDetails(ctx context.Context, orderID int64) (*openapi.OrderDetailsRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.OrderDetailsRes](s, ctx, &openapi.OrderDetailsReq{
		CtidTraderAccountID: s.AccountID(),
		OrderID:             orderID,
	})
}

// PositionUnrealizedPnL fetches per-position unrealized profit and loss.
func (s *Session) PositionUnrealizedPnL(ctx context.Context) (*openapi.GetPositionUnrealizedPnLRes, error) {
	if err := s.requireAccount(); err != nil {
		return nil, err
	}
	return typed[*openapi.GetPositionUnrealizedPnLRes](s, ctx, &openapi.GetPositionUnrealizedPnLReq{
		CtidTraderAccountID: s.AccountID(),
	})
}
