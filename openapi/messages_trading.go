package openapi

// TradeData is the immutable part of a position or order.
type TradeData struct {
	SymbolID      int64
	Volume        int64
	TradeSide     TradeSide
	OpenTimestamp int64
	Label         string
}

func (m *TradeData) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.SymbolID)
	b = appendInt64(b, 2, m.Volume)
	b = appendInt64(b, 3, int64(m.TradeSide))
	if m.OpenTimestamp != 0 {
		b = appendInt64(b, 4, m.OpenTimestamp)
	}
	if m.Label != "" {
		b = appendString(b, 5, m.Label)
	}
	return b, nil
}

func (m *TradeData) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64Val()
		case 2:
			m.Volume = d.int64Val()
		case 3:
			m.TradeSide = TradeSide(d.int32Val())
		case 4:
			m.OpenTimestamp = d.int64Val()
		case 5:
			m.Label = d.stringVal()
		}
	}
	return d.err()
}

// Position models the fields this client consumes; the rest of the schema is
// skipped on decode.
type Position struct {
	PositionID             int64
	TradeData              TradeData
	PositionStatus         int32
	Swap                   int64
	Price                  float64
	StopLoss               float64
	TakeProfit             float64
	UTCLastUpdateTimestamp int64
}

func (m *Position) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.PositionID)
	var err error
	b, err = appendMessage(b, 2, &m.TradeData)
	if err != nil {
		return nil, err
	}
	b = appendInt64(b, 3, int64(m.PositionStatus))
	b = appendInt64(b, 4, m.Swap)
	if m.Price != 0 {
		b = appendDouble(b, 5, m.Price)
	}
	if m.StopLoss != 0 {
		b = appendDouble(b, 6, m.StopLoss)
	}
	if m.TakeProfit != 0 {
		b = appendDouble(b, 7, m.TakeProfit)
	}
	if m.UTCLastUpdateTimestamp != 0 {
		b = appendInt64(b, 8, m.UTCLastUpdateTimestamp)
	}
	return b, nil
}

func (m *Position) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.PositionID = d.int64Val()
		case 2:
			d.messageVal(&m.TradeData)
		case 3:
			m.PositionStatus = d.int32Val()
		case 4:
			m.Swap = d.int64Val()
		case 5:
			m.Price = d.doubleVal()
		case 6:
			m.StopLoss = d.doubleVal()
		case 7:
			m.TakeProfit = d.doubleVal()
		case 8:
			m.UTCLastUpdateTimestamp = d.int64Val()
		}
	}
	return d.err()
}

// Order models the fields this client consumes.
type Order struct {
	OrderID     int64
	TradeData   TradeData
	OrderType   OrderType
	OrderStatus int32
	LimitPrice  float64
	StopPrice   float64
}

func (m *Order) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.OrderID)
	var err error
	b, err = appendMessage(b, 2, &m.TradeData)
	if err != nil {
		return nil, err
	}
	b = appendInt64(b, 3, int64(m.OrderType))
	b = appendInt64(b, 4, int64(m.OrderStatus))
	if m.LimitPrice != 0 {
		b = appendDouble(b, 9, m.LimitPrice)
	}
	if m.StopPrice != 0 {
		b = appendDouble(b, 10, m.StopPrice)
	}
	return b, nil
}

func (m *Order) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.OrderID = d.int64Val()
		case 2:
			d.messageVal(&m.TradeData)
		case 3:
			m.OrderType = OrderType(d.int32Val())
		case 4:
			m.OrderStatus = d.int32Val()
		case 9:
			m.LimitPrice = d.doubleVal()
		case 10:
			m.StopPrice = d.doubleVal()
		}
	}
	return d.err()
}

// Deal models the fields this client consumes.
type Deal struct {
	DealID             int64
	OrderID            int64
	PositionID         int64
	Volume             int64
	SymbolID           int64
	ExecutionTimestamp int64
	ExecutionPrice     float64
	TradeSide          TradeSide
}

func (m *Deal) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.DealID)
	b = appendInt64(b, 2, m.OrderID)
	b = appendInt64(b, 3, m.PositionID)
	b = appendInt64(b, 4, m.Volume)
	b = appendInt64(b, 6, m.SymbolID)
	if m.ExecutionTimestamp != 0 {
		b = appendInt64(b, 8, m.ExecutionTimestamp)
	}
	if m.ExecutionPrice != 0 {
		b = appendDouble(b, 10, m.ExecutionPrice)
	}
	if m.TradeSide != 0 {
		b = appendInt64(b, 11, int64(m.TradeSide))
	}
	return b, nil
}

func (m *Deal) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.DealID = d.int64Val()
		case 2:
			m.OrderID = d.int64Val()
		case 3:
			m.PositionID = d.int64Val()
		case 4:
			m.Volume = d.int64Val()
		case 6:
			m.SymbolID = d.int64Val()
		case 8:
			m.ExecutionTimestamp = d.int64Val()
		case 10:
			m.ExecutionPrice = d.doubleVal()
		case 11:
			m.TradeSide = TradeSide(d.int32Val())
		}
	}
	return d.err()
}

// NewOrderReq places an order; optional prices and protections stay nil when unused.
type NewOrderReq struct {
	CtidTraderAccountID int64
	SymbolID            int64
	OrderType           OrderType
	TradeSide           TradeSide
	Volume              int64
	LimitPrice          *float64
	StopPrice           *float64
	ExpirationTimestamp *int64
	StopLoss            *float64
	TakeProfit          *float64
	Comment             string
	Label               string
	StopTriggerMethod   *int32
}

func (*NewOrderReq) PayloadType() PayloadType { return PayloadTypeNewOrderReq }

func (m *NewOrderReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	b = appendInt64(b, 4, int64(m.OrderType))
	b = appendInt64(b, 5, int64(m.TradeSide))
	b = appendInt64(b, 6, m.Volume)
	if m.LimitPrice != nil {
		b = appendDouble(b, 7, *m.LimitPrice)
	}
	if m.StopPrice != nil {
		b = appendDouble(b, 8, *m.StopPrice)
	}
	if m.ExpirationTimestamp != nil {
		b = appendInt64(b, 10, *m.ExpirationTimestamp)
	}
	if m.StopLoss != nil {
		b = appendDouble(b, 11, *m.StopLoss)
	}
	if m.TakeProfit != nil {
		b = appendDouble(b, 12, *m.TakeProfit)
	}
	if m.Comment != "" {
		b = appendString(b, 13, m.Comment)
	}
	if m.Label != "" {
		b = appendString(b, 16, m.Label)
	}
	if m.StopTriggerMethod != nil {
		b = appendInt64(b, 23, int64(*m.StopTriggerMethod))
	}
	return b, nil
}

func (m *NewOrderReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.SymbolID = d.int64Val()
		case 4:
			m.OrderType = OrderType(d.int32Val())
		case 5:
			m.TradeSide = TradeSide(d.int32Val())
		case 6:
			m.Volume = d.int64Val()
		case 7:
			m.LimitPrice = ptr(d.doubleVal())
		case 8:
			m.StopPrice = ptr(d.doubleVal())
		case 10:
			m.ExpirationTimestamp = ptr(d.int64Val())
		case 11:
			m.StopLoss = ptr(d.doubleVal())
		case 12:
			m.TakeProfit = ptr(d.doubleVal())
		case 13:
			m.Comment = d.stringVal()
		case 16:
			m.Label = d.stringVal()
		case 23:
			m.StopTriggerMethod = ptr(d.int32Val())
		}
	}
	return d.err()
}

type CancelOrderReq struct {
	CtidTraderAccountID int64
	OrderID             int64
}

func (*CancelOrderReq) PayloadType() PayloadType { return PayloadTypeCancelOrderReq }

func (m *CancelOrderReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	return b, nil
}

func (m *CancelOrderReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.OrderID = d.int64Val()
		}
	}
	return d.err()
}

type AmendOrderReq struct {
	CtidTraderAccountID int64
	OrderID             int64
	Volume              *int64
	LimitPrice          *float64
	StopPrice           *float64
	ExpirationTimestamp *int64
	StopLoss            *float64
	TakeProfit          *float64
	StopTriggerMethod   *int32
}

func (*AmendOrderReq) PayloadType() PayloadType { return PayloadTypeAmendOrderReq }

func (m *AmendOrderReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	if m.Volume != nil {
		b = appendInt64(b, 4, *m.Volume)
	}
	if m.LimitPrice != nil {
		b = appendDouble(b, 5, *m.LimitPrice)
	}
	if m.StopPrice != nil {
		b = appendDouble(b, 6, *m.StopPrice)
	}
	if m.ExpirationTimestamp != nil {
		b = appendInt64(b, 7, *m.ExpirationTimestamp)
	}
	if m.StopLoss != nil {
		b = appendDouble(b, 8, *m.StopLoss)
	}
	if m.TakeProfit != nil {
		b = appendDouble(b, 9, *m.TakeProfit)
	}
	if m.StopTriggerMethod != nil {
		b = appendInt64(b, 15, int64(*m.StopTriggerMethod))
	}
	return b, nil
}

func (m *AmendOrderReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.OrderID = d.int64Val()
		case 4:
			m.Volume = ptr(d.int64Val())
		case 5:
			m.LimitPrice = ptr(d.doubleVal())
		case 6:
			m.StopPrice = ptr(d.doubleVal())
		case 7:
			m.ExpirationTimestamp = ptr(d.int64Val())
		case 8:
			m.StopLoss = ptr(d.doubleVal())
		case 9:
			m.TakeProfit = ptr(d.doubleVal())
		case 15:
			m.StopTriggerMethod = ptr(d.int32Val())
		}
	}
	return d.err()
}

type AmendPositionSLTPReq struct {
	CtidTraderAccountID int64
	PositionID          int64
	StopLoss            *float64
	TakeProfit          *float64
}

func (*AmendPositionSLTPReq) PayloadType() PayloadType { return PayloadTypeAmendPositionSLTPReq }

func (m *AmendPositionSLTPReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.PositionID)
	if m.StopLoss != nil {
		b = appendDouble(b, 4, *m.StopLoss)
	}
	if m.TakeProfit != nil {
		b = appendDouble(b, 5, *m.TakeProfit)
	}
	return b, nil
}

func (m *AmendPositionSLTPReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.PositionID = d.int64Val()
		case 4:
			m.StopLoss = ptr(d.doubleVal())
		case 5:
			m.TakeProfit = ptr(d.doubleVal())
		}
	}
	return d.err()
}

type ClosePositionReq struct {
	CtidTraderAccountID int64
	PositionID          int64
	Volume              int64
}

func (*ClosePositionReq) PayloadType() PayloadType { return PayloadTypeClosePositionReq }

func (m *ClosePositionReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.PositionID)
	b = appendInt64(b, 4, m.Volume)
	return b, nil
}

func (m *ClosePositionReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.PositionID = d.int64Val()
		case 4:
			m.Volume = d.int64Val()
		}
	}
	return d.err()
}

// ExecutionEvent reports an order lifecycle transition.
type ExecutionEvent struct {
	CtidTraderAccountID int64
	ExecutionType       ExecutionType
	Position            *Position
	Order               *Order
	Deal                *Deal
	ErrorCode           string
	IsServerEvent       bool
}

func (*ExecutionEvent) PayloadType() PayloadType { return PayloadTypeExecutionEvent }

func (m *ExecutionEvent) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, int64(m.ExecutionType))
	var err error
	if m.Position != nil {
		if b, err = appendMessage(b, 4, m.Position); err != nil {
			return nil, err
		}
	}
	if m.Order != nil {
		if b, err = appendMessage(b, 5, m.Order); err != nil {
			return nil, err
		}
	}
	if m.Deal != nil {
		if b, err = appendMessage(b, 6, m.Deal); err != nil {
			return nil, err
		}
	}
	if m.ErrorCode != "" {
		b = appendString(b, 9, m.ErrorCode)
	}
	if m.IsServerEvent {
		b = appendBool(b, 10, true)
	}
	return b, nil
}

func (m *ExecutionEvent) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.ExecutionType = ExecutionType(d.int32Val())
		case 4:
			m.Position = &Position{}
			d.messageVal(m.Position)
		case 5:
			m.Order = &Order{}
			d.messageVal(m.Order)
		case 6:
			m.Deal = &Deal{}
			d.messageVal(m.Deal)
		case 9:
			m.ErrorCode = d.stringVal()
		case 10:
			m.IsServerEvent = d.boolVal()
		}
	}
	return d.err()
}

// OrderErrorEvent is pushed when an order request is rejected asynchronously.
type OrderErrorEvent struct {
	CtidTraderAccountID int64
	ErrorCode           string
	OrderID             int64
	PositionID          int64
	Description         string
}

func (*OrderErrorEvent) PayloadType() PayloadType { return PayloadTypeOrderErrorEvent }

func (m *OrderErrorEvent) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.CtidTraderAccountID)
	b = appendString(b, 2, m.ErrorCode)
	if m.OrderID != 0 {
		b = appendInt64(b, 3, m.OrderID)
	}
	if m.PositionID != 0 {
		b = appendInt64(b, 4, m.PositionID)
	}
	if m.Description != "" {
		b = appendString(b, 5, m.Description)
	}
	return b, nil
}

func (m *OrderErrorEvent) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.CtidTraderAccountID = d.int64Val()
		case 2:
			m.ErrorCode = d.stringVal()
		case 3:
			m.OrderID = d.int64Val()
		case 4:
			m.PositionID = d.int64Val()
		case 5:
			m.Description = d.stringVal()
		}
	}
	return d.err()
}

// Trader models the fields this client consumes.
type Trader struct {
	CtidTraderAccountID int64
	Balance             int64
	DepositAssetID      int64
}

func (m *Trader) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.CtidTraderAccountID)
	b = appendInt64(b, 2, m.Balance)
	if m.DepositAssetID != 0 {
		b = appendInt64(b, 8, m.DepositAssetID)
	}
	return b, nil
}

func (m *Trader) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.CtidTraderAccountID = d.int64Val()
		case 2:
			m.Balance = d.int64Val()
		case 8:
			m.DepositAssetID = d.int64Val()
		}
	}
	return d.err()
}

type TraderReq struct {
	CtidTraderAccountID int64
}

func (*TraderReq) PayloadType() PayloadType { return PayloadTypeTraderReq }

func (m *TraderReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *TraderReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type TraderRes struct {
	CtidTraderAccountID int64
	Trader              Trader
}

func (*TraderRes) PayloadType() PayloadType { return PayloadTypeTraderRes }

func (m *TraderRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	b, err = appendMessage(b, 3, &m.Trader)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (m *TraderRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			d.messageVal(&m.Trader)
		}
	}
	return d.err()
}

type ReconcileReq struct {
	CtidTraderAccountID int64
}

func (*ReconcileReq) PayloadType() PayloadType { return PayloadTypeReconcileReq }

func (m *ReconcileReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *ReconcileReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type ReconcileRes struct {
	CtidTraderAccountID int64
	Positions           []Position
	Orders              []Order
}

func (*ReconcileRes) PayloadType() PayloadType { return PayloadTypeReconcileRes }

func (m *ReconcileRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	for i := range m.Positions {
		if b, err = appendMessage(b, 3, &m.Positions[i]); err != nil {
			return nil, err
		}
	}
	for i := range m.Orders {
		if b, err = appendMessage(b, 4, &m.Orders[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *ReconcileRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var p Position
			d.messageVal(&p)
			m.Positions = append(m.Positions, p)
		case 4:
			var o Order
			d.messageVal(&o)
			m.Orders = append(m.Orders, o)
		}
	}
	return d.err()
}

type OrderListReq struct {
	CtidTraderAccountID int64
	FromTimestamp       *int64
	ToTimestamp         *int64
}

func (*OrderListReq) PayloadType() PayloadType { return PayloadTypeOrderListReq }

func (m *OrderListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	if m.FromTimestamp != nil {
		b = appendInt64(b, 3, *m.FromTimestamp)
	}
	if m.ToTimestamp != nil {
		b = appendInt64(b, 4, *m.ToTimestamp)
	}
	return b, nil
}

func (m *OrderListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.FromTimestamp = ptr(d.int64Val())
		case 4:
			m.ToTimestamp = ptr(d.int64Val())
		}
	}
	return d.err()
}

type OrderListRes struct {
	CtidTraderAccountID int64
	Orders              []Order
	HasMore             bool
}

func (*OrderListRes) PayloadType() PayloadType { return PayloadTypeOrderListRes }

func (m *OrderListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	for i := range m.Orders {
		if b, err = appendMessage(b, 3, &m.Orders[i]); err != nil {
			return nil, err
		}
	}
	if m.HasMore {
		b = appendBool(b, 4, true)
	}
	return b, nil
}

func (m *OrderListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var o Order
			d.messageVal(&o)
			m.Orders = append(m.Orders, o)
		case 4:
			m.HasMore = d.boolVal()
		}
	}
	return d.err()
}

type OrderDetailsReq struct {
	CtidTraderAccountID int64
	OrderID             int64
}

func (*OrderDetailsReq) PayloadType() PayloadType { return PayloadTypeOrderDetailsReq }

func (m *OrderDetailsReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.OrderID)
	return b, nil
}

func (m *OrderDetailsReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.OrderID = d.int64Val()
		}
	}
	return d.err()
}

type OrderDetailsRes struct {
	CtidTraderAccountID int64
	Order               Order
	Deals               []Deal
}

func (*OrderDetailsRes) PayloadType() PayloadType { return PayloadTypeOrderDetailsRes }

func (m *OrderDetailsRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	if b, err = appendMessage(b, 3, &m.Order); err != nil {
		return nil, err
	}
	for i := range m.Deals {
		if b, err = appendMessage(b, 4, &m.Deals[i]); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *OrderDetailsRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			d.messageVal(&m.Order)
		case 4:
			var dl Deal
			d.messageVal(&dl)
			m.Deals = append(m.Deals, dl)
		}
	}
	return d.err()
}

type DealListReq struct {
	CtidTraderAccountID int64
	FromTimestamp       int64
	ToTimestamp         int64
	MaxRows             *int32
}

func (*DealListReq) PayloadType() PayloadType { return PayloadTypeDealListReq }

func (m *DealListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.FromTimestamp)
	b = appendInt64(b, 4, m.ToTimestamp)
	if m.MaxRows != nil {
		b = appendInt64(b, 5, int64(*m.MaxRows))
	}
	return b, nil
}

func (m *DealListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.FromTimestamp = d.int64Val()
		case 4:
			m.ToTimestamp = d.int64Val()
		case 5:
			m.MaxRows = ptr(d.int32Val())
		}
	}
	return d.err()
}

type DealListRes struct {
	CtidTraderAccountID int64
	Deals               []Deal
	HasMore             bool
}

func (*DealListRes) PayloadType() PayloadType { return PayloadTypeDealListRes }

func (m *DealListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	for i := range m.Deals {
		if b, err = appendMessage(b, 3, &m.Deals[i]); err != nil {
			return nil, err
		}
	}
	if m.HasMore {
		b = appendBool(b, 4, true)
	}
	return b, nil
}

func (m *DealListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var dl Deal
			d.messageVal(&dl)
			m.Deals = append(m.Deals, dl)
		case 4:
			m.HasMore = d.boolVal()
		}
	}
	return d.err()
}

type PositionUnrealizedPnL struct {
	PositionID         int64
	GrossUnrealizedPnL int64
	NetUnrealizedPnL   int64
}

func (m *PositionUnrealizedPnL) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.PositionID)
	b = appendInt64(b, 2, m.GrossUnrealizedPnL)
	b = appendInt64(b, 3, m.NetUnrealizedPnL)
	return b, nil
}

func (m *PositionUnrealizedPnL) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.PositionID = d.int64Val()
		case 2:
			m.GrossUnrealizedPnL = d.int64Val()
		case 3:
			m.NetUnrealizedPnL = d.int64Val()
		}
	}
	return d.err()
}

type GetPositionUnrealizedPnLReq struct {
	CtidTraderAccountID int64
}

func (*GetPositionUnrealizedPnLReq) PayloadType() PayloadType {
	return PayloadTypeGetPositionUnrealizedPnLReq
}

func (m *GetPositionUnrealizedPnLReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *GetPositionUnrealizedPnLReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type GetPositionUnrealizedPnLRes struct {
	CtidTraderAccountID int64
	PositionPnLs        []PositionUnrealizedPnL
	MoneyDigits         uint32
}

func (*GetPositionUnrealizedPnLRes) PayloadType() PayloadType {
	return PayloadTypeGetPositionUnrealizedPnLRes
}

func (m *GetPositionUnrealizedPnLRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	var err error
	for i := range m.PositionPnLs {
		if b, err = appendMessage(b, 3, &m.PositionPnLs[i]); err != nil {
			return nil, err
		}
	}
	if m.MoneyDigits != 0 {
		b = appendUint32(b, 4, m.MoneyDigits)
	}
	return b, nil
}

func (m *GetPositionUnrealizedPnLRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var p PositionUnrealizedPnL
			d.messageVal(&p)
			m.PositionPnLs = append(m.PositionPnLs, p)
		case 4:
			m.MoneyDigits = d.uint32Val()
		}
	}
	return d.err()
}
