package openapi

type SubscribeSpotsReq struct {
	CtidTraderAccountID int64
	SymbolIDs           []int64
}

func (*SubscribeSpotsReq) PayloadType() PayloadType { return PayloadTypeSubscribeSpotsReq }

func (m *SubscribeSpotsReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolIDs {
		b = appendInt64(b, 3, id)
	}
	return b, nil
}

func (m *SubscribeSpotsReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.SymbolIDs = d.int64List(m.SymbolIDs)
		}
	}
	return d.err()
}

type SubscribeSpotsRes struct {
	CtidTraderAccountID int64
}

func (*SubscribeSpotsRes) PayloadType() PayloadType { return PayloadTypeSubscribeSpotsRes }

func (m *SubscribeSpotsRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *SubscribeSpotsRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type UnsubscribeSpotsReq struct {
	CtidTraderAccountID int64
	SymbolIDs           []int64
}

func (*UnsubscribeSpotsReq) PayloadType() PayloadType { return PayloadTypeUnsubscribeSpotsReq }

func (m *UnsubscribeSpotsReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolIDs {
		b = appendInt64(b, 3, id)
	}
	return b, nil
}

func (m *UnsubscribeSpotsReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.SymbolIDs = d.int64List(m.SymbolIDs)
		}
	}
	return d.err()
}

type UnsubscribeSpotsRes struct {
	CtidTraderAccountID int64
}

func (*UnsubscribeSpotsRes) PayloadType() PayloadType { return PayloadTypeUnsubscribeSpotsRes }

func (m *UnsubscribeSpotsRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *UnsubscribeSpotsRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type SubscribeLiveTrendbarReq struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	SymbolID            int64
}

func (*SubscribeLiveTrendbarReq) PayloadType() PayloadType {
	return PayloadTypeSubscribeLiveTrendbarReq
}

func (m *SubscribeLiveTrendbarReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, int64(m.Period))
	b = appendInt64(b, 4, m.SymbolID)
	return b, nil
}

func (m *SubscribeLiveTrendbarReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.Period = TrendbarPeriod(d.int32Val())
		case 4:
			m.SymbolID = d.int64Val()
		}
	}
	return d.err()
}

type SubscribeLiveTrendbarRes struct {
	CtidTraderAccountID int64
}

func (*SubscribeLiveTrendbarRes) PayloadType() PayloadType {
	return PayloadTypeSubscribeLiveTrendbarRes
}

func (m *SubscribeLiveTrendbarRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *SubscribeLiveTrendbarRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type UnsubscribeLiveTrendbarReq struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	SymbolID            int64
}

func (*UnsubscribeLiveTrendbarReq) PayloadType() PayloadType {
	return PayloadTypeUnsubscribeLiveTrendbarReq
}

func (m *UnsubscribeLiveTrendbarReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, int64(m.Period))
	b = appendInt64(b, 4, m.SymbolID)
	return b, nil
}

func (m *UnsubscribeLiveTrendbarReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.Period = TrendbarPeriod(d.int32Val())
		case 4:
			m.SymbolID = d.int64Val()
		}
	}
	return d.err()
}

type UnsubscribeLiveTrendbarRes struct {
	CtidTraderAccountID int64
}

func (*UnsubscribeLiveTrendbarRes) PayloadType() PayloadType {
	return PayloadTypeUnsubscribeLiveTrendbarRes
}

func (m *UnsubscribeLiveTrendbarRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *UnsubscribeLiveTrendbarRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

// Trendbar carries delta-encoded OHLC: low is absolute, open/close/high are
// unsigned deltas from low.
type Trendbar struct {
	Volume                int64
	Period                TrendbarPeriod
	Low                   int64
	DeltaOpen             uint64
	DeltaClose            uint64
	DeltaHigh             uint64
	UTCTimestampInMinutes uint32
}

func (m *Trendbar) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 3, m.Volume)
	if m.Period != 0 {
		b = appendInt64(b, 4, int64(m.Period))
	}
	if m.Low != 0 {
		b = appendInt64(b, 5, m.Low)
	}
	if m.DeltaOpen != 0 {
		b = appendVarint(b, 6, m.DeltaOpen)
	}
	if m.DeltaClose != 0 {
		b = appendVarint(b, 7, m.DeltaClose)
	}
	if m.DeltaHigh != 0 {
		b = appendVarint(b, 8, m.DeltaHigh)
	}
	if m.UTCTimestampInMinutes != 0 {
		b = appendUint32(b, 9, m.UTCTimestampInMinutes)
	}
	return b, nil
}

func (m *Trendbar) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 3:
			m.Volume = d.int64Val()
		case 4:
			m.Period = TrendbarPeriod(d.int32Val())
		case 5:
			m.Low = d.int64Val()
		case 6:
			m.DeltaOpen = d.uint64Val()
		case 7:
			m.DeltaClose = d.uint64Val()
		case 8:
			m.DeltaHigh = d.uint64Val()
		case 9:
			m.UTCTimestampInMinutes = d.uint32Val()
		}
	}
	return d.err()
}

// Open returns the absolute open price in price units.
func (m *Trendbar) Open() int64 { return m.Low + int64(m.DeltaOpen) }

// High returns the absolute high price in price units.
func (m *Trendbar) High() int64 { return m.Low + int64(m.DeltaHigh) }

// Close returns the absolute close price in price units.
func (m *Trendbar) Close() int64 { return m.Low + int64(m.DeltaClose) }

type GetTrendbarsReq struct {
	CtidTraderAccountID int64
	FromTimestamp       int64
	ToTimestamp         int64
	Period              TrendbarPeriod
	SymbolID            int64
	Count               uint32
}

func (*GetTrendbarsReq) PayloadType() PayloadType { return PayloadTypeGetTrendbarsReq }

func (m *GetTrendbarsReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.FromTimestamp)
	b = appendInt64(b, 4, m.ToTimestamp)
	b = appendInt64(b, 5, int64(m.Period))
	b = appendInt64(b, 6, m.SymbolID)
	if m.Count != 0 {
		b = appendUint32(b, 7, m.Count)
	}
	return b, nil
}

func (m *GetTrendbarsReq) UnmarshalBinary(data []byte) error {
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
			m.Period = TrendbarPeriod(d.int32Val())
		case 6:
			m.SymbolID = d.int64Val()
		case 7:
			m.Count = d.uint32Val()
		}
	}
	return d.err()
}

type GetTrendbarsRes struct {
	CtidTraderAccountID int64
	Period              TrendbarPeriod
	Timestamp           int64
	Trendbars           []Trendbar
	SymbolID            int64
}

func (*GetTrendbarsRes) PayloadType() PayloadType { return PayloadTypeGetTrendbarsRes }

func (m *GetTrendbarsRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, int64(m.Period))
	if m.Timestamp != 0 {
		b = appendInt64(b, 4, m.Timestamp)
	}
	for i := range m.Trendbars {
		var err error
		b, err = appendMessage(b, 5, &m.Trendbars[i])
		if err != nil {
			return nil, err
		}
	}
	if m.SymbolID != 0 {
		b = appendInt64(b, 6, m.SymbolID)
	}
	return b, nil
}

func (m *GetTrendbarsRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.Period = TrendbarPeriod(d.int32Val())
		case 4:
			m.Timestamp = d.int64Val()
		case 5:
			var t Trendbar
			d.messageVal(&t)
			m.Trendbars = append(m.Trendbars, t)
		case 6:
			m.SymbolID = d.int64Val()
		}
	}
	return d.err()
}

// TickData carries a delta-encoded tick stream: the first tick of a response
// is absolute, every following tick is a delta from its predecessor.
type TickData struct {
	Timestamp int64
	Tick      int64
}

func (m *TickData) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.Timestamp)
	b = appendInt64(b, 2, m.Tick)
	return b, nil
}

func (m *TickData) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.Timestamp = d.int64Val()
		case 2:
			m.Tick = d.int64Val()
		}
	}
	return d.err()
}

type GetTickDataReq struct {
	CtidTraderAccountID int64
	SymbolID            int64
	Type                QuoteType
	FromTimestamp       int64
	ToTimestamp         int64
}

func (*GetTickDataReq) PayloadType() PayloadType { return PayloadTypeGetTickDataReq }

func (m *GetTickDataReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	b = appendInt64(b, 4, int64(m.Type))
	b = appendInt64(b, 5, m.FromTimestamp)
	b = appendInt64(b, 6, m.ToTimestamp)
	return b, nil
}

func (m *GetTickDataReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.SymbolID = d.int64Val()
		case 4:
			m.Type = QuoteType(d.int32Val())
		case 5:
			m.FromTimestamp = d.int64Val()
		case 6:
			m.ToTimestamp = d.int64Val()
		}
	}
	return d.err()
}

type GetTickDataRes struct {
	CtidTraderAccountID int64
	TickData            []TickData
	HasMore             bool
}

func (*GetTickDataRes) PayloadType() PayloadType { return PayloadTypeGetTickDataRes }

func (m *GetTickDataRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.TickData {
		var err error
		b, err = appendMessage(b, 3, &m.TickData[i])
		if err != nil {
			return nil, err
		}
	}
	if m.HasMore {
		b = appendBool(b, 4, true)
	}
	return b, nil
}

func (m *GetTickDataRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var t TickData
			d.messageVal(&t)
			m.TickData = append(m.TickData, t)
		case 4:
			m.HasMore = d.boolVal()
		}
	}
	return d.err()
}

// SpotEvent is the uncorrelated server push carrying a quote update.
type SpotEvent struct {
	CtidTraderAccountID int64
	SymbolID            int64
	Bid                 *uint64
	Ask                 *uint64
	Trendbars           []Trendbar
	Timestamp           int64
}

func (*SpotEvent) PayloadType() PayloadType { return PayloadTypeSpotEvent }

func (m *SpotEvent) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendInt64(b, 3, m.SymbolID)
	if m.Bid != nil {
		b = appendVarint(b, 4, *m.Bid)
	}
	if m.Ask != nil {
		b = appendVarint(b, 5, *m.Ask)
	}
	for i := range m.Trendbars {
		var err error
		b, err = appendMessage(b, 6, &m.Trendbars[i])
		if err != nil {
			return nil, err
		}
	}
	if m.Timestamp != 0 {
		b = appendInt64(b, 8, m.Timestamp)
	}
	return b, nil
}

func (m *SpotEvent) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.SymbolID = d.int64Val()
		case 4:
			m.Bid = ptr(d.uint64Val())
		case 5:
			m.Ask = ptr(d.uint64Val())
		case 6:
			var t Trendbar
			d.messageVal(&t)
			m.Trendbars = append(m.Trendbars, t)
		case 8:
			m.Timestamp = d.int64Val()
		}
	}
	return d.err()
}
