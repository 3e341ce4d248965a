package openapi

// Asset is a tradable base unit (currency, metal, index point).
type Asset struct {
	AssetID     int64
	Name        string
	DisplayName string
	Digits      int32
}

func (m *Asset) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.AssetID)
	b = appendString(b, 2, m.Name)
	if m.DisplayName != "" {
		b = appendString(b, 3, m.DisplayName)
	}
	if m.Digits != 0 {
		b = appendInt64(b, 4, int64(m.Digits))
	}
	return b, nil
}

func (m *Asset) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.AssetID = d.int64Val()
		case 2:
			m.Name = d.stringVal()
		case 3:
			m.DisplayName = d.stringVal()
		case 4:
			m.Digits = d.int32Val()
		}
	}
	return d.err()
}

type AssetListReq struct {
	CtidTraderAccountID int64
}

func (*AssetListReq) PayloadType() PayloadType { return PayloadTypeAssetListReq }

func (m *AssetListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *AssetListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type AssetListRes struct {
	CtidTraderAccountID int64
	Assets              []Asset
}

func (*AssetListRes) PayloadType() PayloadType { return PayloadTypeAssetListRes }

func (m *AssetListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Assets {
		var err error
		b, err = appendMessage(b, 3, &m.Assets[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *AssetListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var a Asset
			d.messageVal(&a)
			m.Assets = append(m.Assets, a)
		}
	}
	return d.err()
}

type AssetClass struct {
	ID   int64
	Name string
}

func (m *AssetClass) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.ID)
	b = appendString(b, 2, m.Name)
	return b, nil
}

func (m *AssetClass) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.int64Val()
		case 2:
			m.Name = d.stringVal()
		}
	}
	return d.err()
}

type AssetClassListReq struct {
	CtidTraderAccountID int64
}

func (*AssetClassListReq) PayloadType() PayloadType { return PayloadTypeAssetClassListReq }

func (m *AssetClassListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *AssetClassListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type AssetClassListRes struct {
	CtidTraderAccountID int64
	AssetClasses        []AssetClass
}

func (*AssetClassListRes) PayloadType() PayloadType { return PayloadTypeAssetClassListRes }

func (m *AssetClassListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.AssetClasses {
		var err error
		b, err = appendMessage(b, 3, &m.AssetClasses[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *AssetClassListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var c AssetClass
			d.messageVal(&c)
			m.AssetClasses = append(m.AssetClasses, c)
		}
	}
	return d.err()
}

type SymbolCategory struct {
	ID           int64
	AssetClassID int64
	Name         string
}

func (m *SymbolCategory) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.ID)
	b = appendInt64(b, 2, m.AssetClassID)
	b = appendString(b, 3, m.Name)
	return b, nil
}

func (m *SymbolCategory) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.ID = d.int64Val()
		case 2:
			m.AssetClassID = d.int64Val()
		case 3:
			m.Name = d.stringVal()
		}
	}
	return d.err()
}

type SymbolCategoryListReq struct {
	CtidTraderAccountID int64
}

func (*SymbolCategoryListReq) PayloadType() PayloadType { return PayloadTypeSymbolCategoryReq }

func (m *SymbolCategoryListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *SymbolCategoryListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type SymbolCategoryListRes struct {
	CtidTraderAccountID int64
	SymbolCategories    []SymbolCategory
}

func (*SymbolCategoryListRes) PayloadType() PayloadType { return PayloadTypeSymbolCategoryRes }

func (m *SymbolCategoryListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.SymbolCategories {
		var err error
		b, err = appendMessage(b, 3, &m.SymbolCategories[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SymbolCategoryListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var c SymbolCategory
			d.messageVal(&c)
			m.SymbolCategories = append(m.SymbolCategories, c)
		}
	}
	return d.err()
}

// LightSymbol is the compact symbol shape returned by the symbols-list operation.
type LightSymbol struct {
	SymbolID         int64
	SymbolName       string
	Enabled          bool
	BaseAssetID      int64
	QuoteAssetID     int64
	SymbolCategoryID int64
	Description      string
}

func (m *LightSymbol) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.SymbolID)
	if m.SymbolName != "" {
		b = appendString(b, 2, m.SymbolName)
	}
	b = appendBool(b, 3, m.Enabled)
	if m.BaseAssetID != 0 {
		b = appendInt64(b, 4, m.BaseAssetID)
	}
	if m.QuoteAssetID != 0 {
		b = appendInt64(b, 5, m.QuoteAssetID)
	}
	if m.SymbolCategoryID != 0 {
		b = appendInt64(b, 6, m.SymbolCategoryID)
	}
	if m.Description != "" {
		b = appendString(b, 7, m.Description)
	}
	return b, nil
}

func (m *LightSymbol) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64Val()
		case 2:
			m.SymbolName = d.stringVal()
		case 3:
			m.Enabled = d.boolVal()
		case 4:
			m.BaseAssetID = d.int64Val()
		case 5:
			m.QuoteAssetID = d.int64Val()
		case 6:
			m.SymbolCategoryID = d.int64Val()
		case 7:
			m.Description = d.stringVal()
		}
	}
	return d.err()
}

// Symbol is the detailed symbol shape; only the fields this client consumes
// are modeled, the rest are skipped on decode.
type Symbol struct {
	SymbolID    int64
	Digits      int32
	PipPosition int32
	MaxVolume   int64
	MinVolume   int64
	StepVolume  int64
}

func (m *Symbol) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.SymbolID)
	b = appendInt64(b, 2, int64(m.Digits))
	b = appendInt64(b, 3, int64(m.PipPosition))
	if m.MaxVolume != 0 {
		b = appendInt64(b, 9, m.MaxVolume)
	}
	if m.MinVolume != 0 {
		b = appendInt64(b, 10, m.MinVolume)
	}
	if m.StepVolume != 0 {
		b = appendInt64(b, 11, m.StepVolume)
	}
	return b, nil
}

func (m *Symbol) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.SymbolID = d.int64Val()
		case 2:
			m.Digits = d.int32Val()
		case 3:
			m.PipPosition = d.int32Val()
		case 9:
			m.MaxVolume = d.int64Val()
		case 10:
			m.MinVolume = d.int64Val()
		case 11:
			m.StepVolume = d.int64Val()
		}
	}
	return d.err()
}

type SymbolsListReq struct {
	CtidTraderAccountID    int64
	IncludeArchivedSymbols bool
}

func (*SymbolsListReq) PayloadType() PayloadType { return PayloadTypeSymbolsListReq }

func (m *SymbolsListReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	if m.IncludeArchivedSymbols {
		b = appendBool(b, 3, true)
	}
	return b, nil
}

func (m *SymbolsListReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.IncludeArchivedSymbols = d.boolVal()
		}
	}
	return d.err()
}

type SymbolsListRes struct {
	CtidTraderAccountID int64
	Symbols             []LightSymbol
}

func (*SymbolsListRes) PayloadType() PayloadType { return PayloadTypeSymbolsListRes }

func (m *SymbolsListRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Symbols {
		var err error
		b, err = appendMessage(b, 3, &m.Symbols[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SymbolsListRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var s LightSymbol
			d.messageVal(&s)
			m.Symbols = append(m.Symbols, s)
		}
	}
	return d.err()
}

type SymbolByIDReq struct {
	CtidTraderAccountID int64
	SymbolIDs           []int64
}

func (*SymbolByIDReq) PayloadType() PayloadType { return PayloadTypeSymbolByIDReq }

func (m *SymbolByIDReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for _, id := range m.SymbolIDs {
		b = appendInt64(b, 3, id)
	}
	return b, nil
}

func (m *SymbolByIDReq) UnmarshalBinary(data []byte) error {
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

type SymbolByIDRes struct {
	CtidTraderAccountID int64
	Symbols             []Symbol
}

func (*SymbolByIDRes) PayloadType() PayloadType { return PayloadTypeSymbolByIDRes }

func (m *SymbolByIDRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	for i := range m.Symbols {
		var err error
		b, err = appendMessage(b, 3, &m.Symbols[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *SymbolByIDRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			var s Symbol
			d.messageVal(&s)
			m.Symbols = append(m.Symbols, s)
		}
	}
	return d.err()
}
