package openapi

// ApplicationAuthReq proves the application to the server with its OAuth client pair.
type ApplicationAuthReq struct {
	ClientID     string
	ClientSecret string
}

func (*ApplicationAuthReq) PayloadType() PayloadType { return PayloadTypeApplicationAuthReq }

func (m *ApplicationAuthReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.ClientID)
	b = appendString(b, 3, m.ClientSecret)
	return b, nil
}

func (m *ApplicationAuthReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.ClientID = d.stringVal()
		case 3:
			m.ClientSecret = d.stringVal()
		}
	}
	return d.err()
}

type ApplicationAuthRes struct{}

func (*ApplicationAuthRes) PayloadType() PayloadType          { return PayloadTypeApplicationAuthRes }
func (*ApplicationAuthRes) MarshalBinary() ([]byte, error)    { return nil, nil }
func (*ApplicationAuthRes) UnmarshalBinary(data []byte) error { return nil }

// AccountAuthReq binds a trading account to the authenticated session.
type AccountAuthReq struct {
	CtidTraderAccountID int64
	AccessToken         string
}

func (*AccountAuthReq) PayloadType() PayloadType { return PayloadTypeAccountAuthReq }

func (m *AccountAuthReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	b = appendString(b, 3, m.AccessToken)
	return b, nil
}

func (m *AccountAuthReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.AccessToken = d.stringVal()
		}
	}
	return d.err()
}

type AccountAuthRes struct {
	CtidTraderAccountID int64
}

func (*AccountAuthRes) PayloadType() PayloadType { return PayloadTypeAccountAuthRes }

func (m *AccountAuthRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *AccountAuthRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type VersionReq struct{}

func (*VersionReq) PayloadType() PayloadType          { return PayloadTypeVersionReq }
func (*VersionReq) MarshalBinary() ([]byte, error)    { return nil, nil }
func (*VersionReq) UnmarshalBinary(data []byte) error { return nil }

type VersionRes struct {
	Version string
}

func (*VersionRes) PayloadType() PayloadType { return PayloadTypeVersionRes }

func (m *VersionRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.Version)
	return b, nil
}

func (m *VersionRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.Version = d.stringVal()
		}
	}
	return d.err()
}

// CtidTraderAccount describes one trading account reachable with an access token.
type CtidTraderAccount struct {
	CtidTraderAccountID        int64
	IsLive                     bool
	TraderLogin                int64
	LastClosingDealTimestamp   int64
	LastBalanceUpdateTimestamp int64
}

func (m *CtidTraderAccount) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 1, m.CtidTraderAccountID)
	b = appendBool(b, 2, m.IsLive)
	if m.TraderLogin != 0 {
		b = appendInt64(b, 3, m.TraderLogin)
	}
	if m.LastClosingDealTimestamp != 0 {
		b = appendInt64(b, 4, m.LastClosingDealTimestamp)
	}
	if m.LastBalanceUpdateTimestamp != 0 {
		b = appendInt64(b, 5, m.LastBalanceUpdateTimestamp)
	}
	return b, nil
}

func (m *CtidTraderAccount) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.CtidTraderAccountID = d.int64Val()
		case 2:
			m.IsLive = d.boolVal()
		case 3:
			m.TraderLogin = d.int64Val()
		case 4:
			m.LastClosingDealTimestamp = d.int64Val()
		case 5:
			m.LastBalanceUpdateTimestamp = d.int64Val()
		}
	}
	return d.err()
}

type GetAccountsByAccessTokenReq struct {
	AccessToken string
}

func (*GetAccountsByAccessTokenReq) PayloadType() PayloadType {
	return PayloadTypeGetAccountsByAccessTokenReq
}

func (m *GetAccountsByAccessTokenReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.AccessToken)
	return b, nil
}

func (m *GetAccountsByAccessTokenReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.AccessToken = d.stringVal()
		}
	}
	return d.err()
}

type GetAccountsByAccessTokenRes struct {
	AccessToken     string
	PermissionScope int32
	Accounts        []CtidTraderAccount
}

func (*GetAccountsByAccessTokenRes) PayloadType() PayloadType {
	return PayloadTypeGetAccountsByAccessTokenRes
}

func (m *GetAccountsByAccessTokenRes) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.AccessToken != "" {
		b = appendString(b, 2, m.AccessToken)
	}
	if m.PermissionScope != 0 {
		b = appendInt64(b, 3, int64(m.PermissionScope))
	}
	for i := range m.Accounts {
		var err error
		b, err = appendMessage(b, 4, &m.Accounts[i])
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (m *GetAccountsByAccessTokenRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.AccessToken = d.stringVal()
		case 3:
			m.PermissionScope = d.int32Val()
		case 4:
			var acc CtidTraderAccount
			d.messageVal(&acc)
			m.Accounts = append(m.Accounts, acc)
		}
	}
	return d.err()
}

type AccountLogoutReq struct {
	CtidTraderAccountID int64
}

func (*AccountLogoutReq) PayloadType() PayloadType { return PayloadTypeAccountLogoutReq }

func (m *AccountLogoutReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *AccountLogoutReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

type AccountLogoutRes struct {
	CtidTraderAccountID int64
}

func (*AccountLogoutRes) PayloadType() PayloadType { return PayloadTypeAccountLogoutRes }

func (m *AccountLogoutRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendInt64(b, 2, m.CtidTraderAccountID)
	return b, nil
}

func (m *AccountLogoutRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.CtidTraderAccountID = d.int64Val()
		}
	}
	return d.err()
}

// RefreshTokenReq rotates the access token bound to the session in place.
type RefreshTokenReq struct {
	RefreshToken string
}

func (*RefreshTokenReq) PayloadType() PayloadType { return PayloadTypeRefreshTokenReq }

func (m *RefreshTokenReq) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.RefreshToken)
	return b, nil
}

func (m *RefreshTokenReq) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.RefreshToken = d.stringVal()
		}
	}
	return d.err()
}

type RefreshTokenRes struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int64
	RefreshToken string
}

func (*RefreshTokenRes) PayloadType() PayloadType { return PayloadTypeRefreshTokenRes }

func (m *RefreshTokenRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.AccessToken)
	if m.TokenType != "" {
		b = appendString(b, 3, m.TokenType)
	}
	if m.ExpiresIn != 0 {
		b = appendInt64(b, 4, m.ExpiresIn)
	}
	if m.RefreshToken != "" {
		b = appendString(b, 5, m.RefreshToken)
	}
	return b, nil
}

func (m *RefreshTokenRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.AccessToken = d.stringVal()
		case 3:
			m.TokenType = d.stringVal()
		case 4:
			m.ExpiresIn = d.int64Val()
		case 5:
			m.RefreshToken = d.stringVal()
		}
	}
	return d.err()
}

// AccountsTokenInvalidatedEvent is pushed when the server revokes an access token.
type AccountsTokenInvalidatedEvent struct {
	CtidTraderAccountIDs []int64
	Reason               string
}

func (*AccountsTokenInvalidatedEvent) PayloadType() PayloadType {
	return PayloadTypeAccountsTokenInvalidatedEvent
}

func (m *AccountsTokenInvalidatedEvent) MarshalBinary() ([]byte, error) {
	var b []byte
	for _, id := range m.CtidTraderAccountIDs {
		b = appendInt64(b, 2, id)
	}
	if m.Reason != "" {
		b = appendString(b, 3, m.Reason)
	}
	return b, nil
}

func (m *AccountsTokenInvalidatedEvent) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountIDs = d.int64List(m.CtidTraderAccountIDs)
		case 3:
			m.Reason = d.stringVal()
		}
	}
	return d.err()
}

// ClientDisconnectEvent is pushed right before the server drops the connection.
type ClientDisconnectEvent struct {
	Reason string
}

func (*ClientDisconnectEvent) PayloadType() PayloadType { return PayloadTypeClientDisconnectEvent }

func (m *ClientDisconnectEvent) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.Reason != "" {
		b = appendString(b, 2, m.Reason)
	}
	return b, nil
}

func (m *ClientDisconnectEvent) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		if d.num == 2 {
			m.Reason = d.stringVal()
		}
	}
	return d.err()
}
