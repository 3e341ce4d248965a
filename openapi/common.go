package openapi

// HeartbeatEvent is the keepalive exchanged in both directions.
//
// It carries no fields on the wire; a fresh proto2 message with only a
// defaulted payloadType serializes to zero bytes.
type HeartbeatEvent struct{}

func (*HeartbeatEvent) PayloadType() PayloadType         { return PayloadTypeHeartbeatEvent }
func (*HeartbeatEvent) MarshalBinary() ([]byte, error)   { return nil, nil }
func (*HeartbeatEvent) UnmarshalBinary(data []byte) error { return nil }

// ErrorRes is the generic (non account scoped) server error.
type ErrorRes struct {
	ErrorCode            string
	Description          string
	MaintenanceTimestamp int64
}

func (*ErrorRes) PayloadType() PayloadType { return PayloadTypeErrorRes }

func (m *ErrorRes) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendString(b, 2, m.ErrorCode)
	if m.Description != "" {
		b = appendString(b, 3, m.Description)
	}
	if m.MaintenanceTimestamp != 0 {
		b = appendInt64(b, 4, m.MaintenanceTimestamp)
	}
	return b, nil
}

func (m *ErrorRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.ErrorCode = d.stringVal()
		case 3:
			m.Description = d.stringVal()
		case 4:
			m.MaintenanceTimestamp = d.int64Val()
		}
	}
	return d.err()
}

// OAErrorRes is the account scoped server error.
type OAErrorRes struct {
	CtidTraderAccountID  int64
	ErrorCode            string
	Description          string
	MaintenanceTimestamp int64
}

func (*OAErrorRes) PayloadType() PayloadType { return PayloadTypeOAErrorRes }

func (m *OAErrorRes) MarshalBinary() ([]byte, error) {
	var b []byte
	if m.CtidTraderAccountID != 0 {
		b = appendInt64(b, 2, m.CtidTraderAccountID)
	}
	b = appendString(b, 3, m.ErrorCode)
	if m.Description != "" {
		b = appendString(b, 4, m.Description)
	}
	if m.MaintenanceTimestamp != 0 {
		b = appendInt64(b, 5, m.MaintenanceTimestamp)
	}
	return b, nil
}

func (m *OAErrorRes) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 2:
			m.CtidTraderAccountID = d.int64Val()
		case 3:
			m.ErrorCode = d.stringVal()
		case 4:
			m.Description = d.stringVal()
		case 5:
			m.MaintenanceTimestamp = d.int64Val()
		}
	}
	return d.err()
}
