package message

import "mechlink/pkg/wire"

// SerializedMessage wraps an already-encoded message for transfer over a
// multiplexed channel. Only title, id and payload travel on the wire;
// dataType and timestamp ride along for diagnostics and are carried
// separately by Information records.
type SerializedMessage struct {
    Title     string
    DataType  string
    Timestamp int64
    ID        int32
    Msg       []byte
}

func (m *SerializedMessage) Append(dst []byte) []byte {
    return wire.AppendValues(dst, m.Title, m.ID, m.Msg)
}

func (m *SerializedMessage) Put(b []byte) []byte {
    b = wire.PutString(b, m.Title)
    b = wire.PutInt32(b, m.ID)
    return wire.PutBytes(b, m.Msg)
}

func (m *SerializedMessage) Scan(b []byte) []byte {
    return wire.ScanValues(b, &m.Title, &m.ID, &m.Msg)
}

func (m *SerializedMessage) Size() int {
    return wire.SizeValues(m.Title, m.ID, m.Msg)
}

func (m *SerializedMessage) TypeName() string { return "mechlink::msg::SerializedMessage" }

// Information is the diagnostic record for one multiplexed message: when it
// was captured and what the payload claims to be. It never gates decoding.
type Information struct {
    Timestamp int64
    Title     string
    DataType  string
    ID        int32
}

func (m *Information) Append(dst []byte) []byte {
    return wire.AppendValues(dst, m.Timestamp, m.Title, m.DataType, m.ID)
}

func (m *Information) Put(b []byte) []byte {
    b = wire.PutInt64(b, m.Timestamp)
    b = wire.PutString(b, m.Title)
    b = wire.PutString(b, m.DataType)
    return wire.PutInt32(b, m.ID)
}

func (m *Information) Scan(b []byte) []byte {
    return wire.ScanValues(b, &m.Timestamp, &m.Title, &m.DataType, &m.ID)
}

func (m *Information) Size() int {
    return wire.SizeValues(m.Timestamp, m.Title, m.DataType, m.ID)
}

func (m *Information) TypeName() string { return "mechlink::msg::MessageInformation" }

func (m *Information) Equal(other *Information) bool {
    return m.Timestamp == other.Timestamp && m.Title == other.Title &&
        m.DataType == other.DataType && m.ID == other.ID
}

// Info extracts the diagnostic record from an envelope at capture time.
func (m *SerializedMessage) Info() Information {
    return Information{Timestamp: m.Timestamp, Title: m.Title, DataType: m.DataType, ID: m.ID}
}
