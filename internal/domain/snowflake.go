package domain

import (
	"strconv"
)

// DiscordEpoch is the first millisecond of 2015 UTC, the zero point for
// Snowflake timestamps.
const DiscordEpoch uint64 = 1420070400000

const (
	workerIDBits  uint64 = 0x3E0000
	processIDBits uint64 = 0x1F000
	incrementBits uint64 = 0xFFF

	timestampShift = 22
	workerIDShift  = 17
	processIDShift = 12
)

// Snowflake is Discord's packed 64-bit identifier. The decomposed fields are
// derived from the raw value, so struct equality agrees with equality of
// Uint64 results. On the wire it is always a decimal string, never a JSON
// number.
type Snowflake struct {
	// Timestamp is milliseconds since the Unix epoch. Always >= DiscordEpoch.
	Timestamp uint64

	WorkerID  uint8
	ProcessID uint8
	Increment uint16
}

// SnowflakeFromUint64 unpacks a raw identifier.
func SnowflakeFromUint64(raw uint64) Snowflake {
	return Snowflake{
		Timestamp: (raw >> timestampShift) + DiscordEpoch,
		WorkerID:  uint8((raw & workerIDBits) >> workerIDShift),
		ProcessID: uint8((raw & processIDBits) >> processIDShift),
		Increment: uint16(raw & incrementBits),
	}
}

// Uint64 packs the fields back into the raw identifier. For any raw value,
// SnowflakeFromUint64(raw).Uint64() == raw.
func (s Snowflake) Uint64() uint64 {
	var raw uint64
	raw |= (s.Timestamp - DiscordEpoch) << timestampShift
	raw |= uint64(s.WorkerID) << workerIDShift
	raw |= uint64(s.ProcessID) << processIDShift
	raw |= uint64(s.Increment)
	return raw
}

// ParseSnowflake parses the decimal wire form. Returns a malformed_id
// ProtocolError for anything that is not an unsigned 64-bit decimal.
func ParseSnowflake(s string) (Snowflake, error) {
	raw, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Snowflake{}, ErrMalformedID(s, err)
	}
	return SnowflakeFromUint64(raw), nil
}

// String renders the decimal wire form.
func (s Snowflake) String() string {
	return strconv.FormatUint(s.Uint64(), 10)
}

// MarshalText implements encoding.TextMarshaler. encoding/json uses it both
// for field values (quoted string) and for map keys in resolved data.
func (s Snowflake) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A JSON number fails the
// enclosing decode, which is intentional: Discord IDs exceed the safe integer
// range of some producers and are specified as strings.
func (s *Snowflake) UnmarshalText(text []byte) error {
	parsed, err := ParseSnowflake(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
