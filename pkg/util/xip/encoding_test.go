package xip

import (
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ encoding.TextMarshaler   = Addr{}
	_ encoding.TextUnmarshaler = (*Addr)(nil)
	_ json.Marshaler           = Addr{}
	_ json.Unmarshaler         = (*Addr)(nil)
	_ encoding.TextMarshaler   = Prefix{}
	_ encoding.TextUnmarshaler = (*Prefix)(nil)
	_ json.Marshaler           = Prefix{}
	_ json.Unmarshaler         = (*Prefix)(nil)
)

func TestAddrMarshalText(t *testing.T) {
	got, err := MustParseAddr("::ffff:192.0.2.1").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "::ffff:192.0.2.1", string(got))

	got, err = Addr{}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "::", string(got), "零值输出合法文本而非空串")
}

func TestAddrUnmarshalText(t *testing.T) {
	var addr Addr
	require.NoError(t, addr.UnmarshalText([]byte("2001:db8::1")))
	assert.Equal(t, MustParseAddr("2001:db8::1"), addr)

	err := addr.UnmarshalText([]byte(""))
	assert.ErrorIs(t, err, ErrEmpty)

	err = addr.UnmarshalText([]byte("1.2.3.999"))
	assert.ErrorIs(t, err, ErrInvalidOctet)

	var nilAddr *Addr
	assert.ErrorIs(t, nilAddr.UnmarshalText([]byte("::1")), ErrNilReceiver)
}

func TestAddrJSON(t *testing.T) {
	type payload struct {
		Source Addr `json:"source"`
	}

	data, err := json.Marshal(payload{Source: MustParseAddr("192.0.2.127")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"source":"192.0.2.127"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"source":"2001:db8::1"}`), &decoded))
	assert.Equal(t, MustParseAddr("2001:db8::1"), decoded.Source)

	require.NoError(t, json.Unmarshal([]byte(`{"source":null}`), &decoded))
	assert.Equal(t, Addr{}, decoded.Source)

	err = json.Unmarshal([]byte(`{"source":42}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	err = json.Unmarshal([]byte(`{"source":"bogus"}`), &decoded)
	assert.Error(t, err)
}

func TestPrefixMarshalText(t *testing.T) {
	got, err := MustParsePrefix("10.0.0.0/8").MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", string(got))
}

func TestPrefixUnmarshalText(t *testing.T) {
	var p Prefix
	require.NoError(t, p.UnmarshalText([]byte("192.0.2.127/24")))
	assert.Equal(t, MustParsePrefix("192.0.2.127/24"), p)

	require.NoError(t, p.UnmarshalText([]byte("2001:db8::1")))
	assert.Equal(t, 128, p.Bits(), "缺省前缀长度取族位宽")

	assert.ErrorIs(t, p.UnmarshalText([]byte("1.2.3.4/33")), ErrInvalidPrefixBits)

	var nilPrefix *Prefix
	assert.ErrorIs(t, nilPrefix.UnmarshalText([]byte("10.0.0.0/8")), ErrNilReceiver)
}

func TestPrefixJSON(t *testing.T) {
	type rule struct {
		Allow []Prefix `json:"allow"`
	}

	in := rule{Allow: []Prefix{
		MustParsePrefix("10.0.0.0/8"),
		MustParsePrefix("2001:db8::1/64"),
	}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"allow":["10.0.0.0/8","2001:db8::1/64"]}`, string(data))

	var out rule
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var p Prefix
	require.NoError(t, json.Unmarshal([]byte("null"), &p))
	assert.Equal(t, Prefix{}, p)

	assert.ErrorIs(t, json.Unmarshal([]byte("42"), &p), ErrInvalidFormat)
}
