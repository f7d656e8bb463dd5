package xip

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantHi uint64
		wantLo uint64
	}{
		{
			name:   "ipv4 dotted decimal",
			input:  "192.0.2.127",
			wantLo: 0xC000_027F,
		},
		{
			name:   "ipv4 min",
			input:  "0.0.0.0",
			wantLo: 0,
		},
		{
			name:   "ipv4 max",
			input:  "255.255.255.255",
			wantLo: 0xFFFF_FFFF,
		},
		{
			name:   "ipv4 leading zeros",
			input:  "010.001.000.009",
			wantLo: 0x0A01_0009,
		},
		{
			name:   "ipv6 full eight groups",
			input:  "1:2:3:4:5:6:7:8",
			wantHi: 0x0001_0002_0003_0004,
			wantLo: 0x0005_0006_0007_0008,
		},
		{
			name:   "ipv6 uppercase hex",
			input:  "2001:0DB8:0:0:0:0:0:1",
			wantHi: 0x2001_0DB8_0000_0000,
			wantLo: 1,
		},
		{
			name:  "all zero",
			input: "::",
		},
		{
			name:   "loopback",
			input:  "::1",
			wantLo: 1,
		},
		{
			name:   "ellipsis at start",
			input:  "::8",
			wantLo: 8,
		},
		{
			name:   "ellipsis at end",
			input:  "fe80::",
			wantHi: 0xFE80_0000_0000_0000,
		},
		{
			name:   "ellipsis in middle",
			input:  "2001:db8::1:2:3:4",
			wantHi: 0x2001_0DB8_0000_0000,
			wantLo: 0x0001_0002_0003_0004,
		},
		{
			name:   "ellipsis compresses one group",
			input:  "1:2:3::5:6:7:8",
			wantHi: 0x0001_0002_0003_0000,
			wantLo: 0x0005_0006_0007_0008,
		},
		{
			name:   "ipv4 mapped",
			input:  "::ffff:192.0.2.1",
			wantLo: 0x0000_FFFF_C000_0201,
		},
		{
			name:   "ipv4 compatible spelled out",
			input:  "::192.0.2.1",
			wantLo: 0xC000_0201,
		},
		{
			name:   "ipv4 tail after groups",
			input:  "1:2:3:4:5:6:7.8.9.10",
			wantHi: 0x0001_0002_0003_0004,
			wantLo: 0x0005_0006_0708_090A,
		},
		{
			name:   "ipv4 tail after ellipsis group",
			input:  "1::2:3.4.5.6",
			wantHi: 0x0001_0000_0000_0000,
			wantLo: 0x0000_0002_0304_0506,
		},
		{
			name:   "brackets stripped",
			input:  "[::1]",
			wantLo: 1,
		},
		{
			name:   "bracketed ipv6",
			input:  "[2001:db8::1]",
			wantHi: 0x2001_0DB8_0000_0000,
			wantLo: 1,
		},
		{
			name:   "surrounding whitespace trimmed",
			input:  "  10.0.0.1\t",
			wantLo: 0x0A00_0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddr(tt.input)
			require.NoError(t, err)
			hi, lo := addr.Halves()
			assert.Equal(t, tt.wantHi, hi, "hi")
			assert.Equal(t, tt.wantLo, lo, "lo")
		})
	}
}

func TestParseAddr_errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmpty},
		{"whitespace only", "   ", ErrEmpty},
		{"empty brackets", "[]", ErrEmpty},
		{"too long", strings.Repeat("1", 46), ErrTooLong},
		{"octet over 255", "1.2.3.256", ErrInvalidOctet},
		{"octet four digits", "1.2.3.0004", ErrInvalidOctet},
		{"octet not a number", "1.2.3.x", ErrInvalidOctet},
		{"octet empty", "1.2..3", ErrInvalidOctet},
		{"octet negative", "1.2.3.-4", ErrInvalidOctet},
		{"three octets", "1.2.3", ErrInvalidFormat},
		{"five octets", "1.2.3.4.5", ErrInvalidFormat},
		{"colon after dotted tail", "1.2.3.4:5", ErrInvalidFormat},
		{"hex group too long", "12345::", ErrInvalidHexGroup},
		{"hex group bad char", "1:2:3:g::", ErrInvalidHexGroup},
		{"hex group empty", ":1:2:3:4:5:6:7", ErrInvalidHexGroup},
		{"trailing lone colon", "1:2:3:4:5:6:7:", ErrInvalidHexGroup},
		{"zone id rejected", "fe80::1%eth0", ErrInvalidHexGroup},
		{"not enough groups", "1:2:3:4:5:6:7", ErrNotEnoughColons},
		{"too many groups", "1:2:3:4:5:6:7:8:9", ErrTooManyColons},
		{"ellipsis with eight groups", "1:2:3:4:5:6:7:8::", ErrTooManyColons},
		{"ellipsis with eight groups front", "::1:2:3:4:5:6:7:8", ErrTooManyColons},
		{"double ellipsis", "1::2::3", ErrDoubleEllipsis},
		{"quad colon", "::::", ErrDoubleEllipsis},
		{"ipv4 tail leaves no room", "1:2:3:4:5:6:7.8.9.10:11", ErrInvalidFormat},
		{"ipv4 tail too many groups", "1:2:3:4:5:6:7:8.9.10.11", ErrTooManyColons},
		{"ipv4 tail not enough groups", "1:2:3:4:5:6.7.8.9", ErrNotEnoughColons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddr(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseAddr_markerDistinction(t *testing.T) {
	compat := MustParseAddr("192.0.2.1")
	mapped := MustParseAddr("::ffff:192.0.2.1")

	assert.True(t, compat.Is4Compatible())
	assert.True(t, mapped.Is4Mapped())
	assert.True(t, compat.Is4())
	assert.True(t, mapped.Is4())
	// 两种嵌入编码按位比较不相等。
	assert.NotEqual(t, compat, mapped)
}

func TestMustParseAddr_panics(t *testing.T) {
	assert.Panics(t, func() { MustParseAddr("not an address") })
	assert.NotPanics(t, func() { MustParseAddr("203.0.113.9") })
}
