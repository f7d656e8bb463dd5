package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdParse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdParse(&buf, []string{"192.0.2.127", "2001:db8::1"}))

	out := buf.String()
	assert.Contains(t, out, "规范形式: 192.0.2.127")
	assert.Contains(t, out, "展开形式: 0000:0000:0000:0000:0000:0000:c000:027f")
	assert.Contains(t, out, "地址族:   IPv4 (32 位)")
	assert.Contains(t, out, "规范形式: 2001:db8::1")
	assert.Contains(t, out, "地址族:   IPv6 (128 位)")
	assert.Contains(t, out, "分类:     documentation")
}

func TestCmdParse_errors(t *testing.T) {
	var buf bytes.Buffer

	var usageErr *usageError
	require.ErrorAs(t, cmdParse(&buf, nil), &usageErr)
	require.ErrorAs(t, cmdParse(&buf, []string{"1.2.3.999"}), &usageErr)
}

func TestCmdCIDR(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdCIDR(&buf, []string{"192.0.2.127/24"}))

	out := buf.String()
	assert.Contains(t, out, "网络:     192.0.2.0/24")
	assert.Contains(t, out, "起始地址: 192.0.2.0")
	assert.Contains(t, out, "结束地址: 192.0.2.255")
}

func TestCmdCIDR_errors(t *testing.T) {
	var buf bytes.Buffer

	var usageErr *usageError
	require.ErrorAs(t, cmdCIDR(&buf, nil), &usageErr)
	require.ErrorAs(t, cmdCIDR(&buf, []string{"10.0.0.0/33"}), &usageErr)
}

func TestCmdContains(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantExit bool
	}{
		{"address inside", []string{"2001:db8:1:ff::/64", "2001:db8:1:ff::1"}, "true\n", false},
		{"address outside", []string{"2001:db8:1:ff::/64", "2001:db8:2::1"}, "false\n", true},
		{"prefix inside", []string{"2001:db8:1:ff::/64", "2001:db8:1:ff::1/112"}, "true\n", false},
		{"prefix outside", []string{"10.0.0.0/24", "10.0.0.0/8"}, "false\n", true},
		{"marker mismatch", []string{"10.0.0.0/8", "::ffff:10.1.2.3"}, "false\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := cmdContains(&buf, tt.args)
			assert.Equal(t, tt.wantOut, buf.String())

			if tt.wantExit {
				var exitErr *exitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 1, exitErr.code)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCmdContains_usage(t *testing.T) {
	var buf bytes.Buffer

	var usageErr *usageError
	require.ErrorAs(t, cmdContains(&buf, []string{"10.0.0.0/8"}), &usageErr)
	require.ErrorAs(t, cmdContains(&buf, []string{"bogus", "10.0.0.1"}), &usageErr)
	require.ErrorAs(t, cmdContains(&buf, []string{"10.0.0.0/8", "bogus"}), &usageErr)
}

func TestCmdCoalesce(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdCoalesce(&buf, []string{"1.2.3.0/25", "1.2.3.128/25"}))
	assert.Equal(t, "1.2.3.0/24\n", buf.String())

	buf.Reset()
	err := cmdCoalesce(&buf, []string{"1.2.3.125/32", "1.2.3.126/32"})
	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Equal(t, "不可合并\n", buf.String())
}

func TestCmdMerge_args(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, cmdMerge(&buf, "", []string{"10.0.0.0/25", "10.0.0.128/25", "10.0.1.0/24"}))
	assert.Equal(t, "10.0.0.0/23\n", buf.String())
}

func TestCmdMerge_usage(t *testing.T) {
	var buf bytes.Buffer

	var usageErr *usageError
	require.ErrorAs(t, cmdMerge(&buf, "", nil), &usageErr)
	require.ErrorAs(t, cmdMerge(&buf, "", []string{"bogus"}), &usageErr)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"contains hit", []string{"xipcalc", "contains", "10.0.0.0/8", "10.1.2.3"}, 0},
		{"contains miss", []string{"xipcalc", "contains", "10.0.0.0/8", "11.1.2.3"}, 1},
		{"coalesce ok", []string{"xipcalc", "coalesce", "1.2.3.0/25", "1.2.3.128/25"}, 0},
		{"coalesce miss", []string{"xipcalc", "coalesce", "10.0.0.0/24", "10.0.2.0/24"}, 1},
		{"missing args", []string{"xipcalc", "parse"}, 2},
		{"bad address", []string{"xipcalc", "parse", "1.2.3.999"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
