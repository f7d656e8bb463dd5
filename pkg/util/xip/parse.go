package xip

import (
	"fmt"
	"strings"
)

// maxAddrLen 是地址文本的最大长度：带可选方括号的最长合法 IPv6 字面量。
const maxAddrLen = 45

// ParseAddr 解析 IP 地址字符串。
//
// 支持的格式：
//   - IPv4 点分十进制："192.0.2.1"（每段 1-3 位十进制，0-255）
//   - IPv6 冒号十六进制："2001:db8::1"（每组 1-4 位十六进制，
//     至多一个 "::" 压缩标记）
//   - IPv6 内嵌 IPv4 尾部："::ffff:192.0.2.1"（尾部占用末尾 2 组）
//   - 方括号包裹："[::1]"（仅作输入便利，输出不再带括号）
//
// 输入会自动去除首尾空白。点分十进制解析为 IPv4-compatible 编码
// （标记位全零），"::ffff:" 前缀的内嵌形式保留 IPv4-mapped 标记，
// 两者按位比较不相等。
func ParseAddr(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}
	if len(s) > maxAddrLen {
		return Addr{}, fmt.Errorf("%w: %d > %d", ErrTooLong, len(s), maxAddrLen)
	}
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		s = s[1 : len(s)-1]
		if s == "" {
			return Addr{}, ErrEmpty
		}
	}

	// 自右向左定位点分十进制尾部：最后一个 '.' 之后不允许再出现 ':'。
	dot := strings.LastIndexByte(s, '.')
	if dot < 0 {
		var g [8]uint16
		if err := parseColonHex(s, g[:]); err != nil {
			return Addr{}, err
		}
		return Addr{
			hi: uint64(g[0])<<48 | uint64(g[1])<<32 | uint64(g[2])<<16 | uint64(g[3]),
			lo: uint64(g[4])<<48 | uint64(g[5])<<32 | uint64(g[6])<<16 | uint64(g[7]),
		}, nil
	}
	if strings.IndexByte(s[dot+1:], ':') >= 0 {
		return Addr{}, fmt.Errorf("%w: colon after dotted-decimal tail in %q", ErrInvalidFormat, s)
	}

	colon := strings.LastIndexByte(s, ':')
	v4, err := parseDottedQuad(s[colon+1:])
	if err != nil {
		return Addr{}, err
	}
	if colon < 0 {
		// 纯 IPv4：hi=0，标记位为 IPv4-compatible（全零）。
		return Addr{lo: uint64(v4)}, nil
	}

	// 内嵌 IPv4 尾部占用末尾 2 组，剩余 6 组冒号十六进制。
	// head 保留紧邻尾部的分隔冒号："1::1.2.3.4" → "1::"，
	// "::ffff:1.2.3.4" → "::ffff:"。非 "::" 结尾时剥掉该分隔冒号。
	head := s[:colon+1]
	if !strings.HasSuffix(head, "::") {
		head = head[:len(head)-1]
		if head == "" {
			return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
	}
	var g [6]uint16
	if err := parseColonHex(head, g[:]); err != nil {
		return Addr{}, err
	}
	return Addr{
		hi: uint64(g[0])<<48 | uint64(g[1])<<32 | uint64(g[2])<<16 | uint64(g[3]),
		lo: uint64(g[4])<<48 | uint64(g[5])<<32 | uint64(v4),
	}, nil
}

// MustParseAddr 类似 [ParseAddr]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParseAddr(s string) Addr {
	addr, err := ParseAddr(s)
	if err != nil {
		panic(fmt.Sprintf("xip.MustParseAddr(%q): %v", s, err))
	}
	return addr
}

// parseColonHex 将冒号十六进制文本解析进 dst（len(dst) 为 8，
// 带内嵌 IPv4 尾部时为 6）。
//
// 双游标扫描："::" 右侧的组自右向左填充 dst 尾部，左侧的组自左向右
// 填充 dst 头部，中间空缺保持为零；无 "::" 时组数必须与 len(dst)
// 精确一致。"::" 至少压缩一个零组，因此显式组数上限为 len(dst)-1。
func parseColonHex(s string, dst []uint16) error {
	ell := strings.Index(s, "::")
	if ell < 0 {
		n, err := fillRight(s, dst)
		if err != nil {
			return err
		}
		if n < len(dst) {
			return fmt.Errorf("%w: %d groups, need %d", ErrNotEnoughColons, n, len(dst))
		}
		return nil
	}
	if strings.Contains(s[ell+2:], "::") {
		return ErrDoubleEllipsis
	}

	left, right := s[:ell], s[ell+2:]
	var leftN, rightN int
	var err error
	if right != "" {
		if rightN, err = fillRight(right, dst); err != nil {
			return err
		}
	}
	if left != "" {
		if leftN, err = fillLeft(left, dst); err != nil {
			return err
		}
	}
	if leftN+rightN > len(dst)-1 {
		return fmt.Errorf("%w: %d groups with \"::\", max %d", ErrTooManyColons, leftN+rightN, len(dst)-1)
	}
	return nil
}

// fillRight 自右向左切分 s 的冒号分组并填充 dst 尾部，返回填充的组数。
func fillRight(s string, dst []uint16) (int, error) {
	n := 0
	end := len(s)
	for {
		start := strings.LastIndexByte(s[:end], ':') + 1
		w, err := parseHexGroup(s[start:end])
		if err != nil {
			return 0, err
		}
		n++
		if n > len(dst) {
			return 0, fmt.Errorf("%w: more than %d groups", ErrTooManyColons, len(dst))
		}
		dst[len(dst)-n] = w
		if start == 0 {
			return n, nil
		}
		end = start - 1
	}
}

// fillLeft 自左向右切分 s 的冒号分组并填充 dst 头部，返回填充的组数。
func fillLeft(s string, dst []uint16) (int, error) {
	n := 0
	start := 0
	for {
		var group string
		idx := strings.IndexByte(s[start:], ':')
		if idx < 0 {
			group = s[start:]
		} else {
			group = s[start : start+idx]
		}
		w, err := parseHexGroup(group)
		if err != nil {
			return 0, err
		}
		if n >= len(dst) {
			return 0, fmt.Errorf("%w: more than %d groups", ErrTooManyColons, len(dst))
		}
		dst[n] = w
		n++
		if idx < 0 {
			return n, nil
		}
		start += idx + 1
	}
}

// parseHexGroup 解析单个 1-4 位十六进制分组。
func parseHexGroup(s string) (uint16, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty group", ErrInvalidHexGroup)
	}
	if len(s) > 4 {
		return 0, fmt.Errorf("%w: %q longer than 4 digits", ErrInvalidHexGroup, s)
	}
	var v uint16
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidHexGroup, s)
		}
		v = v<<4 | uint16(d)
	}
	return v, nil
}

// parseDottedQuad 解析四段点分十进制（必须恰好三个点）。
func parseDottedQuad(s string) (uint32, error) {
	var v uint32
	segs := 0
	start := 0
	for i := 0; i <= len(s); i++ {
		if i != len(s) && s[i] != '.' {
			continue
		}
		oct, err := parseOctet(s[start:i])
		if err != nil {
			return 0, err
		}
		segs++
		if segs > 4 {
			return 0, fmt.Errorf("%w: more than 4 octets in %q", ErrInvalidFormat, s)
		}
		v = v<<8 | uint32(oct)
		start = i + 1
	}
	if segs != 4 {
		return 0, fmt.Errorf("%w: %d octets in %q, need 4", ErrInvalidFormat, segs, s)
	}
	return v, nil
}

// parseOctet 解析单个 1-3 位十进制八位段（0-255）。
func parseOctet(s string) (uint8, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty octet", ErrInvalidOctet)
	}
	if len(s) > 3 {
		return 0, fmt.Errorf("%w: %q longer than 3 digits", ErrInvalidOctet, s)
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOctet, s)
		}
		v = v*10 + int(c-'0')
	}
	if v > 255 {
		return 0, fmt.Errorf("%w: %q > 255", ErrInvalidOctet, s)
	}
	return uint8(v), nil
}

// hexDigit 返回十六进制字符的数值，无效字符返回 -1。
func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
