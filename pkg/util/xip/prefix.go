package xip

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix 表示一个 CIDR 网络范围：一个 [Addr] 加一个前缀长度。
//
// Prefix 是不可变值类型，可直接比较（==）和用作 map key。
// 相等性定义在 (address, bits) 二元组本身之上：10.0.0.5/24 与
// 10.0.0.0/24 描述同一网络但并不相等，比较网络范围请先 [Prefix.Normalize]。
//
// 零值 Prefix{} 等于 0.0.0.0/0（全零地址按 IPv4 族处理）。
type Prefix struct {
	addr Addr
	bits int
}

// PrefixFrom 用地址和前缀长度创建 Prefix。
// bits 超出地址族范围（IPv4: 0-32，IPv6: 0-128）时返回 [ErrInvalidPrefixBits]。
func PrefixFrom(addr Addr, bits int) (Prefix, error) {
	if bits < 0 || bits > addr.BitLen() {
		return Prefix{}, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidPrefixBits, bits, addr.BitLen())
	}
	return Prefix{addr: addr, bits: bits}, nil
}

// ParsePrefix 解析 "<address>[/<bits>]" 形式的 CIDR 文本。
// 缺省 "/<bits>" 时取地址族最大宽度（单主机网络）。
// 地址部分支持 [ParseAddr] 的全部格式。
func ParsePrefix(s string) (Prefix, error) {
	slash := strings.LastIndexByte(s, '/')
	if slash < 0 {
		addr, err := ParseAddr(s)
		if err != nil {
			return Prefix{}, err
		}
		return Prefix{addr: addr, bits: addr.BitLen()}, nil
	}
	addr, err := ParseAddr(s[:slash])
	if err != nil {
		return Prefix{}, err
	}
	bits, err := parsePrefixBits(s[slash+1:])
	if err != nil {
		return Prefix{}, err
	}
	return PrefixFrom(addr, bits)
}

// MustParsePrefix 类似 [ParsePrefix]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(fmt.Sprintf("xip.MustParsePrefix(%q): %v", s, err))
	}
	return p
}

// parsePrefixBits 解析前缀长度后缀：1-3 位纯十进制数字。
func parsePrefixBits(s string) (int, error) {
	if s == "" || len(s) > 3 {
		return 0, fmt.Errorf("%w: invalid length %q", ErrInvalidPrefixBits, s)
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid length %q", ErrInvalidPrefixBits, s)
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// Addr 返回构造时给定的代表地址（未必是网络地址本身）。
func (p Prefix) Addr() Addr { return p.addr }

// Bits 返回前缀长度。
func (p Prefix) Bits() int { return p.bits }

// String 返回 "<address>/<bits>" 形式的文本，地址部分为规范形式。
func (p Prefix) String() string {
	return p.addr.String() + "/" + strconv.Itoa(p.bits)
}

// mask32 返回前 bits 位为 1 的 32 位掩码。
// bits 为 0 时显式返回 0：与寄存器位宽等量的移位在部分平台上是
// 未定义或空操作，0/32 两端不能统一用移位表达。
func mask32(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - bits)
}

// From 返回网络范围的第一个地址（网络地址）。
//
// IPv4 仅对 lo 的低 32 位施加掩码，标记位保持不变；IPv6 在 0、64、128
// 三个移位边界上显式分支，避免按 "allOnes << (width-bits)" 统一计算时
// 落在 64 位移位宽度上。
func (p Prefix) From() Addr {
	a := p.addr
	if a.Is4() {
		m := mask32(p.bits)
		return Addr{lo: a.lo&v4MarkerMask | uint64(uint32(a.lo)&m)}
	}
	switch {
	case p.bits == 0:
		return Addr{}
	case p.bits < 64:
		m := ^uint64(0) << (64 - p.bits)
		return Addr{hi: a.hi & m}
	case p.bits == 64:
		return Addr{hi: a.hi}
	case p.bits < 128:
		m := ^uint64(0) << (128 - p.bits)
		return Addr{hi: a.hi, lo: a.lo & m}
	default:
		return a
	}
}

// To 返回网络范围的最后一个地址（主机位全一）。
// 分支结构与 [Prefix.From] 对应。
func (p Prefix) To() Addr {
	a := p.addr
	if a.Is4() {
		m := mask32(p.bits)
		return Addr{lo: a.lo&v4MarkerMask | uint64(uint32(a.lo)&m|^m)}
	}
	switch {
	case p.bits == 0:
		return Addr{hi: ^uint64(0), lo: ^uint64(0)}
	case p.bits < 64:
		m := ^uint64(0) << (64 - p.bits)
		return Addr{hi: a.hi&m | ^m, lo: ^uint64(0)}
	case p.bits == 64:
		return Addr{hi: a.hi, lo: ^uint64(0)}
	case p.bits < 128:
		m := ^uint64(0) << (128 - p.bits)
		return Addr{hi: a.hi, lo: a.lo&m | ^m}
	default:
		return a
	}
}

// Contains 报告 addr 是否落在 p 的网络范围内。
//
// 地址族不同（含 IPv4 两种嵌入编码的标记位不同）恒为 false，即使
// 前缀长度为 0。比较直接在掩码位上进行，不构造 From/To 中间值。
func (p Prefix) Contains(addr Addr) bool {
	if p.addr.Is4() != addr.Is4() {
		return false
	}
	if p.addr.Is4() {
		if p.addr.lo&v4MarkerMask != addr.lo&v4MarkerMask {
			return false
		}
		m := mask32(p.bits)
		return uint32(p.addr.lo)&m == uint32(addr.lo)&m
	}
	switch {
	case p.bits == 0:
		return true
	case p.bits < 64:
		m := ^uint64(0) << (64 - p.bits)
		return p.addr.hi&m == addr.hi&m
	case p.bits == 64:
		return p.addr.hi == addr.hi
	case p.bits < 128:
		m := ^uint64(0) << (128 - p.bits)
		return p.addr.hi == addr.hi && p.addr.lo&m == addr.lo&m
	default:
		return p.addr == addr
	}
}

// ContainsPrefix 报告 other 的整个网络范围是否落在 p 内：
// p 的前缀不长于 other 且 p 包含 other 的代表地址。
func (p Prefix) ContainsPrefix(other Prefix) bool {
	return p.bits <= other.bits && p.Contains(other.addr)
}

// Normalize 返回代表地址归一为网络地址（[Prefix.From]）的等价前缀。
// 已归一时返回原值。
func (p Prefix) Normalize() Prefix {
	from := p.From()
	if from == p.addr {
		return p
	}
	return Prefix{addr: from, bits: p.bits}
}

// Compare 按 (地址, 前缀长度) 顺序比较两个前缀。
// 返回值：-1 (p < q)，0 (p == q)，1 (p > q)。
func (p Prefix) Compare(q Prefix) int {
	if c := p.addr.Compare(q.addr); c != 0 {
		return c
	}
	switch {
	case p.bits < q.bits:
		return -1
	case p.bits > q.bits:
		return 1
	default:
		return 0
	}
}
