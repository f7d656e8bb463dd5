package xip

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// 与标准库 [net/netip] 及 [go4.org/netipx] 的互转桥。
//
// 对应关系：IPv4-compatible ↔ netip 纯 IPv4，IPv4-mapped ↔ netip
// 的 4-in-6 形式，纯 IPv6 ↔ 16 字节形式。注意 netip 一侧没有
// compatible 标记的概念，"::" 和 "::1" 会转换为 0.0.0.0 和 0.0.0.1。

// Netip 将地址转换为 [netip.Addr]。
func (a Addr) Netip() netip.Addr {
	if a.Is4Compatible() {
		b, _ := a.As4()
		return netip.AddrFrom4(b)
	}
	return netip.AddrFrom16(a.As16())
}

// AddrFromNetip 从 [netip.Addr] 创建地址。
// 拒绝零值和带 IPv6 zone ID 的地址（zone 信息无处可放，静默丢弃
// 会导致后续规则匹配偏差）。
func AddrFromNetip(addr netip.Addr) (Addr, error) {
	if !addr.IsValid() {
		return Addr{}, fmt.Errorf("%w: zero netip.Addr", ErrInvalidFormat)
	}
	if addr.Zone() != "" {
		return Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidFormat, addr)
	}
	if addr.Is4() {
		return AddrFrom4(addr.As4()), nil
	}
	if addr.Is4In6() {
		return AddrFrom4Mapped(addr.Unmap().As4()), nil
	}
	return AddrFrom16(addr.As16()), nil
}

// Netip 将前缀转换为 [netip.Prefix]。
// IPv4 族（两种编码）统一转换为 netip 纯 IPv4 前缀。
func (p Prefix) Netip() netip.Prefix {
	return netip.PrefixFrom(p.addr.Netip().Unmap(), p.bits)
}

// PrefixFromNetip 从 [netip.Prefix] 创建前缀。
// 4-in-6 形式的前缀会先去映射，前缀长度换算回 IPv4 位宽。
func PrefixFromNetip(np netip.Prefix) (Prefix, error) {
	if !np.IsValid() {
		return Prefix{}, fmt.Errorf("%w: zero netip.Prefix", ErrInvalidFormat)
	}
	a := np.Addr()
	bits := np.Bits()
	if a.Is4In6() {
		a = a.Unmap()
		bits -= 96
		if bits < 0 {
			return Prefix{}, fmt.Errorf("%w: 4-in-6 prefix wider than /96", ErrInvalidPrefixBits)
		}
	}
	addr, err := AddrFromNetip(a)
	if err != nil {
		return Prefix{}, err
	}
	return PrefixFrom(addr, bits)
}

// IPRange 返回前缀对应的 [netipx.IPRange]（先归一到网络地址）。
func (p Prefix) IPRange() netipx.IPRange {
	return netipx.RangeOfPrefix(p.Netip().Masked())
}

// MergePrefixes 把一组前缀聚合为数量最少的互不重叠前缀列表。
// 重叠、嵌套和相邻的范围都会被合并，结果已排序且已归一化。
//
// 与逐对的 [Prefix.Coalesce] 不同，这里借助 [netipx.IPSetBuilder]
// 做 n 路聚合，用于批量规则表的压缩。IPv4-mapped 编码的前缀经过
// 桥转换后以 IPv4-compatible 编码返回。
// 空切片或 nil 返回 (nil, nil)。
func MergePrefixes(prefixes []Prefix) ([]Prefix, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for _, p := range prefixes {
		b.AddPrefix(p.Netip().Masked())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("xip: merge prefixes: %w", err)
	}
	nps := set.Prefixes()
	out := make([]Prefix, 0, len(nps))
	for _, np := range nps {
		p, err := PrefixFromNetip(np)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
