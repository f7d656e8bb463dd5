package xip

// 地址分类谓词。全部是针对 hi/lo 的纯位掩码比较：无副作用、零分配。
// IPv4 判断同时覆盖 IPv4-compatible 与 IPv4-mapped 两种嵌入编码，
// IPv6 判断针对原生 IPv6 保留段。

// v4 返回 IPv4 地址的低 32 位本体。非 IPv4 族返回 (0, false)。
func (a Addr) v4() (uint32, bool) {
	if !a.Is4() {
		return 0, false
	}
	return uint32(a.lo), true
}

// IsUnspecified 报告 a 是否为未指定地址：
// "::"（等价于 0.0.0.0）或 "::ffff:0.0.0.0"。
func (a Addr) IsUnspecified() bool {
	return a.hi == 0 && (a.lo == 0 || a.lo == v4MappedMarker)
}

// IsLoopback 报告 a 是否为环回地址：
// "::1" 或 IPv4 127.0.0.0/8（两种嵌入编码均识别）。
func (a Addr) IsLoopback() bool {
	if a.hi == 0 && a.lo == 1 {
		return true
	}
	if v, ok := a.v4(); ok {
		return v>>24 == 127
	}
	return false
}

// IsLinkLocal 报告 a 是否为链路本地地址：
// IPv4 169.254.0.0/16 或 IPv6 fe80::/10。
func (a Addr) IsLinkLocal() bool {
	if v, ok := a.v4(); ok {
		return v>>16 == 0xA9FE
	}
	return a.hi&0xFFC0_0000_0000_0000 == 0xFE80_0000_0000_0000
}

// IsMulticast 报告 a 是否为多播地址：
// IPv4 224.0.0.0/4 或 IPv6 ff00::/8。
func (a Addr) IsMulticast() bool {
	if v, ok := a.v4(); ok {
		return v>>28 == 0xE
	}
	return a.hi>>56 == 0xFF
}

// IsUniqueLocal 报告 a 是否为本地专用地址：
// IPv4 私有段 10.0.0.0/8、172.16.0.0/12、192.168.0.0/16，
// 或 IPv6 Unique Local fc00::/7。
func (a Addr) IsUniqueLocal() bool {
	if v, ok := a.v4(); ok {
		return v>>24 == 10 || v>>20 == 0xAC1 || v>>16 == 0xC0A8
	}
	return a.hi>>57 == 0x7E
}

// Is6to4 报告 a 是否属于 6to4 过渡机制段：
// IPv4 中继段 192.88.99.0/24 或 IPv6 2002::/16。
func (a Addr) Is6to4() bool {
	if v, ok := a.v4(); ok {
		return v>>8 == 0xC05863
	}
	return a.hi>>48 == 0x2002
}

// IsDocumentation 报告 a 是否为文档示例段：
// IPv4 TEST-NET-1/2/3（192.0.2.0/24、198.51.100.0/24、203.0.113.0/24）
// 或 IPv6 2001:db8::/32。
func (a Addr) IsDocumentation() bool {
	if v, ok := a.v4(); ok {
		seg := v >> 8
		return seg == 0xC00002 || seg == 0xC63364 || seg == 0xCB0071
	}
	return a.hi>>32 == 0x2001_0DB8
}

// IsBenchmark 报告 a 是否为网络基准测试段：
// IPv4 198.18.0.0/15 或 IPv6 2001:2::/48。
func (a Addr) IsBenchmark() bool {
	if v, ok := a.v4(); ok {
		return v&0xFFFE_0000 == 0xC612_0000
	}
	return a.hi>>16 == 0x2001_0002_0000
}

// IsBroadcast 报告 a 是否为 IPv4 有限广播地址 255.255.255.255。
// IPv6 没有广播地址，非 IPv4 族恒为 false。
func (a Addr) IsBroadcast() bool {
	v, ok := a.v4()
	return ok && v == 0xFFFF_FFFF
}

// IsOrchid 报告 a 是否属于 ORCHID 段：
// 2001:10::/28 或 ORCHIDv2 的 2001:20::/28。仅 IPv6。
func (a Addr) IsOrchid() bool {
	if a.Is4() {
		return false
	}
	seg := a.hi >> 36
	return seg == 0x2001001 || seg == 0x2001002
}

// Classification 汇总一个地址的全部分类结果。
// 各标志不互斥：例如 127.0.0.1 同时满足 Is4 和 IsLoopback。
type Classification struct {
	Is4             bool
	Is6             bool
	Is4Compatible   bool
	Is4Mapped       bool
	IsUnspecified   bool
	IsLoopback      bool
	IsLinkLocal     bool
	IsMulticast     bool
	IsUniqueLocal   bool
	Is6to4          bool
	IsDocumentation bool
	IsBenchmark     bool
	IsBroadcast     bool
	IsOrchid        bool
}

// Classify 返回 addr 的分类信息。
func Classify(addr Addr) Classification {
	return Classification{
		Is4:             addr.Is4(),
		Is6:             addr.Is6(),
		Is4Compatible:   addr.Is4Compatible(),
		Is4Mapped:       addr.Is4Mapped(),
		IsUnspecified:   addr.IsUnspecified(),
		IsLoopback:      addr.IsLoopback(),
		IsLinkLocal:     addr.IsLinkLocal(),
		IsMulticast:     addr.IsMulticast(),
		IsUniqueLocal:   addr.IsUniqueLocal(),
		Is6to4:          addr.Is6to4(),
		IsDocumentation: addr.IsDocumentation(),
		IsBenchmark:     addr.IsBenchmark(),
		IsBroadcast:     addr.IsBroadcast(),
		IsOrchid:        addr.IsOrchid(),
	}
}

// String 按特殊性优先级返回最具体的分类标签。
func (c Classification) String() string {
	switch {
	case c.IsUnspecified:
		return "unspecified"
	case c.IsLoopback:
		return "loopback"
	case c.IsBroadcast:
		return "broadcast"
	case c.IsMulticast:
		return "multicast"
	case c.IsLinkLocal:
		return "link-local"
	case c.IsUniqueLocal:
		return "unique-local"
	case c.IsDocumentation:
		return "documentation"
	case c.IsBenchmark:
		return "benchmark"
	case c.Is6to4:
		return "6to4"
	case c.IsOrchid:
		return "orchid"
	default:
		return "global"
	}
}
