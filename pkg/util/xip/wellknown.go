package xip

// 保留网段常量表。每个网段以归一化的 [Prefix] 值暴露，
// 供访问控制规则等调用方直接引用。
var (
	unspecifiedV4  = MustParsePrefix("0.0.0.0/32")
	broadcastV4    = MustParsePrefix("255.255.255.255/32")
	loopbackV4     = MustParsePrefix("127.0.0.0/8")
	loopbackV6     = MustParsePrefix("[::1]")
	linkLocalV4    = MustParsePrefix("169.254.0.0/16")
	linkLocalV6    = MustParsePrefix("fe80::/10")
	multicastV4    = MustParsePrefix("224.0.0.0/4")
	multicastV6    = MustParsePrefix("ff00::/8")
	privateA       = MustParsePrefix("10.0.0.0/8")
	privateB       = MustParsePrefix("172.16.0.0/12")
	privateC       = MustParsePrefix("192.168.0.0/16")
	uniqueLocalV6  = MustParsePrefix("fc00::/7")
	testNet1       = MustParsePrefix("192.0.2.0/24")
	testNet2       = MustParsePrefix("198.51.100.0/24")
	testNet3       = MustParsePrefix("203.0.113.0/24")
	documentation6 = MustParsePrefix("2001:db8::/32")
	benchmarkV4    = MustParsePrefix("198.18.0.0/15")
	benchmarkV6    = MustParsePrefix("2001:2::/48")
	sixToFourV4    = MustParsePrefix("192.88.99.0/24")
	sixToFourV6    = MustParsePrefix("2002::/16")
	orchid         = MustParsePrefix("2001:10::/28")
	orchidV2       = MustParsePrefix("2001:20::/28")
)

// UnspecifiedIPv4 返回单主机网络 0.0.0.0/32。
func UnspecifiedIPv4() Prefix { return unspecifiedV4 }

// BroadcastIPv4 返回有限广播单主机网络 255.255.255.255/32。
func BroadcastIPv4() Prefix { return broadcastV4 }

// LoopbackIPv4 返回环回段 127.0.0.0/8。
func LoopbackIPv4() Prefix { return loopbackV4 }

// LoopbackIPv6 返回环回单主机网络 ::1。
// 注意："::1" 的位模式携带 IPv4-compatible 标记（hi=0 且 lo 高 32 位
// 为零），族位宽为 32，因此该前缀是 ::1/32 而非 ::1/128。
func LoopbackIPv6() Prefix { return loopbackV6 }

// LinkLocalIPv4 返回链路本地段 169.254.0.0/16。
func LinkLocalIPv4() Prefix { return linkLocalV4 }

// LinkLocalIPv6 返回链路本地段 fe80::/10。
func LinkLocalIPv6() Prefix { return linkLocalV6 }

// MulticastIPv4 返回多播段 224.0.0.0/4。
func MulticastIPv4() Prefix { return multicastV4 }

// MulticastIPv6 返回多播段 ff00::/8。
func MulticastIPv6() Prefix { return multicastV6 }

// PrivateIPv4A 返回私有段 10.0.0.0/8。
func PrivateIPv4A() Prefix { return privateA }

// PrivateIPv4B 返回私有段 172.16.0.0/12。
func PrivateIPv4B() Prefix { return privateB }

// PrivateIPv4C 返回私有段 192.168.0.0/16。
func PrivateIPv4C() Prefix { return privateC }

// UniqueLocalIPv6 返回本地专用段 fc00::/7。
func UniqueLocalIPv6() Prefix { return uniqueLocalV6 }

// DocumentationNet1 返回文档示例段 TEST-NET-1（192.0.2.0/24）。
func DocumentationNet1() Prefix { return testNet1 }

// DocumentationNet2 返回文档示例段 TEST-NET-2（198.51.100.0/24）。
func DocumentationNet2() Prefix { return testNet2 }

// DocumentationNet3 返回文档示例段 TEST-NET-3（203.0.113.0/24）。
func DocumentationNet3() Prefix { return testNet3 }

// DocumentationIPv6 返回文档示例段 2001:db8::/32。
func DocumentationIPv6() Prefix { return documentation6 }

// BenchmarkIPv4 返回网络基准测试段 198.18.0.0/15。
func BenchmarkIPv4() Prefix { return benchmarkV4 }

// BenchmarkIPv6 返回网络基准测试段 2001:2::/48。
func BenchmarkIPv6() Prefix { return benchmarkV6 }

// SixToFourIPv4 返回 6to4 中继段 192.88.99.0/24。
func SixToFourIPv4() Prefix { return sixToFourV4 }

// SixToFourIPv6 返回 6to4 段 2002::/16。
func SixToFourIPv6() Prefix { return sixToFourV6 }

// OrchidIPv6 返回 ORCHID 段 2001:10::/28。
func OrchidIPv6() Prefix { return orchid }

// OrchidV2IPv6 返回 ORCHIDv2 段 2001:20::/28。
func OrchidV2IPv6() Prefix { return orchidV2 }
