package xip

// Addr 表示一个 128 位 IP 地址值，可以是 IPv4 或 IPv6。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//   - 零值 Addr{} 表示全零地址 "::"（即未指定地址），而非无效值
//
// 内部使用两个 uint64 存储 128 位（hi 为高 64 位，lo 为低 64 位），
// 避免依赖平台原生 128 位整数。
//
// IPv4 地址嵌入在 IPv6 地址空间中：hi 恒为 0，lo 的高 32 位为标记位，
// 区分 IPv4-compatible（标记 0）与 IPv4-mapped（标记 0x0000FFFF）两种编码，
// lo 的低 32 位按网络字节序存放四个八位段。
//
// 使用 [ParseAddr] 或 [MustParseAddr] 创建地址：
//
//	addr, err := xip.ParseAddr("192.0.2.1")
//	addr := xip.MustParseAddr("2001:db8::1")
type Addr struct {
	hi uint64
	lo uint64
}

// IPv4 嵌入编码的标记位。lo 的高 32 位为标记，低 32 位为 IPv4 地址本体。
const (
	v4MarkerMask   uint64 = 0xFFFF_FFFF_0000_0000
	v4MappedMarker uint64 = 0x0000_FFFF_0000_0000
)

// AddrFromHalves 从高低两个 64 位半区创建地址。
// 不做任何校验，调用方需保证位模式有意义。
func AddrFromHalves(hi, lo uint64) Addr {
	return Addr{hi: hi, lo: lo}
}

// AddrFrom4 从 4 字节数组创建 IPv4 地址（IPv4-compatible 编码，与
// [ParseAddr] 解析点分十进制文本的结果一致）。
func AddrFrom4(b [4]byte) Addr {
	return Addr{lo: uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])}
}

// AddrFrom4Mapped 从 4 字节数组创建 IPv4-mapped 编码的地址
// （即 "::ffff:a.b.c.d" 形式）。
func AddrFrom4Mapped(b [4]byte) Addr {
	a := AddrFrom4(b)
	a.lo |= v4MappedMarker
	return a
}

// AddrFrom16 从 16 字节数组创建地址（网络字节序）。
func AddrFrom16(b [16]byte) Addr {
	var a Addr
	for i := range 8 {
		a.hi = a.hi<<8 | uint64(b[i])
		a.lo = a.lo<<8 | uint64(b[i+8])
	}
	return a
}

// Halves 返回地址的高低两个 64 位半区。
func (a Addr) Halves() (hi, lo uint64) {
	return a.hi, a.lo
}

// As16 返回地址的 16 字节表示（网络字节序）。
func (a Addr) As16() [16]byte {
	var b [16]byte
	for i := range 8 {
		b[i] = byte(a.hi >> (56 - 8*i))
		b[i+8] = byte(a.lo >> (56 - 8*i))
	}
	return b
}

// As4 返回 IPv4 地址的 4 字节表示。
// 非 IPv4 地址（见 [Addr.Is4]）返回 (零值, false)。
func (a Addr) As4() ([4]byte, bool) {
	if !a.Is4() {
		return [4]byte{}, false
	}
	v := uint32(a.lo)
	return [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, true
}

// Is4 报告 a 是否为 IPv4 地址，即 hi 为 0 且 lo 的高 32 位
// 为 IPv4-compatible 或 IPv4-mapped 标记之一。
//
// 注意：全零地址 "::" 和 "::1" 的位模式同样满足 IPv4-compatible
// 标记（分别等于 0.0.0.0 和 0.0.0.1），因此按 IPv4 族处理，
// 前缀长度上限为 32。
func (a Addr) Is4() bool {
	if a.hi != 0 {
		return false
	}
	marker := a.lo & v4MarkerMask
	return marker == 0 || marker == v4MappedMarker
}

// Is6 报告 a 是否为（非嵌入 IPv4 的）IPv6 地址。
func (a Addr) Is6() bool {
	return !a.Is4()
}

// Is4Compatible 报告 a 是否为 IPv4-compatible 编码（标记位全零）。
func (a Addr) Is4Compatible() bool {
	return a.hi == 0 && a.lo&v4MarkerMask == 0
}

// Is4Mapped 报告 a 是否为 IPv4-mapped 编码（标记位 0x0000FFFF）。
func (a Addr) Is4Mapped() bool {
	return a.hi == 0 && a.lo&v4MarkerMask == v4MappedMarker
}

// BitLen 返回地址族的位宽：IPv4 返回 32，IPv6 返回 128。
// 该值即为此地址上合法前缀长度的上限。
func (a Addr) BitLen() int {
	if a.Is4() {
		return 32
	}
	return 128
}

// Compare 按 128 位无符号整数顺序比较两个地址（先 hi 后 lo）。
// 返回值：-1 (a < b)，0 (a == b)，1 (a > b)。
func (a Addr) Compare(b Addr) int {
	if a.hi != b.hi {
		if a.hi < b.hi {
			return -1
		}
		return 1
	}
	if a.lo != b.lo {
		if a.lo < b.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Less 报告 a 是否严格小于 b，等价于 a.Compare(b) < 0。
func (a Addr) Less(b Addr) bool {
	return a.Compare(b) < 0
}
