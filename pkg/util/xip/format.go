package xip

import "strconv"

// 十六进制字符表。规范输出只使用小写。
const hexLower = "0123456789abcdef"

// String 返回地址的规范文本形式。
//
// 规则：
//   - 全零地址 → "::"，环回 → "::1"
//   - IPv4-compatible 编码 → 点分十进制 "a.b.c.d"
//   - IPv4-mapped 编码 → "::ffff:a.b.c.d"
//   - 其他 IPv6 → 八组小写十六进制，逐组去前导零；最长连续零组
//     游程（并列取最左）压缩为 "::"
//
// 兼容性约束：当最长零组游程起始于第 0 组或延伸到第 7 组时不做 "::"
// 压缩，整个地址按八组完整输出。该行为与既有规则配置的渲染保持一致，
// 由 TestAddrString_boundaryRun 固定，修改前必须先调整该测试。
func (a Addr) String() string {
	if a == (Addr{}) {
		return "::"
	}
	if a.hi == 0 {
		if a.lo == 1 {
			return "::1"
		}
		switch a.lo & v4MarkerMask {
		case 0:
			return string(appendDotted(make([]byte, 0, 15), uint32(a.lo)))
		case v4MappedMarker:
			return string(appendDotted(append(make([]byte, 0, 22), "::ffff:"...), uint32(a.lo)))
		}
	}

	g := a.groups()

	// 自左向右找最长连续零组游程，并列时保留最先出现的。
	best, bestLen := -1, 0
	for i := 0; i < 8; {
		if g[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && g[j] == 0 {
			j++
		}
		if j-i > bestLen {
			best, bestLen = i, j-i
		}
		i = j
	}

	buf := make([]byte, 0, 39)
	if bestLen == 0 || best == 0 || best+bestLen == 8 {
		// 不压缩：没有零组，或游程触及地址首尾。
		for i := range 8 {
			if i > 0 {
				buf = append(buf, ':')
			}
			buf = appendGroup(buf, g[i])
		}
		return string(buf)
	}
	for i := 0; i < best; i++ {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = appendGroup(buf, g[i])
	}
	buf = append(buf, ':', ':')
	for i := best + bestLen; i < 8; i++ {
		if i > best+bestLen {
			buf = append(buf, ':')
		}
		buf = appendGroup(buf, g[i])
	}
	return string(buf)
}

// StringExpanded 返回完整展开的八组形式，每组补齐 4 位十六进制，
// 不做 "::" 压缩，也不使用点分十进制。适合按字典序排序或对齐展示。
func (a Addr) StringExpanded() string {
	g := a.groups()
	var buf [39]byte
	for i := range 8 {
		off := i * 5
		if i > 0 {
			buf[off-1] = ':'
		}
		buf[off] = hexLower[g[i]>>12]
		buf[off+1] = hexLower[g[i]>>8&0xF]
		buf[off+2] = hexLower[g[i]>>4&0xF]
		buf[off+3] = hexLower[g[i]&0xF]
	}
	return string(buf[:])
}

// groups 将 128 位拆成八个 16 位组。
func (a Addr) groups() [8]uint16 {
	return [8]uint16{
		uint16(a.hi >> 48), uint16(a.hi >> 32), uint16(a.hi >> 16), uint16(a.hi),
		uint16(a.lo >> 48), uint16(a.lo >> 32), uint16(a.lo >> 16), uint16(a.lo),
	}
}

// appendGroup 追加一组十六进制，去前导零。
func appendGroup(buf []byte, g uint16) []byte {
	if g >= 0x1000 {
		buf = append(buf, hexLower[g>>12])
	}
	if g >= 0x100 {
		buf = append(buf, hexLower[g>>8&0xF])
	}
	if g >= 0x10 {
		buf = append(buf, hexLower[g>>4&0xF])
	}
	return append(buf, hexLower[g&0xF])
}

// appendDotted 追加点分十进制形式的低 32 位。
func appendDotted(buf []byte, v uint32) []byte {
	buf = strconv.AppendUint(buf, uint64(v>>24), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(v>>16&0xFF), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, uint64(v>>8&0xFF), 10)
	buf = append(buf, '.')
	return strconv.AppendUint(buf, uint64(v&0xFF), 10)
}
