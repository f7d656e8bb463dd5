package xip

// Coalesce 尝试把两个前缀合并为能覆盖双方的最窄聚合网络。
// 可合并时返回 (归一化的聚合前缀, true)，否则返回 (Prefix{}, false)。
//
// 规则按序判定：
//  1. 地址族不同 → 不可合并
//  2. p 包含 other → p 的归一化形式
//  3. other 包含 p → other 的归一化形式
//  4. 前缀长度相等：若缩短一位的父网络能同时包含双方
//     （相邻的兄弟网络），返回该父网络的归一化形式
//  5. 其余情况（长度不等且互不包含）→ 不可合并
//
// 对可合并的组合满足交换律：p.Coalesce(q) 与 q.Coalesce(p) 结果一致。
func (p Prefix) Coalesce(other Prefix) (Prefix, bool) {
	if p.addr.Is4() != other.addr.Is4() {
		return Prefix{}, false
	}
	if p.ContainsPrefix(other) {
		return p.Normalize(), true
	}
	if other.ContainsPrefix(p) {
		return other.Normalize(), true
	}
	if p.bits != other.bits {
		return Prefix{}, false
	}
	// 互不包含的等长前缀，bits 必然大于 0（/0 包含本族全部地址，
	// 会在上面的包含分支返回），父网络长度不会为负。
	parent := Prefix{addr: p.addr, bits: p.bits - 1}
	if parent.ContainsPrefix(p) && parent.ContainsPrefix(other) {
		return parent.Normalize(), true
	}
	return Prefix{}, false
}
