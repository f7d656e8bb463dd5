package xip

// IsValid 报告 s 是否能被 [ParseAddr] 解析为合法地址。
// 纯探测函数，无副作用，适合在构造前预检查。
func IsValid(s string) bool {
	_, err := ParseAddr(s)
	return err == nil
}

// IsValidPrefix 报告 s 是否能被 [ParsePrefix] 解析为合法 CIDR 前缀。
// 纯探测函数，无副作用，适合在构造前预检查。
func IsValidPrefix(s string) bool {
	_, err := ParsePrefix(s)
	return err == nil
}
