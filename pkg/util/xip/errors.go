package xip

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xip: empty input")

	// ErrTooLong 表示输入超过地址文本的最大长度（45 字符）。
	ErrTooLong = errors.New("xip: input too long")

	// ErrInvalidFormat 表示地址文本结构无效（点号位置错误、非法字符等）。
	ErrInvalidFormat = errors.New("xip: invalid format")

	// ErrInvalidOctet 表示点分十进制段无效（非数字、超过 3 位或大于 255）。
	ErrInvalidOctet = errors.New("xip: invalid octet")

	// ErrInvalidHexGroup 表示冒号十六进制段无效（为空、超过 4 位或含非十六进制字符）。
	ErrInvalidHexGroup = errors.New("xip: invalid hex group")

	// ErrTooManyColons 表示冒号分组数量超过地址族允许的上限。
	ErrTooManyColons = errors.New("xip: too many colons")

	// ErrNotEnoughColons 表示冒号分组数量不足且没有 "::" 补齐。
	ErrNotEnoughColons = errors.New("xip: not enough colons")

	// ErrDoubleEllipsis 表示出现了多于一个 "::" 压缩标记。
	ErrDoubleEllipsis = errors.New("xip: multiple \"::\" in address")

	// ErrInvalidPrefixBits 表示前缀长度超出地址族范围（IPv4: 0-32，IPv6: 0-128）。
	ErrInvalidPrefixBits = errors.New("xip: prefix bits out of range")

	// ErrNilReceiver 表示在 nil 接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xip: nil receiver")
)
