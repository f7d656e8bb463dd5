// Package xip 提供 IP 地址与 CIDR 前缀的不可变值类型，
// 服务于按 IP / 按网段配置的访问控制规则。
//
// 核心类型是 [Addr]（128 位地址值，IPv4 嵌入其中）和 [Prefix]
//（地址 + 前缀长度的 CIDR 网络范围）。所有操作都是纯值计算：
// 无网络 I/O、无 DNS、无共享可变状态，实例可跨 goroutine 自由
// 共享与比较。
//
// # 核心功能
//
//   - addr.go: [Addr] 值类型、128 位比较排序、字节级构造与取出
//   - parse.go: [ParseAddr] 多格式文本解析（点分十进制 / 冒号十六进制 /
//     "::" 压缩 / 内嵌 IPv4 尾部 / 方括号输入）
//   - format.go: [Addr.String] 规范文本渲染与 [Addr.StringExpanded]
//   - class.go: 地址分类谓词与 [Classify]
//   - prefix.go: [Prefix]、[PrefixFrom] / [ParsePrefix]、范围端点
//     [Prefix.From] / [Prefix.To]、包含判断、[Prefix.Normalize]
//   - coalesce.go: [Prefix.Coalesce] 逐对最窄聚合
//   - wellknown.go: 保留网段常量表（环回、链路本地、文档示例段等）
//   - convert.go: 与 [net/netip] / [go4.org/netipx] 的互转桥和
//     [MergePrefixes] 批量聚合
//   - encoding.go: Text/JSON 序列化
//   - validate.go: 解析前的布尔预检查
//
// # 快速示例
//
// 解析、分类与规范输出：
//
//	addr, _ := xip.ParseAddr("192.0.2.127")
//	fmt.Println(addr.Is4())              // true
//	fmt.Println(addr.IsDocumentation())  // true
//	fmt.Println(addr.String())           // 192.0.2.127
//
// CIDR 范围运算：
//
//	p, _ := xip.ParsePrefix("192.0.2.127/24")
//	fmt.Println(p.From())                // 192.0.2.0
//	fmt.Println(p.To())                  // 192.0.2.255
//	fmt.Println(p.Contains(addr))        // true
//
// 相邻网段合并：
//
//	a := xip.MustParsePrefix("1.2.3.0/25")
//	b := xip.MustParsePrefix("1.2.3.128/25")
//	merged, ok := a.Coalesce(b)          // 1.2.3.0/24, true
//
// # 内部表示
//
// [Addr] 用两个 uint64（hi/lo）承载 128 位，不依赖平台原生 128 位
// 整数。IPv4 嵌入在 IPv6 空间：hi 为 0，lo 高 32 位为标记
//（0 = IPv4-compatible，0x0000FFFF = IPv4-mapped），低 32 位按网络
// 字节序存放四个八位段。相等性是位级的：同一 IPv4 地址的两种嵌入
// 编码互不相等，也互不包含。
//
// 地址族（以及前缀长度上限 32/128）由标记位测试决定。由此 "::" 与
// "::1" 的位模式落在 IPv4-compatible 空间内（等于 0.0.0.0 与
// 0.0.0.1），按 IPv4 族处理；渲染时环回与全零形式优先，因此
// ParseAddr("0.0.0.1").String() 输出 "::1"。
//
// # 规范渲染
//
// [Addr.String] 的 "::" 压缩规则：最长连续零组游程（并列取最左）
// 压缩为 "::"，但游程起始于第 0 组或延伸到第 7 组时不压缩、全部
// 展开输出。该边界行为与既有规则配置的存量渲染保持一致，由
// 兼容性测试固定；往返保证（Parse ∘ String 恒等）仅针对规范输出
// 成立。
//
// # 设计决策
//
//   - 值类型不可变：所有变换（Normalize、Coalesce、From/To）返回
//     新值或原值，无就地修改
//   - 掩码运算在 0、64、128 位移边界显式分支，不依赖移位运算符在
//     寄存器位宽处的行为
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is；
//     探测合法性用 [IsValid] / [IsValidPrefix]，不走异常路径
//   - 解析器是显式双游标扫描（先自右向左、再自左向右），支持唯一
//     的 "::" 压缩标记与混合 IPv4 尾部
//   - [net/netip] / [netipx] 仅作为互转桥与批量聚合后端：标准库
//     类型无法表达 compatible/mapped 标记区分与本包的渲染规则
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xip.ParseAddr("1.2.3.300")
//	if errors.Is(err, xip.ErrInvalidOctet) {
//	    // 处理非法八位段
//	}
package xip
