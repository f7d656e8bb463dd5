// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xip: IP 地址与 CIDR 前缀值类型，多格式解析、规范渲染、
//     范围运算与网段聚合
//
// 设计原则：
//   - 不可变值类型，可直接比较与并发共享
//   - 所有可失败操作返回 error，预定义错误变量支持 errors.Is
//   - 跨平台兼容
package util
