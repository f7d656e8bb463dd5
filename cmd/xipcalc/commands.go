package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ao-apps/ao-net-types-sub000/pkg/util/xip"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，run 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，run 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// 创建所有子命令，输出统一写入 w，便于测试注入缓冲。
func createCommands(w io.Writer) []*cli.Command {
	return []*cli.Command{
		createParseCommand(w),
		createCIDRCommand(w),
		createContainsCommand(w),
		createCoalesceCommand(w),
		createMergeCommand(w),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析地址并输出规范形式、展开形式与分类",
		ArgsUsage: "<address>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdParse(w, cmd.Args().Slice())
		},
	}
}

// createCIDRCommand 创建 cidr 子命令。
func createCIDRCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "cidr",
		Aliases:   []string{"c"},
		Usage:     "输出 CIDR 前缀的网络地址与范围端点",
		ArgsUsage: "<prefix>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdCIDR(w, cmd.Args().Slice())
		},
	}
}

// createContainsCommand 创建 contains 子命令。
func createContainsCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "判断地址或前缀是否落在网段内",
		ArgsUsage: "<prefix> <address-or-prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdContains(w, cmd.Args().Slice())
		},
	}
}

// createCoalesceCommand 创建 coalesce 子命令。
func createCoalesceCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "coalesce",
		Usage:     "尝试合并两个前缀为最窄聚合网络",
		ArgsUsage: "<prefix> <prefix>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdCoalesce(w, cmd.Args().Slice())
		},
	}
}

// createMergeCommand 创建 merge 子命令。
func createMergeCommand(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "merge",
		Aliases:   []string{"m"},
		Usage:     "批量聚合前缀列表",
		ArgsUsage: "[prefix...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML/JSON 规则文件路径（prefixes 列表）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdMerge(w, cmd.String("file"), cmd.Args().Slice())
		},
	}
}

// cmdParse 解析每个地址并输出明细。
func cmdParse(w io.Writer, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "parse 命令需要至少一个地址参数"}
	}

	for i, arg := range args {
		addr, err := xip.ParseAddr(arg)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", arg, err)}
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "输入:     %s\n", arg)
		fmt.Fprintf(w, "规范形式: %s\n", addr)
		fmt.Fprintf(w, "展开形式: %s\n", addr.StringExpanded())
		fmt.Fprintf(w, "地址族:   IPv%d (%d 位)\n", family(addr), addr.BitLen())
		fmt.Fprintf(w, "分类:     %s\n", xip.Classify(addr))
	}
	return nil
}

// cmdCIDR 输出每个前缀的网络明细。
func cmdCIDR(w io.Writer, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "cidr 命令需要至少一个前缀参数"}
	}

	for i, arg := range args {
		p, err := xip.ParsePrefix(arg)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", arg, err)}
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "输入:     %s\n", arg)
		fmt.Fprintf(w, "网络:     %s\n", p.Normalize())
		fmt.Fprintf(w, "起始地址: %s\n", p.From())
		fmt.Fprintf(w, "结束地址: %s\n", p.To())
	}
	return nil
}

// cmdContains 判断包含关系。不包含时通过 exitError 返回退出码 1，
// 使脚本能直接用退出码做访问控制判断。
func cmdContains(w io.Writer, args []string) error {
	if len(args) != 2 {
		return &usageError{msg: "contains 命令需要两个参数: <prefix> <address-or-prefix>"}
	}

	p, err := xip.ParsePrefix(args[0])
	if err != nil {
		return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", args[0], err)}
	}

	// 目标带 "/" 时按前缀整段判断，否则按单地址判断。
	var contained bool
	if strings.ContainsRune(args[1], '/') {
		target, err := xip.ParsePrefix(args[1])
		if err != nil {
			return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", args[1], err)}
		}
		contained = p.ContainsPrefix(target)
	} else {
		target, err := xip.ParseAddr(args[1])
		if err != nil {
			return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", args[1], err)}
		}
		contained = p.Contains(target)
	}

	fmt.Fprintln(w, contained)
	if !contained {
		return &exitError{code: 1}
	}
	return nil
}

// cmdCoalesce 尝试合并两个前缀。不可合并时返回退出码 1。
func cmdCoalesce(w io.Writer, args []string) error {
	if len(args) != 2 {
		return &usageError{msg: "coalesce 命令需要两个前缀参数"}
	}

	p, err := xip.ParsePrefix(args[0])
	if err != nil {
		return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", args[0], err)}
	}
	q, err := xip.ParsePrefix(args[1])
	if err != nil {
		return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", args[1], err)}
	}

	merged, ok := p.Coalesce(q)
	if !ok {
		fmt.Fprintln(w, "不可合并")
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, merged)
	return nil
}

// cmdMerge 批量聚合命令行参数与规则文件中的前缀。
func cmdMerge(w io.Writer, file string, args []string) error {
	prefixes := make([]xip.Prefix, 0, len(args))
	for _, arg := range args {
		p, err := xip.ParsePrefix(arg)
		if err != nil {
			return &usageError{msg: fmt.Sprintf("解析 %q 失败: %v", arg, err)}
		}
		prefixes = append(prefixes, p)
	}

	if file != "" {
		fromFile, err := loadRules(file)
		if err != nil {
			return err
		}
		prefixes = append(prefixes, fromFile...)
	}

	if len(prefixes) == 0 {
		return &usageError{msg: "merge 命令需要前缀参数或 --file 规则文件"}
	}

	merged, err := xip.MergePrefixes(prefixes)
	if err != nil {
		return err
	}
	for _, p := range merged {
		fmt.Fprintln(w, p)
	}
	return nil
}

// family 返回地址族编号（4 或 6）。
func family(addr xip.Addr) int {
	if addr.Is4() {
		return 4
	}
	return 6
}
