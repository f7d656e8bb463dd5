// xipcalc 是 xip 地址库的命令行计算器。
//
// 用法:
//
//	xipcalc <命令> [命令参数]
//
// 命令:
//
//	parse <address>...            解析地址并输出规范形式、展开形式与分类
//	cidr <prefix>...              输出 CIDR 前缀的网络地址与范围端点
//	contains <prefix> <target>    判断地址或前缀是否落在网段内
//	coalesce <prefix> <prefix>    尝试合并两个前缀为最窄聚合网络
//	merge [--file <path>] [prefix...]
//	                              批量聚合前缀列表（参数与规则文件可混用）
//	help                          显示帮助信息
//
// merge 命令说明:
//
//	--file 指向 YAML 或 JSON 规则文件（按扩展名识别格式），文件中的
//	prefixes 列表与命令行参数合并后一起聚合。
//
// 退出码:
//
//	0: 命令执行成功（contains: 包含; coalesce: 可合并）
//	1: 命令执行失败（contains: 不包含; coalesce: 不可合并）
//	2: 参数错误（缺少参数、非法地址文本、未知命令等）
//
// 示例:
//
//	xipcalc parse 192.0.2.127 2001:db8::1
//	xipcalc cidr 192.0.2.127/24
//	xipcalc contains 2001:db8:1:ff::/64 2001:db8:1:ff::1
//	xipcalc coalesce 1.2.3.0/25 1.2.3.128/25
//	xipcalc merge --file rules.yaml 10.0.0.0/25 10.0.0.128/25
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。所有子命令输出写入 os.Stdout。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xipcalc",
		Usage:          "IP 地址与 CIDR 前缀计算器",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(os.Stdout),
		DefaultCommand: "help",
		Authors: []any{
			"XKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}

// setupSignalHandler 设置信号处理。
// 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
