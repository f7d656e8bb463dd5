package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ao-apps/ao-net-types-sub000/pkg/util/xip"
)

// ruleFile 是规则文件的结构:
//
//	prefixes:
//	  - 10.0.0.0/25
//	  - 10.0.0.128/25
type ruleFile struct {
	Prefixes []string `koanf:"prefixes"`
}

// loadRules 加载规则文件并解析其中的前缀列表。
// 格式按扩展名识别: .yaml/.yml 或 .json。
func loadRules(path string) ([]xip.Prefix, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取规则文件失败: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("解析规则文件 %s 失败: %w", path, err)
	}

	var rf ruleFile
	if err := k.Unmarshal("", &rf); err != nil {
		return nil, fmt.Errorf("规则文件 %s 结构不符: %w", path, err)
	}

	prefixes := make([]xip.Prefix, 0, len(rf.Prefixes))
	for _, s := range rf.Prefixes {
		p, err := xip.ParsePrefix(s)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("规则文件 %s 中的前缀 %q 非法: %v", path, s, err)}
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, nil
}

// parserFor 根据文件扩展名选择 koanf 解析器。
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("不支持的规则文件格式: %s（仅支持 .yaml/.yml/.json）", path)}
	}
}
