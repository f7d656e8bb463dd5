package xip

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范文本形式。
// 零值输出 "::"（合法的未指定地址，不是空串）。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [ParseAddr] 支持的格式；空输入返回 [ErrEmpty]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范文本。
//
// 规范地址文本仅包含 [0-9a-f:.] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 设置为零值（即 "::"），其余输入必须是可被 [ParseAddr]
// 解析的 JSON 字符串。对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := ParseAddr(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出 "<address>/<bits>"。
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 支持所有 [ParsePrefix] 支持的格式；空输入返回 [ErrEmpty]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (p *Prefix) UnmarshalText(text []byte) error {
	if p == nil {
		return ErrNilReceiver
	}
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的 "<address>/<bits>"。
func (p Prefix) MarshalJSON() ([]byte, error) {
	s := p.String()
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 设置为零值（0.0.0.0/0），其余输入必须是可被 [ParsePrefix]
// 解析的 JSON 字符串。对 nil 接收者返回 [ErrNilReceiver]。
func (p *Prefix) UnmarshalJSON(data []byte) error {
	if p == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*p = Prefix{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	parsed, err := ParsePrefix(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
