package binding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/twips/units"
)

// ErrNotFound 表示路径在数据中不存在。
var ErrNotFound = errors.New("binding: path not found")

// Lookup 按 path.to.value / items[2].width 形式在 JSON 解码后的数据中取值。
func Lookup(data any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if data == nil || path == "" {
		return nil, false
	}
	return resolvePath(data, path)
}

// LengthAt 取出 path 处的值并解释为长度：字符串按 "18mm" 之类解析，
// 数字与不带单位的字符串返回 UnitNone，由调用方决定其含义（倍数或 twips）。
func LengthAt(data any, path string) (units.Length, error) {
	val, ok := Lookup(data, path)
	if !ok {
		return units.Length{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	switch v := val.(type) {
	case float64:
		return units.Length{Value: v}, nil
	case int:
		return units.Length{Value: float64(v)}, nil
	case int64:
		return units.Length{Value: float64(v)}, nil
	case string:
		l, err := units.ParseLength(v)
		if err != nil {
			return units.Length{}, fmt.Errorf("binding %s: %w", path, err)
		}
		return l, nil
	default:
		return units.Length{}, fmt.Errorf("binding %s: %T is not a length", path, val)
	}
}

func resolvePath(data any, path string) (any, bool) {
	current := data
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		name, indexes := parseSegment(segment)
		if name != "" {
			var ok bool
			current, ok = descendMap(current, name)
			if !ok {
				return nil, false
			}
		}
		for _, idxStr := range indexes {
			idx, err := strconv.Atoi(idxStr)
			if err != nil {
				return nil, false
			}
			var ok bool
			current, ok = descendArray(current, idx)
			if !ok {
				return nil, false
			}
		}
	}
	return current, true
}

func parseSegment(segment string) (string, []string) {
	name := segment
	var indexes []string
	if i := strings.Index(segment, "["); i != -1 {
		name = segment[:i]
		rest := segment[i:]
		for len(rest) > 0 && rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				break
			}
			indexes = append(indexes, rest[1:end])
			rest = rest[end+1:]
		}
	}
	return name, indexes
}

func descendMap(current any, key string) (any, bool) {
	c, ok := current.(map[string]any)
	if !ok {
		return nil, false
	}
	val, ok := c[key]
	return val, ok
}

func descendArray(current any, idx int) (any, bool) {
	c, ok := current.([]any)
	if !ok || idx < 0 || idx >= len(c) {
		return nil, false
	}
	return c[idx], true
}
