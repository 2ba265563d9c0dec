package dsl_test

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(sampleData), &data); err != nil {
		t.Fatalf("解析测试数据失败: %v", err)
	}
	return data
}
