package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将标尺页输出为 JSON，长度统一写成 "720tw" 形式。
func WriteDebugJSON(sheet *Sheet, path string) error {
	if sheet == nil {
		return nil
	}
	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
