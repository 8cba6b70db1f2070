package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	filteredKey = "_filtered"
	redacted    = "[REDACTED]"
)

// FilterHook che các field nhạy cảm (password, token, code...) và lọc entry theo module.
// Entry bị lọc được đánh dấu "_filtered", AsyncHook sẽ bỏ qua.
type FilterHook struct {
	allowedModules  map[string]bool
	hasModuleFilter bool
	redactFields    map[string]bool
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	modules := parseFilter(cfg.FilterModules)
	return &FilterHook{
		allowedModules:  modules,
		hasModuleFilter: len(modules) > 0 && !modules["*"],
		redactFields:    parseFilter(cfg.RedactFields),
	}
}

// parseFilter parse "a,b,c" thành set (lowercase). Rỗng hoặc "*" nghĩa là tất cả.
func parseFilter(filterStr string) map[string]bool {
	result := make(map[string]bool)
	if filterStr == "" || filterStr == "*" {
		result["*"] = true
		return result
	}
	for _, v := range strings.Split(filterStr, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			result[strings.ToLower(v)] = true
		}
	}
	return result
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire che field nhạy cảm rồi kiểm tra module filter
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if !h.redactFields["*"] {
		for key, value := range entry.Data {
			if h.redactFields[strings.ToLower(key)] {
				entry.Data[key] = redacted
				continue
			}
			// Che luôn field lồng trong map (ví dụ details của audit log)
			if nested, ok := value.(map[string]interface{}); ok {
				entry.Data[key] = h.redactMap(nested)
			}
		}
	}

	if h.hasModuleFilter {
		if module, ok := entry.Data["module"].(string); ok && module != "" {
			if !h.allowedModules[strings.ToLower(module)] {
				entry.Data[filteredKey] = true
			}
		}
	}

	return nil
}

// redactMap trả về bản sao của m với các key nhạy cảm đã bị che
func (h *FilterHook) redactMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if h.redactFields[strings.ToLower(k)] {
			out[k] = redacted
			continue
		}
		out[k] = v
	}
	return out
}
