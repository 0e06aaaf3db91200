package ds

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Party описание стороны договора в том виде, в каком его присылает мастер.
// Ключи не фиксированы: всё, что пришло, сохраняется и отдаётся обратно.
type Party map[string]any

// Get строковое значение ключа без пробелов по краям, "" если ключа нет
func (p Party) Get(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// First первое непустое значение из перечисленных ключей
func (p Party) First(keys ...string) string {
	for _, k := range keys {
		if v := p.Get(k); v != "" {
			return v
		}
	}
	return ""
}

func (p Party) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Configured флаг is_configured из мастера
func (p Party) Configured() bool {
	v, ok := p["is_configured"].(bool)
	return ok && v
}
