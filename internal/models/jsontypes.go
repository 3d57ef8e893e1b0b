// Package models содержит доменные структуры глоссария — термины и пользователей,
// а также вспомогательные типы для хранения списковых полей в колонках JSONB.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList хранит упорядоченный список строк (JSONB-колонка).
// Значение nil означает отсутствие данных и сериализуется в JSON как null.
type StringList []string

// Scan реализует sql.Scanner для чтения JSONB-колонки.
func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// Value реализует driver.Valuer для записи в JSONB-колонку.
// nil-список записывается как SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Relation описывает одну лексическую связь: метка отношения -> связанные термины.
type Relation map[string][]string

// RelationList хранит список лексических связей термина (JSONB-колонка).
type RelationList []Relation

// Scan реализует sql.Scanner для чтения JSONB-колонки.
func (l *RelationList) Scan(src any) error {
	return scanJSON(src, l)
}

// Value реализует driver.Valuer для записи в JSONB-колонку.
func (l RelationList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("models: cannot scan %T into JSON value", src)
	}
}
