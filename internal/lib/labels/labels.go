// Package labels реализует нормализацию семантических меток глоссария.
//
// Метки в базе часто несут хвостовую аннотацию в квадратных скобках,
// например "Noun [nom]". Для справочника меток аннотация отбрасывается,
// а дубликаты по очищенной английской метке схлопываются.
package labels

import (
	"regexp"
	"strings"

	"github.com/glotecht/glossary-api/internal/models"
)

// bracketSuffix — хвостовая аннотация вида " [...]" в конце метки.
var bracketSuffix = regexp.MustCompile(`\s*\[[^\]]*\]\s*$`)

// Clean отбрасывает хвостовую аннотацию в квадратных скобках и окружающие
// пробелы. Применяется и к ключу сравнения, и к выводимому значению.
func Clean(label string) string {
	return strings.TrimSpace(bracketSuffix.ReplaceAllString(label, ""))
}

// Dedupe очищает пары меток и схлопывает дубликаты по очищенной английской
// метке без учёта регистра. Порядок входа сохраняется: при совпадении ключа
// остаётся первая встреченная пара, даже если французская метка отличается.
// Пары, у которых после очистки пуста любая из сторон, отбрасываются.
func Dedupe(pairs []models.LabelPair) []models.LabelPair {
	seen := make(map[string]struct{}, len(pairs))
	result := make([]models.LabelPair, 0, len(pairs))
	for _, p := range pairs {
		en := Clean(p.EN)
		fr := Clean(p.FR)
		if en == "" || fr == "" {
			continue
		}
		key := strings.ToLower(en)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, models.LabelPair{EN: en, FR: fr})
	}
	return result
}
