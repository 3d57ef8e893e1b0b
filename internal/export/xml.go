package export

import (
	"strings"

	"github.com/glotecht/glossary-api/internal/models"
)

// XMLFilename — имя файла XML-выгрузки в заголовке Content-Disposition.
const XMLFilename = "glotecht_terms.xml"

// XML сериализует каталог терминов в XML-документ.
//
// Корневой элемент <terms> содержит по одному <term> на запись; внутри —
// по элементу на каждое непустое поле, имя элемента совпадает с именем поля.
// Значения с символами '<', '>' или '&' оборачиваются в CDATA вместо
// entity-экранирования; NULL и пустые поля опускаются целиком. Асимметрия
// с JSON-выгрузкой (там такие поля выводятся как null) сохранена намеренно.
func XML(terms []*models.Term) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<terms>\n")
	for _, t := range terms {
		b.WriteString("  <term>\n")
		for _, f := range TermFields {
			value, ok := renderValue(f.Value(t))
			if !ok {
				continue
			}
			if strings.ContainsAny(value, "<>&") {
				value = "<![CDATA[" + value + "]]>"
			}
			b.WriteString("    <" + f.Name + ">" + value + "</" + f.Name + ">\n")
		}
		b.WriteString("  </term>\n")
	}
	b.WriteString("</terms>")
	return b.String()
}
