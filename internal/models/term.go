package models

// Term представляет одну статью глоссария: понятие с английской и французской
// реализацией и параллельными метаданными для каждого языка.
//
// Имена json-тегов совпадают с именами колонок БД и являются контрактом
// экспорта: JSON-, XML- и CSV-выгрузки используют ровно эти имена.
// Необязательные строковые поля хранятся как *string (NULL в БД, null в JSON),
// списковые — как StringList/RelationList поверх JSONB.
type Term struct {
	ID int `json:"tid" db:"tid"`

	DomainEN string `json:"domain_en" db:"domain_en"`
	DomainFR string `json:"domain_fr" db:"domain_fr"`

	SubdomainsEN StringList `json:"subdomains_en" db:"subdomains_en"`
	SubdomainsFR StringList `json:"subdomains_fr" db:"subdomains_fr"`

	EnglishTerm string `json:"english_term" db:"english_term"`
	FrenchTerm  string `json:"french_term" db:"french_term"`

	SemanticLabelEN *string `json:"semantic_label_en" db:"semantic_label_en"`
	SemanticLabelFR *string `json:"semantic_label_fr" db:"semantic_label_fr"`

	VariantEN *string `json:"variant_en" db:"variant_en"`
	VariantFR *string `json:"variant_fr" db:"variant_fr"`

	NearSynonymEN *string `json:"near_synonym_en" db:"near_synonym_en"`
	NearSynonymFR *string `json:"near_synonym_fr" db:"near_synonym_fr"`

	DefinitionEN *string `json:"definition_en" db:"definition_en"`
	DefinitionFR *string `json:"definition_fr" db:"definition_fr"`

	SyntacticCooccurrenceEN StringList `json:"syntactic_cooccurrence_en" db:"syntactic_cooccurrence_en"`
	SyntacticCooccurrenceFR StringList `json:"syntactic_cooccurrence_fr" db:"syntactic_cooccurrence_fr"`

	LexicalRelationsEN RelationList `json:"lexical_relations_en" db:"lexical_relations_en"`
	LexicalRelationsFR RelationList `json:"lexical_relations_fr" db:"lexical_relations_fr"`

	NoteEN *string `json:"note_en" db:"note_en"`
	NoteFR *string `json:"note_fr" db:"note_fr"`

	NotToBeConfusedWithEN StringList `json:"not_to_be_confused_with_en" db:"not_to_be_confused_with_en"`
	NotToBeConfusedWithFR StringList `json:"not_to_be_confused_with_fr" db:"not_to_be_confused_with_fr"`

	FrequentExpressionEN StringList `json:"frequent_expression_en" db:"frequent_expression_en"`
	FrequentExpressionFR StringList `json:"frequent_expression_fr" db:"frequent_expression_fr"`

	PhraseologyEN *string `json:"phraseology_en" db:"phraseology_en"`
	PhraseologyFR *string `json:"phraseology_fr" db:"phraseology_fr"`

	ContextEN *string `json:"context_en" db:"context_en"`
	ContextFR *string `json:"context_fr" db:"context_fr"`
}

// TermColumns — канонический порядок полей термина: имена колонок БД,
// json-тегов и заголовков экспорта. Единый источник для SELECT-списков
// и для построчных сериализаторов.
var TermColumns = []string{
	"tid",
	"domain_en", "domain_fr",
	"subdomains_en", "subdomains_fr",
	"english_term", "french_term",
	"semantic_label_en", "semantic_label_fr",
	"variant_en", "variant_fr",
	"near_synonym_en", "near_synonym_fr",
	"definition_en", "definition_fr",
	"syntactic_cooccurrence_en", "syntactic_cooccurrence_fr",
	"lexical_relations_en", "lexical_relations_fr",
	"note_en", "note_fr",
	"not_to_be_confused_with_en", "not_to_be_confused_with_fr",
	"frequent_expression_en", "frequent_expression_fr",
	"phraseology_en", "phraseology_fr",
	"context_en", "context_fr",
}

// TermInput используется для приёма данных из JSON-запроса на создание или
// полное обновление термина. Обязательны оба термина и оба домена, остальные
// поля опциональны и при отсутствии сохраняются как NULL.
type TermInput struct {
	DomainEN string `json:"domain_en" validate:"required"`
	DomainFR string `json:"domain_fr" validate:"required"`

	SubdomainsEN StringList `json:"subdomains_en"`
	SubdomainsFR StringList `json:"subdomains_fr"`

	EnglishTerm string `json:"english_term" validate:"required"`
	FrenchTerm  string `json:"french_term" validate:"required"`

	SemanticLabelEN *string `json:"semantic_label_en"`
	SemanticLabelFR *string `json:"semantic_label_fr"`

	VariantEN *string `json:"variant_en"`
	VariantFR *string `json:"variant_fr"`

	NearSynonymEN *string `json:"near_synonym_en"`
	NearSynonymFR *string `json:"near_synonym_fr"`

	DefinitionEN *string `json:"definition_en"`
	DefinitionFR *string `json:"definition_fr"`

	SyntacticCooccurrenceEN StringList `json:"syntactic_cooccurrence_en"`
	SyntacticCooccurrenceFR StringList `json:"syntactic_cooccurrence_fr"`

	LexicalRelationsEN RelationList `json:"lexical_relations_en"`
	LexicalRelationsFR RelationList `json:"lexical_relations_fr"`

	NoteEN *string `json:"note_en"`
	NoteFR *string `json:"note_fr"`

	NotToBeConfusedWithEN StringList `json:"not_to_be_confused_with_en"`
	NotToBeConfusedWithFR StringList `json:"not_to_be_confused_with_fr"`

	FrequentExpressionEN StringList `json:"frequent_expression_en"`
	FrequentExpressionFR StringList `json:"frequent_expression_fr"`

	PhraseologyEN *string `json:"phraseology_en"`
	PhraseologyFR *string `json:"phraseology_fr"`

	ContextEN *string `json:"context_en"`
	ContextFR *string `json:"context_fr"`
}

// TermName — краткая форма статьи для списка /api/terms/list.
type TermName struct {
	EN string `json:"EN" db:"english_term"`
	FR string `json:"FR" db:"french_term"`
}

// LabelPair — пара семантических меток одной статьи.
type LabelPair struct {
	EN string `json:"EN" db:"semantic_label_en"`
	FR string `json:"FR" db:"semantic_label_fr"`
}

// SearchType перечисляет группы полей, по которым выполняется поиск.
type SearchType string

const (
	// SearchTerm — поиск по английскому и французскому термину.
	SearchTerm SearchType = "term"
	// SearchClass — поиск по семантическим меткам.
	SearchClass SearchType = "class"
	// SearchSynonym — поиск по квазисинонимам.
	SearchSynonym SearchType = "synonym"
	// SearchSubdomain — поэлементный поиск внутри списков подобластей.
	SearchSubdomain SearchType = "subdomain"
	// SearchDefault — широкий поиск: термины, домены, метки и определения.
	SearchDefault SearchType = ""
)

// ParseSearchType приводит значение параметра type к известному типу поиска.
// Неизвестные значения трактуются как поиск по умолчанию.
func ParseSearchType(s string) SearchType {
	switch SearchType(s) {
	case SearchTerm, SearchClass, SearchSynonym, SearchSubdomain:
		return SearchType(s)
	default:
		return SearchDefault
	}
}
