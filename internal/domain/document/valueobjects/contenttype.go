package valueobjects

import "fmt"

// ContentType classifies what kind of controlled document this is.
type ContentType string

const (
	TypePolicy          ContentType = "policy"
	TypeProcedure       ContentType = "procedure"
	TypeWorkInstruction ContentType = "work_instruction"
	TypeForm            ContentType = "form"
	TypeTemplate        ContentType = "template"
	TypeGuideline       ContentType = "guideline"
	TypeRegister        ContentType = "register"
	TypeChecklist       ContentType = "checklist"
	TypeFAQ             ContentType = "faq"
)

var validContentTypes = map[ContentType]bool{
	TypePolicy:          true,
	TypeProcedure:       true,
	TypeWorkInstruction: true,
	TypeForm:            true,
	TypeTemplate:        true,
	TypeGuideline:       true,
	TypeRegister:        true,
	TypeChecklist:       true,
	TypeFAQ:             true,
}

// reviewIntervalMonths is how long a published document of each type stays
// current before it is due for re-approval. Policies and procedures get a
// longer cycle than operational forms.
var reviewIntervalMonths = map[ContentType]int{
	TypePolicy:          24,
	TypeProcedure:       24,
	TypeWorkInstruction: 12,
	TypeForm:            12,
	TypeTemplate:        12,
	TypeGuideline:       12,
	TypeRegister:        6,
	TypeChecklist:       12,
	TypeFAQ:             12,
}

const defaultReviewIntervalMonths = 12

func (t ContentType) String() string {
	return string(t)
}

func (t ContentType) IsValid() bool {
	return validContentTypes[t]
}

// ReviewIntervalMonths returns the re-approval cycle for this content type.
func (t ContentType) ReviewIntervalMonths() int {
	if months, ok := reviewIntervalMonths[t]; ok {
		return months
	}
	return defaultReviewIntervalMonths
}

func NewContentType(value string) (ContentType, error) {
	t := ContentType(value)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid content type: %s", value)
	}
	return t, nil
}

// AllContentTypes lists the valid content types for form rendering.
func AllContentTypes() []ContentType {
	return []ContentType{
		TypePolicy, TypeProcedure, TypeWorkInstruction, TypeForm, TypeTemplate,
		TypeGuideline, TypeRegister, TypeChecklist, TypeFAQ,
	}
}
