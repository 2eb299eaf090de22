package validation

import (
	"testing"

	"pollsapp/internal/core/model/request"

	. "github.com/onsi/gomega"
)

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	RegisterTestingT(t)

	err := Validator.Struct(request.CreateChoiceRequest{})

	errs := FormatValidationErrors(err)

	Expect(errs).To(HaveLen(3))
	Expect(errs[0].Field).To(Equal("question_id"))
	Expect(errs[0].Message).To(Equal("question_id is required"))
}

func TestFormatValidationErrors_PointerToZeroIsPresent(t *testing.T) {
	RegisterTestingT(t)

	text := ""
	votes := 0
	id := int64(0)

	err := Validator.Struct(request.CreateChoiceRequest{QuestionID: &id, ChoiceText: &text, Votes: &votes})

	Expect(err).To(BeNil())
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	RegisterTestingT(t)

	Expect(FormatValidationErrors(nil)).To(BeEmpty())
}
