package request

// Pointer fields separate an absent key from a zero value.

type CreateQuestionRequest struct {
	QuestionText *string `json:"question_text" validate:"required"`
}

type UpdateQuestionRequest struct {
	ID           *int64  `json:"id" validate:"required"`
	QuestionText *string `json:"question_text" validate:"required"`
}

type CreateChoiceRequest struct {
	QuestionID *int64  `json:"question_id" validate:"required"`
	ChoiceText *string `json:"choice_text" validate:"required"`
	Votes      *int    `json:"votes" validate:"required"`
}

type UpdateChoiceRequest struct {
	ID         *int64  `json:"id" validate:"required"`
	ChoiceText *string `json:"choice_text" validate:"required"`
	Votes      *int    `json:"votes" validate:"required"`
}

type CreateTodoRequest struct {
	Text *string `json:"text" validate:"required"`
}

type UpdateTodoRequest struct {
	ID        *int64  `json:"id" validate:"required"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// DeleteRequest is shared by every resource: deletes carry only the id.
type DeleteRequest struct {
	ID *int64 `json:"id" validate:"required"`
}
