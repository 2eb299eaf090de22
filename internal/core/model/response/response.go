package response

import (
	"time"

	"pollsapp/internal/core/domain"
)

type ChoiceResponse struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// ChoiceSummary is returned by choice mutations, which omit votes.
type ChoiceSummary struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
}

type QuestionSummary struct {
	ID           int64  `json:"id"`
	QuestionText string `json:"question_text"`
}

type QuestionResponse struct {
	ID           int64            `json:"id"`
	QuestionText string           `json:"question_text"`
	Choices      []ChoiceResponse `json:"choices"`
}

type QuestionListItem struct {
	ID           int64            `json:"id"`
	QuestionText string           `json:"question_text"`
	Choices      []ChoiceResponse `json:"choices"`
	PubDate      time.Time        `json:"pub_date"`
}

type TodoSummary struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

type TodoResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields []ValidationError `json:"fields,omitempty"`
}

func NewChoiceResponses(choices []domain.Choice) []ChoiceResponse {
	data := make([]ChoiceResponse, 0, len(choices))

	for _, choice := range choices {
		data = append(data, ChoiceResponse{
			ID:         choice.ID,
			QuestionID: choice.QuestionID,
			ChoiceText: choice.ChoiceText,
			Votes:      choice.Votes,
		})
	}

	return data
}

func NewChoiceSummary(choice domain.Choice) ChoiceSummary {
	return ChoiceSummary{
		ID:         choice.ID,
		QuestionID: choice.QuestionID,
		ChoiceText: choice.ChoiceText,
	}
}

func NewQuestionSummary(question domain.Question) QuestionSummary {
	return QuestionSummary{
		ID:           question.ID,
		QuestionText: question.QuestionText,
	}
}

func NewQuestionResponse(detail domain.QuestionDetail) QuestionResponse {
	return QuestionResponse{
		ID:           detail.Question.ID,
		QuestionText: detail.Question.QuestionText,
		Choices:      NewChoiceResponses(detail.Choices),
	}
}

func NewQuestionList(details []domain.QuestionDetail) []QuestionListItem {
	data := make([]QuestionListItem, 0, len(details))

	for _, detail := range details {
		data = append(data, QuestionListItem{
			ID:           detail.Question.ID,
			QuestionText: detail.Question.QuestionText,
			Choices:      NewChoiceResponses(detail.Choices),
			PubDate:      detail.Question.PubDate,
		})
	}

	return data
}

func NewTodoList(todos []domain.Todo) TodoListResponse {
	data := make([]TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, TodoResponse{
			ID:        todo.ID,
			Text:      todo.Text,
			Completed: todo.Completed,
		})
	}

	return TodoListResponse{Todos: data}
}
