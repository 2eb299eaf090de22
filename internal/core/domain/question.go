package domain

import "time"

type Question struct {
	ID           int64
	QuestionText string
	PubDate      time.Time
}

func (q *Question) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"question_text": q.QuestionText,
		"pub_date":      q.PubDate,
	}
}

// QuestionDetail is a question together with every choice that references it.
type QuestionDetail struct {
	Question Question
	Choices  []Choice
}

// GroupChoices attaches choices to their questions, keeping question order.
// Choices whose question is not in the list are ignored.
func GroupChoices(questions []Question, choices []Choice) []QuestionDetail {
	byQuestion := make(map[int64][]Choice, len(questions))

	for _, choice := range choices {
		byQuestion[choice.QuestionID] = append(byQuestion[choice.QuestionID], choice)
	}

	details := make([]QuestionDetail, 0, len(questions))

	for _, question := range questions {
		related := byQuestion[question.ID]

		if related == nil {
			related = []Choice{}
		}

		details = append(details, QuestionDetail{Question: question, Choices: related})
	}

	return details
}
