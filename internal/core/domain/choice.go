package domain

type Choice struct {
	ID         int64
	QuestionID int64
	ChoiceText string
	Votes      int
}

func (c *Choice) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"question_id": c.QuestionID,
		"choice_text": c.ChoiceText,
		"votes":       c.Votes,
	}
}
