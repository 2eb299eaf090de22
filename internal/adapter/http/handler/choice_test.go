package handler_test

import (
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type ChoiceHandlerSuite struct {
	suite.Suite
	app *testApp
}

func (s *ChoiceHandlerSuite) SetupTest() {
	s.app = newTestApp()
}

func TestChoiceHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(ChoiceHandlerSuite))
}

func (s *ChoiceHandlerSuite) TestCreateChoice_UnknownQuestion() {
	rr := s.app.do(http.MethodPost, "/choices", `{"question_id": 404, "choice_text": "Maybe", "votes": 3}`)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"id": 1, "question_id": 404, "choice_text": "Maybe"}`))
}

func (s *ChoiceHandlerSuite) TestCreateChoice_ZeroVotesIsPresent() {
	rr := s.app.do(http.MethodPost, "/choices", `{"question_id": 1, "choice_text": "Maybe", "votes": 0}`)

	Expect(rr.Code).To(Equal(http.StatusOK))
}

func (s *ChoiceHandlerSuite) TestCreateChoice_MissingVotes() {
	rr := s.app.do(http.MethodPost, "/choices", `{"question_id": 1, "choice_text": "Maybe"}`)

	body := expectError(rr, http.StatusBadRequest, "VALIDATION_ERROR")
	Expect(body.Fields).To(HaveLen(1))
	Expect(body.Fields[0].Field).To(Equal("votes"))
}

func (s *ChoiceHandlerSuite) TestUpdateChoice() {
	s.app.do(http.MethodPost, "/choices", `{"question_id": 7, "choice_text": "Maybe", "votes": 3}`)

	rr := s.app.do(http.MethodPut, "/choices", `{"id": 1, "choice_text": "Surely", "votes": 10}`)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"id": 1, "question_id": 7, "choice_text": "Surely"}`))
}

func (s *ChoiceHandlerSuite) TestUpdateChoice_NotFound() {
	rr := s.app.do(http.MethodPut, "/choices", `{"id": 1, "choice_text": "Surely", "votes": 10}`)

	body := expectError(rr, http.StatusNotFound, "NOT_FOUND")
	Expect(body.Error).To(Equal("Choice not found."))
}

func (s *ChoiceHandlerSuite) TestDeleteChoice() {
	s.app.do(http.MethodPost, "/choices", `{"question_id": 7, "choice_text": "Maybe", "votes": 3}`)

	rr := s.app.do(http.MethodDelete, "/choices", `{"id": 1}`)
	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(MatchJSON(`{"id": 1, "question_id": 7, "choice_text": "Maybe"}`))

	expectError(s.app.do(http.MethodDelete, "/choices", `{"id": 1}`), http.StatusNotFound, "NOT_FOUND")
}

func (s *ChoiceHandlerSuite) TestMalformedJSON() {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		body := expectError(s.app.do(method, "/choices", `{"id": `), http.StatusBadRequest, "BAD_REQUEST")
		Expect(body.Error).To(Equal("Invalid JSON."))
	}
}
