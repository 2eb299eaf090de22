package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "pollsapp/pkg/test"
	"pollsapp/pkg/test/factory"

	"pollsapp/internal/adapter/database/repository"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/port"
	"pollsapp/internal/core/service"
)

type QuestionServiceTestSuite struct {
	suite.Suite
	Service    *service.QuestionService
	ChoiceRepo port.ChoiceRepository
	now        time.Time
}

func (s *QuestionServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.now = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.ChoiceRepo = repository.NewChoiceRepository(db, nil)
	s.Service = service.NewQuestionService(repository.NewQuestionRepository(db, nil), s.ChoiceRepo, nil).
		WithClock(func() time.Time { return s.now })
}

func TestQuestionServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(QuestionServiceTestSuite))
}

func (s *QuestionServiceTestSuite) TestService_Create_SetsPubDate() {
	question, err := s.Service.Create(context.Background(), "What's new?")

	Expect(err).To(BeNil())
	Expect(question.ID).To(BeNumerically(">", 0))
	assert.True(s.T(), question.PubDate.Equal(s.now))
}

func (s *QuestionServiceTestSuite) TestService_Get_WithoutChoices() {
	question, _ := s.Service.Create(context.Background(), "What's new?")

	detail, err := s.Service.Get(context.Background(), question.ID)

	Expect(err).To(BeNil())
	Expect(detail.Question.QuestionText).To(Equal("What's new?"))
	Expect(detail.Choices).NotTo(BeNil())
	Expect(detail.Choices).To(BeEmpty())
}

func (s *QuestionServiceTestSuite) TestService_Get_NotFound() {
	_, err := s.Service.Get(context.Background(), 12)

	Expect(apperror.IsCode(err, apperror.CodeNotFound)).To(BeTrue())
	Expect(apperror.MessageOf(err)).To(Equal("Question not found"))
}

func (s *QuestionServiceTestSuite) TestService_List_GroupsChoices() {
	q1, _ := s.Service.Create(context.Background(), "first")
	q2, _ := s.Service.Create(context.Background(), "second")

	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(q2.ID))
	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(q2.ID))
	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(404))

	details, err := s.Service.List(context.Background())

	Expect(err).To(BeNil())
	Expect(details).To(HaveLen(2))
	Expect(details[0].Question.ID).To(Equal(q1.ID))
	Expect(details[0].Choices).To(BeEmpty())
	Expect(details[1].Question.ID).To(Equal(q2.ID))
	Expect(details[1].Choices).To(HaveLen(2))
}

func (s *QuestionServiceTestSuite) TestService_UpdateText() {
	question, _ := s.Service.Create(context.Background(), "old")

	updated, err := s.Service.UpdateText(context.Background(), question.ID, "new")

	Expect(err).To(BeNil())
	Expect(updated.QuestionText).To(Equal("new"))
	assert.True(s.T(), updated.PubDate.Equal(s.now))
}

func (s *QuestionServiceTestSuite) TestService_UpdateText_NotFound() {
	_, err := s.Service.UpdateText(context.Background(), 3, "new")

	Expect(apperror.IsCode(err, apperror.CodeNotFound)).To(BeTrue())
}

func (s *QuestionServiceTestSuite) TestService_Delete_ReturnsPriorRecordAndKeepsChoices() {
	question, _ := s.Service.Create(context.Background(), "bye")
	choice, _ := s.ChoiceRepo.Create(context.Background(), factory.NewChoice(question.ID))

	deleted, err := s.Service.Delete(context.Background(), question.ID)

	Expect(err).To(BeNil())
	Expect(deleted.QuestionText).To(Equal("bye"))

	_, err = s.Service.Get(context.Background(), question.ID)
	Expect(apperror.IsCode(err, apperror.CodeNotFound)).To(BeTrue())

	_, err = s.ChoiceRepo.GetByID(context.Background(), choice.ID)
	Expect(err).To(BeNil())
}
