package repository_test

import (
	"context"
	"testing"

	"pollsapp/internal/adapter/database"
	"pollsapp/internal/adapter/database/repository"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/port"
	. "pollsapp/pkg/test"
	"pollsapp/pkg/test/factory"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"
)

type ChoiceRepositoryTestSuite struct {
	suite.Suite
	setup        *TestSetup[port.ChoiceRepository]
	ChoiceRepo   port.ChoiceRepository
	QuestionRepo port.QuestionRepository
}

func (s *ChoiceRepositoryTestSuite) SetupTest() {
	s.setup = SetupTest(s.T(), func(db *database.DB) port.ChoiceRepository {
		return repository.NewChoiceRepository(db, nil)
	})
	s.ChoiceRepo = s.setup.Repo
	s.QuestionRepo = repository.NewQuestionRepository(s.setup.DB, nil)
}

func (s *ChoiceRepositoryTestSuite) TearDownTest() {
	TeardownTest(s.T(), s.setup)
}

func TestChoiceRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(ChoiceRepositoryTestSuite))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_Create_Success() {
	question, _ := s.QuestionRepo.Create(context.Background(), factory.NewQuestion())

	choice, err := s.ChoiceRepo.Create(context.Background(), factory.NewChoice(question.ID, map[string]any{
		"ChoiceText": "Not much",
		"Votes":      3,
	}))

	Expect(err).To(BeNil())
	Expect(choice.ID).To(BeNumerically(">", 0))

	found, err := s.ChoiceRepo.GetByID(context.Background(), choice.ID)
	Expect(err).To(BeNil())
	Expect(found.QuestionID).To(Equal(question.ID))
	Expect(found.ChoiceText).To(Equal("Not much"))
	Expect(found.Votes).To(Equal(3))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_Create_WithoutQuestion() {
	choice, err := s.ChoiceRepo.Create(context.Background(), factory.NewChoice(777))

	Expect(err).To(BeNil())
	Expect(choice.QuestionID).To(Equal(int64(777)))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_GetByQuestionID() {
	q1, _ := s.QuestionRepo.Create(context.Background(), factory.NewQuestion())
	q2, _ := s.QuestionRepo.Create(context.Background(), factory.NewQuestion())

	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(q1.ID))
	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(q2.ID))
	s.ChoiceRepo.Create(context.Background(), factory.NewChoice(q1.ID))

	choices, err := s.ChoiceRepo.GetByQuestionID(context.Background(), q1.ID)

	Expect(err).To(BeNil())
	Expect(choices).To(HaveLen(2))
	for _, choice := range choices {
		Expect(choice.QuestionID).To(Equal(q1.ID))
	}

	all, err := s.ChoiceRepo.GetAll(context.Background())
	Expect(err).To(BeNil())
	Expect(all).To(HaveLen(3))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_GetByQuestionID_Empty() {
	choices, err := s.ChoiceRepo.GetByQuestionID(context.Background(), 1)

	Expect(err).To(BeNil())
	Expect(choices).NotTo(BeNil())
	Expect(choices).To(BeEmpty())
}

func (s *ChoiceRepositoryTestSuite) TestRepository_Update_KeepsQuestion() {
	choice, _ := s.ChoiceRepo.Create(context.Background(), factory.NewChoice(5))
	choice.ChoiceText = "Changed"
	choice.Votes = 10

	_, err := s.ChoiceRepo.Update(context.Background(), choice)
	Expect(err).To(BeNil())

	found, _ := s.ChoiceRepo.GetByID(context.Background(), choice.ID)
	Expect(found.ChoiceText).To(Equal("Changed"))
	Expect(found.Votes).To(Equal(10))
	Expect(found.QuestionID).To(Equal(int64(5)))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_DeleteByID_NotFound() {
	err := s.ChoiceRepo.DeleteByID(context.Background(), 404)

	Expect(err).To(MatchError(apperror.ErrNotFound))
}

func (s *ChoiceRepositoryTestSuite) TestRepository_DeleteQuestion_LeavesChoices() {
	question, _ := s.QuestionRepo.Create(context.Background(), factory.NewQuestion())
	choice, _ := s.ChoiceRepo.Create(context.Background(), factory.NewChoice(question.ID))

	Expect(s.QuestionRepo.DeleteByID(context.Background(), question.ID)).To(Succeed())

	found, err := s.ChoiceRepo.GetByID(context.Background(), choice.ID)
	Expect(err).To(BeNil())
	Expect(found.QuestionID).To(Equal(question.ID))
}
