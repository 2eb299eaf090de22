package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "pollsapp/pkg/test"
	"pollsapp/pkg/test/factory"

	"pollsapp/internal/adapter/database/repository"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/service"
)

type ChoiceServiceTestSuite struct {
	suite.Suite
	Service *service.ChoiceService
}

func (s *ChoiceServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.Service = service.NewChoiceService(repository.NewChoiceRepository(db, nil), nil)
}

func TestChoiceServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(ChoiceServiceTestSuite))
}

func (s *ChoiceServiceTestSuite) TestService_Create_UnknownQuestion() {
	choice, err := s.Service.Create(context.Background(), factory.NewChoice(1234, map[string]any{
		"ChoiceText": "Sure",
		"Votes":      7,
	}))

	Expect(err).To(BeNil())
	Expect(choice.ID).To(BeNumerically(">", 0))
	Expect(choice.QuestionID).To(Equal(int64(1234)))
	Expect(choice.Votes).To(Equal(7))
}

func (s *ChoiceServiceTestSuite) TestService_Update_ReplacesTextAndVotes() {
	choice, _ := s.Service.Create(context.Background(), factory.NewChoice(1))

	updated, err := s.Service.Update(context.Background(), choice.ID, "Renamed", 42)

	Expect(err).To(BeNil())
	Expect(updated.ChoiceText).To(Equal("Renamed"))
	Expect(updated.Votes).To(Equal(42))
	Expect(updated.QuestionID).To(Equal(int64(1)))
}

func (s *ChoiceServiceTestSuite) TestService_Update_NotFound() {
	_, err := s.Service.Update(context.Background(), 8, "x", 1)

	Expect(apperror.IsCode(err, apperror.CodeNotFound)).To(BeTrue())
	Expect(apperror.MessageOf(err)).To(Equal("Choice not found."))
}

func (s *ChoiceServiceTestSuite) TestService_Delete() {
	choice, _ := s.Service.Create(context.Background(), factory.NewChoice(1))

	deleted, err := s.Service.Delete(context.Background(), choice.ID)
	Expect(err).To(BeNil())
	Expect(deleted.ID).To(Equal(choice.ID))

	_, err = s.Service.Delete(context.Background(), choice.ID)
	Expect(apperror.IsCode(err, apperror.CodeNotFound)).To(BeTrue())
}
