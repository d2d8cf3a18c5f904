package repository

import (
	"database/sql"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/repository/models"
)

func toQuestionDocuments(questions []domain.GeneratedQuestion) []models.QuestionDocument {
	docs := make([]models.QuestionDocument, len(questions))
	for i, q := range questions {
		docs[i] = models.QuestionDocument{
			ID:   q.ID,
			Type: q.Type,
			Content: models.ContentDocument{
				QuestionText:       q.Content.QuestionText,
				Options:            q.Content.Options,
				CorrectAnswerIndex: q.Content.CorrectAnswerIndex,
				CodeSnippet:        q.Content.CodeSnippet,
			},
			Explanation:    q.Explanation,
			Tags:           q.Tags,
			CollectionName: q.CollectionName,
		}
	}
	return docs
}

func toDomainQuestions(docs []models.QuestionDocument) []domain.GeneratedQuestion {
	questions := make([]domain.GeneratedQuestion, len(docs))
	for i, d := range docs {
		questions[i] = domain.GeneratedQuestion{
			ID:   d.ID,
			Type: d.Type,
			Content: domain.QuestionContent{
				QuestionText:       d.Content.QuestionText,
				Options:            d.Content.Options,
				CorrectAnswerIndex: d.Content.CorrectAnswerIndex,
				CodeSnippet:        d.Content.CodeSnippet,
			},
			Explanation:    d.Explanation,
			Tags:           d.Tags,
			CollectionName: d.CollectionName,
		}
	}
	return questions
}

func fromDomainCollection(c *domain.Collection) *models.Collection {
	if c == nil {
		return nil
	}
	return &models.Collection{
		ID:        c.ID,
		Name:      c.Name,
		UserID:    c.UserID,
		Questions: models.JSONColumn[[]models.QuestionDocument]{V: toQuestionDocuments(c.Questions)},
		Tags:      models.JSONColumn[[]string]{V: c.Tags},
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func toDomainCollection(m *models.Collection) *domain.Collection {
	if m == nil {
		return nil
	}
	return &domain.Collection{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		Questions: toDomainQuestions(m.Questions.V),
		CreatedAt: m.CreatedAt,
		Tags:      m.Tags.V,
	}
}

func fromDomainPerformance(p *domain.Performance) *models.Performance {
	if p == nil {
		return nil
	}
	answers := make([]models.AnswerDocument, len(p.Answers))
	for i, a := range p.Answers {
		answers[i] = models.AnswerDocument{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex, Correct: a.Correct}
	}
	return &models.Performance{
		ID:             p.ID,
		UserID:         p.UserID,
		CollectionID:   p.CollectionID,
		Score:          p.Score,
		TotalQuestions: p.TotalQuestions,
		Answers:        models.JSONColumn[[]models.AnswerDocument]{V: answers},
		Date:           p.Date.UTC(),
	}
}

func toDomainPerformance(m *models.Performance) *domain.Performance {
	if m == nil {
		return nil
	}
	answers := make([]domain.PerformanceAnswer, len(m.Answers.V))
	for i, a := range m.Answers.V {
		answers[i] = domain.PerformanceAnswer{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex, Correct: a.Correct}
	}
	return &domain.Performance{
		ID:             m.ID,
		UserID:         m.UserID,
		CollectionID:   m.CollectionID,
		Score:          m.Score,
		TotalQuestions: m.TotalQuestions,
		Answers:        answers,
		Date:           m.Date,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:       u.ID,
		GoogleID: u.GoogleID,
		Email:    u.Email,
		Name:     u.Name,
		Picture:  sql.NullString{String: u.Picture, Valid: u.Picture != ""},
	}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:       m.ID,
		GoogleID: m.GoogleID,
		Email:    m.Email,
		Name:     m.Name,
		Picture:  m.Picture.String,
	}
}
