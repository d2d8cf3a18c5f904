package dto

import "doc-quiz/internal/domain"

// AnswerSubmission is the option a user picked for one question.
type AnswerSubmission struct {
	QuestionID    string `json:"questionId"`
	SelectedIndex int    `json:"selectedIndex"`
}

// SubmitPerformanceRequest is the body of POST /api/performance.
// The score is computed server side from the stored collection.
// @Description Request body for recording a quiz attempt
type SubmitPerformanceRequest struct {
	CollectionID string             `json:"collectionId"`
	Answers      []AnswerSubmission `json:"answers"`
}

// PerformanceResponse is a stored attempt joined with its collection name.
type PerformanceResponse struct {
	domain.Performance
	CollectionName string `json:"collectionName"`
}

// UnknownCollectionName labels attempts whose collection no longer resolves.
const UnknownCollectionName = "Unknown Collection"
