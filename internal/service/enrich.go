package service

import (
	"slices"

	"doc-quiz/internal/domain"
)

// BuildTags returns [domainID, topic segments...]; empty segments are dropped.
func BuildTags(domainID, topicID string) []string {
	tags := make([]string, 0, 1+len(domain.TopicSegments(topicID)))
	if domainID != "" {
		tags = append(tags, domainID)
	}
	return append(tags, domain.TopicSegments(topicID)...)
}

// EnrichQuestions stamps every question with the topic tags and collection name.
// An empty collectionName becomes domain.DefaultCollectionName. Each question
// gets its own copy of the tag slice.
func EnrichQuestions(questions []domain.GeneratedQuestion, domainID, topicID, collectionName string) []domain.GeneratedQuestion {
	if collectionName == "" {
		collectionName = domain.DefaultCollectionName
	}
	tags := BuildTags(domainID, topicID)

	enriched := make([]domain.GeneratedQuestion, len(questions))
	for i, q := range questions {
		q.Tags = slices.Clone(tags)
		q.CollectionName = collectionName
		enriched[i] = q
	}
	return enriched
}
