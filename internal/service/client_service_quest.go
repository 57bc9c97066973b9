package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quest-client/internal/adapter"
	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/models"
)

type clientQuestService struct {
	adapter     adapter.ServerAdapter
	invalidator Invalidator
	logger      *logger.Logger
}

// NewClientQuestService returns the quest action service. invalidator may be
// nil when no screen needs refreshing.
func NewClientQuestService(serverAdapter adapter.ServerAdapter, invalidator Invalidator, log *logger.Logger) ClientQuestService {
	return &clientQuestService{adapter: serverAdapter, invalidator: invalidator, logger: log}
}

func (q *clientQuestService) Preview(ctx context.Context, session models.Session, questID int64) (models.QuestPreview, error) {
	preview, err := q.adapter.FetchQuestPreview(ctx, session, questID)
	if err != nil {
		return models.QuestPreview{}, fmt.Errorf("quest preview: %w", err)
	}
	return preview, nil
}

func (q *clientQuestService) Step(ctx context.Context, session models.Session, questID int64, stepNumber int) (models.QuestStep, error) {
	step, err := q.adapter.FetchQuestStep(ctx, session, questID, stepNumber)
	if err != nil {
		return models.QuestStep{}, fmt.Errorf("quest step: %w", err)
	}
	return step, nil
}

// Accept marks the quest as taken. The user's quests, the list of
// available quests and the profile are refreshed afterwards.
func (q *clientQuestService) Accept(ctx context.Context, session models.Session, questID int64) (string, error) {
	msg, err := q.adapter.AcceptQuest(ctx, session, questID)
	if err != nil {
		return "", fmt.Errorf("accept quest: %w", err)
	}

	q.invalidate(ctx, session, models.KindQuests, models.KindAvailableQuests, models.KindProfile)
	return msg, nil
}

// SubmitStep sends an answer. Progress and rewards change on success, so
// quests, achievements, collectibles and the profile are refreshed.
func (q *clientQuestService) SubmitStep(ctx context.Context, session models.Session, questID int64, stepNumber int, answer string) (models.SubmitResult, error) {
	result, err := q.adapter.SubmitQuestStep(ctx, session, questID, stepNumber, answer)
	if err != nil {
		return models.SubmitResult{}, fmt.Errorf("submit quest step: %w", err)
	}

	q.logger.Info().
		Int64("quest_id", questID).
		Int("step", stepNumber).
		Bool("final", result.IsFinalStep).
		Msg("quest step submitted")

	q.invalidate(ctx, session, models.KindQuests, models.KindAchievements, models.KindCollectibles, models.KindProfile)
	return result, nil
}

func (q *clientQuestService) invalidate(ctx context.Context, session models.Session, kinds ...models.ResourceKind) {
	if q.invalidator != nil {
		q.invalidator.Invalidate(ctx, session, kinds...)
	}
}
