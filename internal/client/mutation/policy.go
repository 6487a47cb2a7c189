package mutation

import (
	"github.com/iudanet/fieldops/internal/client/api"
	"github.com/iudanet/fieldops/internal/models"
)

// FailureAction is what the engine does with an entry whose replay failed.
type FailureAction int

const (
	// ActionKeep оставляет запись в статусе failed для ручного решения
	ActionKeep FailureAction = iota
	// ActionDiscard удаляет запись из очереди
	ActionDiscard
)

// FailurePolicy decides the fate of a failed entry. The entry already
// carries the incremented retry count and last error.
type FailurePolicy func(entry *models.QueueEntry, err error) FailureAction

// KeepAll keeps every failed entry. Retry or discard is left to the operator.
func KeepAll(*models.QueueEntry, error) FailureAction {
	return ActionKeep
}

// DiscardPermanent drops entries the backend rejected as permanently invalid
// and keeps everything else.
func DiscardPermanent(_ *models.QueueEntry, err error) FailureAction {
	if api.Classify(err) == api.ClassPermanent {
		return ActionDiscard
	}
	return ActionKeep
}
