package mutation

// EventType identifies a queue notification.
type EventType int

const (
	// EventEnqueued мутация сохранена в очередь
	EventEnqueued EventType = iota + 1
	// EventDrained завершена попытка воспроизведения очереди
	EventDrained
	// EventSynced отдельная запись успешно воспроизведена через RetryOne
	EventSynced
	// EventReplayFailed воспроизведение записи не удалось
	EventReplayFailed
	// EventDiscarded запись удалена без воспроизведения
	EventDiscarded
)

func (t EventType) String() string {
	switch t {
	case EventEnqueued:
		return "enqueued"
	case EventDrained:
		return "drained"
	case EventSynced:
		return "synced"
	case EventReplayFailed:
		return "replay_failed"
	case EventDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every queue mutation and drain.
type Event struct {
	Err     error // ошибка воспроизведения для EventReplayFailed
	Type    EventType
	EntryID uint64 // 0 для EventDrained
	Synced  int    // только для EventDrained
	Failed  int    // только для EventDrained
}
