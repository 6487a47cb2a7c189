package mutation

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// EntryError связывает ошибку воспроизведения с записью очереди
type EntryError struct {
	Err   error
	Label string
	ID    uint64
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.ID, e.Label, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// DrainResult contains drain operation results
type DrainResult struct {
	Errors    []*EntryError // ошибки по записям в порядке воспроизведения
	Synced    int           // успешно воспроизведено и удалено
	Failed    int           // не удалось воспроизвести
	Discarded int           // удалено политикой после неудачи
}

// Err combines per-entry errors into one error, or nil when there are none.
func (r *DrainResult) Err() error {
	var result *multierror.Error
	for _, e := range r.Errors {
		result = multierror.Append(result, e)
	}
	return result.ErrorOrNil()
}
