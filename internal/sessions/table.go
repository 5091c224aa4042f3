package sessions

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
	"golang.org/x/exp/maps"
)

// NewTable конструктор таблицы сессий.
func NewTable() *Table {
	return &Table{
		open: map[uuid.UUID]struct{}{},
	}
}

// Table учёт открытых сессий с их идентичностью. В отличие от Tracker
// позволяет убедиться, что закрывается именно та сессия, которая
// была открыта.
type Table struct {
	lock sync.Mutex
	open map[uuid.UUID]struct{}
}

// Open открытие новой сессии. Возвращается её хэндл.
func (t *Table) Open() uuid.UUID {
	id := uuid.New()

	t.lock.Lock()
	t.open[id] = struct{}{}
	t.lock.Unlock()

	return id
}

// Close закрытие сессии с данным хэндлом. Хэндл не выдававшийся
// ранее или уже закрытый даёт ErrUnknownSession.
func (t *Table) Close(id uuid.UUID) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.open[id]; !ok {
		return errors.Wrap(ErrUnknownSession, "close session").Stg("session-id", id)
	}

	delete(t.open, id)
	return nil
}

// Active хэндлы открытых на данный момент сессий. Порядок не определён.
func (t *Table) Active() []uuid.UUID {
	t.lock.Lock()
	defer t.lock.Unlock()

	return maps.Keys(t.open)
}

// Count количество открытых сессий.
func (t *Table) Count() int {
	t.lock.Lock()
	defer t.lock.Unlock()

	return len(t.open)
}
