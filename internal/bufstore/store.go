package bufstore

import (
	"sync"

	"github.com/sirkon/errors"

	"github.com/sirkon/memdev/internal/byteop"
)

// Store буфер устройства фиксированной вместимости. Помнит логическую
// длину — наибольшую позицию до которой когда-либо дописывались данные.
// Чтение никогда не выходит за логическую длину, запись — за вместимость.
//
// Конкурентные вызовы допустимы: данные и логическая длина меняются
// только под общим локом, удерживаемым на всю длительность переноса.
type Store struct {
	lock sync.Mutex

	data []byte
	size int64 // Логическая длина, только растёт.
}

// New конструктор Store с буфером данной вместимости,
// заполненным нулевыми байтами.
func New(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, errors.Wrap(ErrBadCapacity, "reserve device buffer").
			Int("requested-capacity", capacity)
	}

	return &Store{
		data: make([]byte, capacity),
	}, nil
}

// Len текущая логическая длина данных в буфере.
func (s *Store) Len() int64 {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.size
}

// Cap вместимость буфера.
func (s *Store) Cap() int64 {
	return int64(len(s.data))
}

// Snapshot копия данных буфера до логической длины.
func (s *Store) Snapshot() []byte {
	s.lock.Lock()
	defer s.lock.Unlock()

	return byteop.Clone(s.data[:s.size])
}
