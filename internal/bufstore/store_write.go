package bufstore

import "github.com/sirkon/errors"

// WriteAt запись p начиная с позиции off. Возвращается количество
// перенесённых байтов и новая позиция курсора. Запись может быть
// короче запрошенной если хвост p не помещается до вместимости,
// это не ошибка — вызывающая сторона сверяет n с len(p).
//
// Позиция на вместимости или за ней даёт ErrNoSpace, отрицательная
// позиция — ErrNegativeOffset; состояние буфера при этом не меняется.
// Запись допустима в любом месте до вместимости, в том числе за
// логической длиной.
func (s *Store) WriteAt(p []byte, off int64) (n int, pos int64, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	switch {
	case off < 0:
		return 0, off, errors.Wrap(ErrNegativeOffset, "write").Int64("offset", off)
	case off >= int64(len(s.data)):
		return 0, off, errors.Wrap(ErrNoSpace, "write").
			Int64("offset", off).
			Int64("capacity", int64(len(s.data)))
	}

	n = int(int64(len(s.data)) - off)
	if n > len(p) {
		n = len(p)
	}
	copy(s.data[off:off+int64(n)], p[:n])

	pos = off + int64(n)
	if pos > s.size {
		s.size = pos
	}

	return n, pos, nil
}
