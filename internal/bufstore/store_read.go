package bufstore

// ReadAt чтение в p начиная с позиции off. Возвращается количество
// перенесённых байтов и новая позиция курсора. Чтение не бывает
// ошибочным: позиция на логической длине или за ней, как и
// отрицательная позиция, даёт пустой результат с той же позицией.
// Состояние буфера чтение не меняет.
func (s *Store) ReadAt(p []byte, off int64) (n int, pos int64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if off < 0 || off >= s.size {
		return 0, off
	}

	n = int(s.size - off)
	if n > len(p) {
		n = len(p)
	}
	copy(p, s.data[off:off+int64(n)])

	return n, off + int64(n)
}
