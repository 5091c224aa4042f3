package sessions

import "sync/atomic"

// Tracker счётчик одновременно открытых сессий устройства.
// Идентичность сессий не отслеживается, только их количество.
//
// Пустое значение готово к использованию.
type Tracker struct {
	open atomic.Int64
}

// Acquire регистрация открытия сессии. Всегда успешна.
// Возвращается количество открытых сессий после открытия.
func (t *Tracker) Acquire() int {
	return int(t.open.Add(1))
}

// Release регистрация закрытия сессии. Возвращается количество
// открытых сессий после закрытия. Закрытие без парного открытия —
// нарушение дисциплины вызывающей стороны: счётчик остаётся на нуле,
// а сам факт сообщается через ErrUnbalancedRelease. Жёсткой ошибкой
// это не считается, т.к. при принудительном сворачивании закрытия
// могут приходить без открытий.
func (t *Tracker) Release() (int, error) {
	for {
		n := t.open.Load()
		if n == 0 {
			return 0, ErrUnbalancedRelease
		}

		if t.open.CompareAndSwap(n, n-1) {
			return int(n - 1), nil
		}
	}
}

// Opened текущее количество открытых сессий.
func (t *Tracker) Opened() int {
	return int(t.open.Load())
}
