package unwind

import "github.com/sirkon/errors"

// List список действий освобождения ресурсов. Действия запускаются
// в порядке обратном порядку их добавления, т.е. последний захваченный
// ресурс освобождается первым.
//
// Пустое значение готово к использованию.
type List struct {
	steps []step
}

type step struct {
	name    string
	release func() error
}

// Add добавление действия освобождения ресурса с данным именем шага.
func (l *List) Add(name string, release func() error) {
	l.steps = append(l.steps, step{
		name:    name,
		release: release,
	})
}

// Len количество накопленных действий.
func (l *List) Len() int {
	return len(l.steps)
}

// Drop отказ от накопленных действий без их запуска. Применяется
// когда ответственность за ресурсы передаётся другому владельцу.
func (l *List) Drop() {
	l.steps = nil
}

// Unwind запуск всех накопленных действий в обратном порядке.
// Ошибка какого-либо из действий не прерывает запуск остальных:
// каждая ошибка оборачивается именем шага и отдаётся в errlog,
// при этом первая из них возвращается. Повторный вызов ничего
// не делает, т.к. список опустошается.
func (l *List) Unwind(errlog func(step string, err error)) error {
	var first error
	for i := len(l.steps) - 1; i >= 0; i-- {
		s := l.steps[i]
		if err := s.release(); err != nil {
			err = errors.Wrap(err, "release "+s.name)
			if errlog != nil {
				errlog(s.name, err)
			}
			if first == nil {
				first = err
			}
		}
	}

	l.steps = nil
	return first
}
