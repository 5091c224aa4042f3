package memdev

import (
	"github.com/sirkon/memdev/internal/logging"
	"github.com/sirkon/memdev/internal/registry"
)

// Option опция настройки устройства при создании.
type Option func(s *setup, _ prohibitCustomOpts)

// WithLogger задание логгера событий устройства.
func WithLogger(log logging.Logger) Option {
	return func(s *setup, _ prohibitCustomOpts) {
		s.log = log
	}
}

// WithAuthorities задание полномочных источников внешнего окружения.
// Устройство с ними регистрируется при создании и снимает регистрацию
// при сворачивании. Источники задаются только вместе.
func WithAuthorities(numbers registry.NumberAuthority, nodes registry.NodeAuthority) Option {
	return func(s *setup, _ prohibitCustomOpts) {
		s.numbers = numbers
		s.nodes = nodes
	}
}

// WithSessionHandles включение учёта сессий с их идентичностью:
// каждая открытая сессия получает хэндл, закрытие сверяется с ним.
func WithSessionHandles() Option {
	return func(s *setup, _ prohibitCustomOpts) {
		s.handles = true
	}
}

type setup struct {
	log     logging.Logger
	numbers registry.NumberAuthority
	nodes   registry.NodeAuthority
	handles bool
}

type prohibitCustomOpts struct{}
