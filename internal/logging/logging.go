package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	DeviceOpened(open int)
	DeviceClosed(open int)
	UnbalancedRelease()
	RollbackStepFailed(step string, err error)
}

// Discard логгер игнорирующий все события.
func Discard() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) DeviceOpened(int) {}

func (nopLogger) DeviceClosed(int) {}

func (nopLogger) UnbalancedRelease() {}

func (nopLogger) RollbackStepFailed(string, error) {}

var _ Logger = nopLogger{}
