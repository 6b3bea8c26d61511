package logging

//go:generate mockgen -source=logging.go -destination=../demo/internal/mocks/logger.go -package=mocks -mock_names Logger=LoggerMock

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями.
type Logger interface {
	// Popped извлечение значения из начала списка.
	Popped(v int)
	// PoppedNothing попытка извлечения из пустого списка.
	PoppedNothing()
}
