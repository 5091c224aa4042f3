package registry

// NumberAuthority распределение номеров устройств внешним окружением.
type NumberAuthority interface {
	AllocNumber(name string) (uint32, error)
	FreeNumber(no uint32) error
}

// NodeAuthority создание и удаление файловых узлов устройств.
type NodeAuthority interface {
	CreateNode(name string, no uint32) error
	RemoveNode(name string) error
}
