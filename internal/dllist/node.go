package dllist

// Node узел списка. Значение может отсутствовать: так устроены ограничители
// списка, у пользовательских узлов созданных через NewNode значение есть всегда.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
	set   bool
}

// NewNode конструктор узла с данным значением. Созданный узел ещё не принадлежит
// никакому списку.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{
		value: v,
		set:   true,
	}
}

// Value возврат значения лежащего в узле и признака его наличия.
func (n *Node[T]) Value() (T, bool) {
	return n.value, n.set
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
