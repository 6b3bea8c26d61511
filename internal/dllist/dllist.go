package dllist

// New конструктор пустого списка: ограничители head и tail ссылаются друг на друга.
func New[T any]() *SentinelList[T] {
	head := &Node[T]{}
	tail := &Node[T]{}
	head.next = tail
	tail.prev = head

	return &SentinelList[T]{
		head: head,
		tail: tail,
	}
}

// SentinelList двусвязный список с постоянными узлами-ограничителями в начале и конце.
// Ограничители живут всё время жизни списка и не несут значений.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type SentinelList[T any] struct {
	head *Node[T]
	tail *Node[T]
}

// Push вставка узла в конец списка, непосредственно перед tail.
// Узел не должен состоять в каком-либо списке.
func (l *SentinelList[T]) Push(n *Node[T]) {
	n.prev = l.tail.prev
	n.next = l.tail

	l.tail.prev.next = n
	l.tail.prev = n
}

// Append добавление нового значения в конец списка с возвратом созданного узла.
func (l *SentinelList[T]) Append(v T) *Node[T] {
	n := NewNode(v)
	l.Push(n)
	return n
}

// Pop удаление первого элемента списка с возвратом его значения.
// На пустом списке возвращается нулевое значение и false, список при этом не меняется.
func (l *SentinelList[T]) Pop() (T, bool) {
	n := l.head.next
	if n == l.tail {
		var zero T
		return zero, false
	}

	l.head.next = n.next
	n.next.prev = l.head
	n.cleanup()

	return n.value, true
}

// Empty проверка списка на пустоту.
func (l *SentinelList[T]) Empty() bool {
	return l.head.next == l.tail
}
