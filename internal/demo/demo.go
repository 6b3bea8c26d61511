package demo

import (
	"github.com/sirkon/sllist/internal/dllist"
	"github.com/sirkon/sllist/internal/logging"
)

// Count количество последовательных значений кладущихся в список.
const Count = 10

// Run демонстрационный прогон списка: извлечение из пустого списка, заполнение
// значениями 0..Count-1, извлечение до опустошения и ещё одно извлечение из пустого.
func Run(log logging.Logger) {
	l := dllist.New[int]()
	pop(l, log)

	for i := 0; i < Count; i++ {
		l.Push(dllist.NewNode(i))
	}

	for {
		v, ok := l.Pop()
		if !ok {
			break
		}

		log.Popped(v)
	}

	pop(l, log)
}

func pop(l *dllist.SentinelList[int], log logging.Logger) {
	v, ok := l.Pop()
	if !ok {
		log.PoppedNothing()
		return
	}

	log.Popped(v)
}
