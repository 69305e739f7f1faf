package sqlite

import "sync"

// notifier рассылает сигнал об изменении данных живым подпискам.
// Канал каждой подписки буферизован на один элемент: сигналы
// схлопываются, мутации никогда не блокируются на медленном потребителе.
type notifier struct {
	mu   sync.Mutex
	seq  int
	subs map[int]chan struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]chan struct{})}
}

// subscribe регистрирует подписку, возвращает канал сигналов и функцию отписки
func (n *notifier) subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	id := n.seq
	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// broadcast сигнализирует всем подпискам, не блокируясь
func (n *notifier) broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
