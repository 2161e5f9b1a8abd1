// Package cache — внутрипроцессная мемоизация результатов чтения каталога.
// Кэш конструируется явно и внедряется в сервис (никакого состояния уровня
// пакета), ключ — структурный (никакой склейки строк с разделителями),
// истечение — по TTL с ленивой эвикцией, размер ограничен LRU-границей.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Key — составной ключ мемоизации: операция + полная идентичность запроса.
// Сравнимая структура — идентичность ключа детерминирована и не зависит от
// выбора разделителей.
type Key struct {
	Op        string
	Sort      string
	Category  string
	BuiltWith string
	Cursor    string
	Limit     int32
}

// Cache — минимальный контракт мемоизации для сервисного слоя.
type Cache interface {
	// Get возвращает значение и признак его наличия; просроченная запись
	// эвиктится на месте и считается промахом.
	Get(key Key) (any, bool)
	// Set сохраняет значение с expiry = now + TTL, перезаписывая прежнее.
	Set(key Key, value any)
	// Purge сбрасывает кэш целиком (нужно тестам и admin-ручкам).
	Purge()
}

type entry struct {
	key    Key
	value  any
	expiry time.Time
}

// Memory — потокобезопасный TTL+LRU кэш в памяти процесса.
type Memory struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	items map[Key]*list.Element
	order *list.List // front — недавно использованные, back — кандидаты на эвикцию.
}

// New создаёт кэш с заданным TTL и верхней границей числа записей.
// maxEntries <= 0 означает «без границы» (ключевое пространство каталога
// ограничено комбинациями фильтров/сортировок, но граница дешевле спора).
func New(ttl time.Duration, maxEntries int) *Memory {
	return NewWithNow(ttl, maxEntries, time.Now)
}

// NewWithNow — то же, но с внедряемыми часами (для тестов TTL).
func NewWithNow(ttl time.Duration, maxEntries int, now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}

	return &Memory{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
		items:      make(map[Key]*list.Element),
		order:      list.New(),
	}
}

func (m *Memory) Get(key Key) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.items[key]
	if !ok {
		return nil, false
	}

	ent := el.Value.(*entry)
	if !m.now().Before(ent.expiry) {
		// Ленивая эвикция: фонового свипера нет.
		m.removeLocked(el)
		return nil, false
	}

	m.order.MoveToFront(el)
	return ent.value, true
}

func (m *Memory) Set(key Key, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry := m.now().Add(m.ttl)

	if el, ok := m.items[key]; ok {
		ent := el.Value.(*entry)
		ent.value = value
		ent.expiry = expiry
		m.order.MoveToFront(el)
		return
	}

	el := m.order.PushFront(&entry{key: key, value: value, expiry: expiry})
	m.items[key] = el

	if m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		if oldest := m.order.Back(); oldest != nil {
			m.removeLocked(oldest)
		}
	}
}

func (m *Memory) Purge() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[Key]*list.Element)
	m.order.Init()
}

// Len — текущее число записей (включая ещё не эвикченные просроченные).
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.order.Len()
}

func (m *Memory) removeLocked(el *list.Element) {
	ent := el.Value.(*entry)
	delete(m.items, ent.key)
	m.order.Remove(el)
}
