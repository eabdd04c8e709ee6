package component

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Category names an animation set. Each category holds an ordered sequence of
// frames; the order is load-completion order, so concurrent loads may finish
// in a different order than their source list.
type Category int

const (
	CategoryFront Category = iota
	CategoryBack
	CategorySide
	CategoryJump
	CategoryThrow
)

var categoryNames = map[Category]string{
	CategoryFront: "front",
	CategoryBack:  "back",
	CategorySide:  "side",
	CategoryJump:  "jump",
	CategoryThrow: "throw",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// Store holds the loaded frames for every category. Loader goroutines append
// as each decode completes; the tick loop reads. A category may be empty at
// any point, including forever (a failed load just leaves a gap).
type Store struct {
	mu     sync.RWMutex
	frames map[Category][]*ebiten.Image
}

func NewStore() *Store {
	return &Store{frames: make(map[Category][]*ebiten.Image)}
}

// Append adds a frame to the end of the category's sequence. Nil frames are
// ignored so a failed decode never poisons the sequence.
func (s *Store) Append(cat Category, img *ebiten.Image) {
	if s == nil || img == nil {
		return
	}
	s.mu.Lock()
	s.frames[cat] = append(s.frames[cat], img)
	s.mu.Unlock()
}

// Len reports how many frames the category currently has.
func (s *Store) Len(cat Category) int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames[cat])
}

// Frame returns the frame at index modulo the category length. ok is false
// when the category has no frames yet.
func (s *Store) Frame(cat Category, index int) (*ebiten.Image, bool) {
	if s == nil || index < 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq := s.frames[cat]
	if len(seq) == 0 {
		return nil, false
	}
	return seq[index%len(seq)], true
}
