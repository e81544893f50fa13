package generic

import (
	"fmt"
	"strings"

	"github.com/cheekybits/genny/generic"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/snwfog/sequential.go/pkg/util"
)

var (
	ErrNthOutOfRange = errors.New("nth over list length")
)

type Value generic.Type

func NewValueLinkedList() *linkedlist {
	return &linkedlist{}
}

// region Node
func newnode(value Value, next *node) *node {
	return &node{
		value: value,
		next:  next,
	}
}

type node struct {
	value Value
	next  *node
}

func (n *node) Value() Value {
	return n.value
}

func (n *node) Next() *node {
	return n.next
}

// endregion

// region linkedlist
type linkedlist struct {
	head *node
	tail *node
	len  atomic.Int32
}

func (l *linkedlist) Len() int {
	return int(l.len.Load())
}

func (l *linkedlist) Head() *node {
	return l.head
}

func (l *linkedlist) Tail() *node {
	return l.tail
}

func (l *linkedlist) PushBack(value Value) {
	el := newnode(value, nil)
	if l.tail == nil { // First el
		l.head, l.tail = el, el
	} else {
		l.tail.next = el
		l.tail = el
	}

	l.len.Inc()
}

func (l *linkedlist) PushFront(value Value) {
	el := newnode(value, l.head)
	if l.head == nil { // First el
		l.tail = el
	}

	l.head = el
	l.len.Inc()
}

// InsertAfter links a new node right after the nth node, 0 based.
// When the nth node is the tail, the new node becomes the tail.
func (l *linkedlist) InsertAfter(nth int, value Value) error {
	el, err := l.nthnode(nth)
	if err != nil {
		return err
	}

	el.next = newnode(value, el.next)
	if l.tail == el {
		l.tail = el.next
	}

	l.len.Inc()
	return nil
}

// Nth returns the node nth hops from head, 0 based.
func (l *linkedlist) Nth(nth int) (*node, error) {
	return l.nthnode(nth)
}

// UpdateNth overwrites the value held by the nth node, 0 based.
func (l *linkedlist) UpdateNth(nth int, value Value) error {
	el, err := l.nthnode(nth)
	if err != nil {
		return err
	}

	el.value = value
	return nil
}

// Split severs the list after the nth element, counting from 1.
// The receiver keeps elements 1..nth and is returned as the left
// list; the right list takes over the remaining nodes without
// copying. The receiver must not be used under its old identity
// once split. nth of 0, or past the element count, fails with
// ErrNthOutOfRange and leaves the list untouched.
func (l *linkedlist) Split(nth int) (*linkedlist, *linkedlist, error) {
	if nth == 0 {
		return nil, nil, ErrNthOutOfRange
	}

	el, err := l.nthnode(nth - 1)
	if err != nil {
		return nil, nil, err
	}

	right := NewValueLinkedList()
	right.head = el.next
	if right.head != nil {
		right.tail = l.tail
	}
	right.len.Store(l.len.Load() - int32(nth))

	el.next = nil
	l.tail = el
	l.len.Store(int32(nth))

	return l, right, nil
}

func (l *linkedlist) nthnode(nth int) (*node, error) {
	it := l.Iterator()
	for el, ok := it.nextnode(); ok; el, ok = it.nextnode() {
		if nth == 0 {
			return el, nil
		}

		nth--
	}

	return nil, ErrNthOutOfRange
}

func (l *linkedlist) Iterator() *iterator {
	return &iterator{
		curr: l.head,
	}
}

func (l *linkedlist) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")

	it := l.Iterator()
	for el, ok := it.nextnode(); ok; el, ok = it.nextnode() {
		if el.next == nil {
			_, _ = fmt.Fprintf(&sb, "%v", el.value)
		} else {
			_, _ = fmt.Fprintf(&sb, "%v, ", el.value)
		}
	}

	sb.WriteString("]")
	return sb.String()
}

// Checksum fingerprints the head to tail rendering.
func (l *linkedlist) Checksum() uint64 {
	return util.SequenceHash(l.String())
}

// endregion

// region Iterator
// WARN: NOT CONCURRENT SAFE!!
type iterator struct {
	curr *node
}

func (it *iterator) Next() (Value, bool) {
	el, ok := it.nextnode()
	if !ok {
		var none Value
		return none, false
	}

	return el.value, true
}

func (it *iterator) nextnode() (*node, bool) {
	if it.curr == nil {
		return nil, false
	}

	el := it.curr
	it.curr = el.next
	return el, true
}

// endregion
