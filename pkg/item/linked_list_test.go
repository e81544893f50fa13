package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreate(t *testing.T) {
	ll := NewItemLinkedList()
	assert.Equal(t, 0, ll.Len())
	assert.Nil(t, ll.Head())
	assert.Nil(t, ll.Tail())
	assert.Equal(t, "[]", ll.String())
}

func TestPushBackRender(t *testing.T) {
	ll := NewItemLinkedList()
	ll.PushBack(NewItem(1))
	ll.PushBack(NewItem(2))
	ll.PushBack(NewItem(3))

	assert.Equal(t, 3, ll.Len())
	assert.Equal(t, "[item(1), item(2), item(3)]", ll.String())
}

func TestAccessCountSharedThroughAliases(t *testing.T) {
	ll := NewItemLinkedList()
	for i := 0; i < 3; i++ {
		ll.PushBack(NewItem(i))
	}

	// The node handle and the iterator see the same item counter
	n, err := ll.Nth(1)
	assert.Nil(t, err)

	it := ll.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		v.Touch()
	}

	assert.Equal(t, int64(1), n.Value().AccessCount.Load())
}

func TestSplitKeepsNodes(t *testing.T) {
	ll := NewItemLinkedList()
	for i := 1; i <= 4; i++ {
		ll.PushBack(NewItem(i))
	}

	// Hold a node from the suffix before splitting
	held, err := ll.Nth(2)
	assert.Nil(t, err)

	left, right, err := ll.Split(2)
	assert.Nil(t, err)
	assert.Equal(t, "[item(1), item(2)]", left.String())
	assert.Equal(t, "[item(3), item(4)]", right.String())

	// The right list reuses the original nodes, no copying
	assert.True(t, held == right.Head())

	held.Value().Touch()
	assert.Equal(t, int64(1), right.Head().Value().AccessCount.Load())
}

func TestUpdateNthSameNode(t *testing.T) {
	ll := NewItemLinkedList()
	ll.PushBack(NewItem(1))
	ll.PushBack(NewItem(2))

	n, err := ll.Nth(1)
	assert.Nil(t, err)

	assert.Nil(t, ll.UpdateNth(1, NewItem(9)))
	assert.Equal(t, 9, n.Value().Id)
	assert.Equal(t, "[item(1), item(9)]", ll.String())
}

func TestInsertAfterOutOfRange(t *testing.T) {
	ll := NewItemLinkedList()
	ll.PushBack(NewItem(1))

	assert.Equal(t, ErrNthOutOfRange, ll.InsertAfter(1, NewItem(2)))
	assert.Equal(t, 1, ll.Len())
}
