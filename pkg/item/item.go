package item

import (
	"fmt"

	"go.uber.org/atomic"
)

type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func NewItem(id int) Item {
	return Item{
		Id:          id,
		AccessCount: atomic.NewInt64(0),
	}
}

func (it Item) Touch() Item {
	it.AccessCount.Inc()
	return it
}

func (it Item) String() string {
	return fmt.Sprintf("item(%d)", it.Id)
}
