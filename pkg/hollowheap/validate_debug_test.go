//go:build debug

package hollowheap_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	. "github.com/gopherlabs/hollowheap/pkg/hollowheap"
)

func TestValidateAcceptsHealthyHeap(t *testing.T) {
	Convey("Validate does not panic on a heap shaped by ordinary operations", t, func() {
		h := NewMax[int]()
		for _, v := range []int{1, -5, 6, 10, -555} {
			h.Push(v)
		}
		handle := h.Push(666)
		h.Push(100)
		h.ChangeKey(handle, 777)

		h.Delete(h.Push(-1))

		// Seven live items; the deleted -1 is still a hollow node in the arena.
		So(func() { h.Validate(7) }, ShouldNotPanic)

		h.Pop()

		So(func() { h.Validate(h.Len()) }, ShouldNotPanic)
	})
}

func TestValidateCatchesLiveCountMismatch(t *testing.T) {
	Convey("Validate aborts when the caller's live count disagrees with the heap's", t, func() {
		h := NewMin[int]()
		h.Push(1)
		h.Push(2)

		So(func() { h.Validate(99) }, ShouldPanic)
	})
}
