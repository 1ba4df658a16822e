package request

import (
	"math"
	"testing"
)

func TestPageIndex_Next(t *testing.T) {
	if got := FirstPage.Next(); got != 2 {
		t.Errorf("FirstPage.Next() = %d, want 2", got)
	}
	if got := PageIndex(41).Next(); got != 42 {
		t.Errorf("PageIndex(41).Next() = %d, want 42", got)
	}
}

func TestPageIndex_Next_Overflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Next() at MaxUint64 did not panic")
		}
	}()
	_ = PageIndex(math.MaxUint64).Next()
}

func TestPageIndex_NextSaturating(t *testing.T) {
	if got := PageIndex(7).NextSaturating(); got != 8 {
		t.Errorf("NextSaturating() = %d, want 8", got)
	}
	max := PageIndex(math.MaxUint64)
	if got := max.NextSaturating(); got != max {
		t.Errorf("NextSaturating() at max = %d, want %d", got, uint64(max))
	}
}

func TestPageIndex_String(t *testing.T) {
	if got := PageIndex(13).String(); got != "13" {
		t.Errorf("String() = %q, want %q", got, "13")
	}
}
