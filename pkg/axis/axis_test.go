package axis

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// variableOf builds a Variable layout with the given sizes.
func variableOf(defaultSize float64, sizes ...float64) *Layout {
	l := NewVariable(defaultSize)
	l.SetLen(len(sizes))
	for i, v := range sizes {
		l.SetWidth(i, v)
	}
	return l
}

// expectContractPanic runs fn and returns the *ContractError it panicked with.
func expectContractPanic(t *testing.T, fn func()) *ContractError {
	t.Helper()
	var got *ContractError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected panic, got none")
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("panic value = %#v, want *ContractError", r)
			}
		}()
		fn()
	}()
	return got
}

// checkPrefix verifies the cumulative cache against a naive prefix sum.
func checkPrefix(t *testing.T, l *Layout) {
	t.Helper()
	var acc float64
	for i := 0; i < l.Len(); i++ {
		got, ok := l.Accum(i)
		if !ok {
			t.Fatalf("Accum(%d) not ok for len %d", i, l.Len())
		}
		if got != acc {
			t.Fatalf("Accum(%d) = %v, want %v", i, got, acc)
		}
		w, _ := l.Width(i)
		acc += w
	}
	if got := l.TotalExtent(); got != acc {
		t.Fatalf("TotalExtent() = %v, want %v", got, acc)
	}
	if l.Mode() == Variable && len(l.ends) != len(l.sizes) {
		t.Fatalf("len(ends) = %d, len(sizes) = %d", len(l.ends), len(l.sizes))
	}
}

func TestNew_Defaults(t *testing.T) {
	l := New(200)

	if l.Mode() != Uniform {
		t.Errorf("Mode() = %v, want uniform", l.Mode())
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
	if l.TotalExtent() != 0 {
		t.Errorf("TotalExtent() = %v, want 0", l.TotalExtent())
	}
	if got, ok := l.Accum(0); !ok || got != 0 {
		t.Errorf("Accum(0) = %v, %v, want 0, true", got, ok)
	}
	if _, ok := l.Width(0); ok {
		t.Error("Width(0) on empty axis should not be ok")
	}
}

func TestNew_InvalidDefaultPanics(t *testing.T) {
	for name, v := range map[string]float64{
		"negative": -1,
		"NaN":      math.NaN(),
		"infinite": math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			err := expectContractPanic(t, func() { New(v) })
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("error = %v, want ErrInvalidSize", err)
			}
		})
	}
}

func TestLayout_WidthAndAccum(t *testing.T) {
	type tc struct {
		layout *Layout
		widths []float64
		accums []float64
	}

	uniform := New(25)
	uniform.SetLen(4)

	tests := map[string]tc{
		"uniform": {
			layout: uniform,
			widths: []float64{25, 25, 25, 25},
			accums: []float64{0, 25, 50, 75, 100},
		},
		"variable": {
			layout: variableOf(5, 10, 20, 10, 10, 50),
			widths: []float64{10, 20, 10, 10, 50},
			accums: []float64{0, 10, 30, 40, 50, 100},
		},
		"variable with zero width": {
			layout: variableOf(5, 0, 3, 0),
			widths: []float64{0, 3, 0},
			accums: []float64{0, 0, 3, 3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for i, want := range tt.widths {
				if got, ok := tt.layout.Width(i); !ok || got != want {
					t.Errorf("Width(%d) = %v, %v, want %v", i, got, ok, want)
				}
			}
			for i, want := range tt.accums {
				if got, ok := tt.layout.Accum(i); !ok || got != want {
					t.Errorf("Accum(%d) = %v, %v, want %v", i, got, ok, want)
				}
			}
			if _, ok := tt.layout.Width(len(tt.widths)); ok {
				t.Errorf("Width(%d) should be out of range", len(tt.widths))
			}
			if _, ok := tt.layout.Accum(len(tt.accums)); ok {
				t.Errorf("Accum(%d) should be out of range", len(tt.accums))
			}
			if _, ok := tt.layout.Width(-1); ok {
				t.Error("Width(-1) should be out of range")
			}
			if got, want := tt.layout.TotalExtent(), tt.accums[len(tt.accums)-1]; got != want {
				t.Errorf("TotalExtent() = %v, want %v", got, want)
			}
		})
	}
}

func TestLayout_SetLenPreservesSurvivors(t *testing.T) {
	l := NewVariable(5)
	l.SetLen(10)
	l.SetWidth(0, 1)
	l.SetWidth(1, 2)
	l.SetWidth(2, 3)
	l.SetWidth(7, 40)

	l.SetLen(3)
	checkPrefix(t, l)
	l.SetLen(10)
	checkPrefix(t, l)

	want := []float64{1, 2, 3, 5, 5, 5, 5, 5, 5, 5}
	for i, w := range want {
		if got, _ := l.Width(i); got != w {
			t.Errorf("Width(%d) = %v, want %v", i, got, w)
		}
	}
	if got := l.TotalExtent(); got != 41 {
		t.Errorf("TotalExtent() = %v, want 41", got)
	}
}

func TestLayout_SetLenUsesCurrentDefault(t *testing.T) {
	l := NewVariable(5)
	l.SetLen(2)
	l.SetDefaultSize(8)
	l.SetLen(4)

	want := []float64{5, 5, 8, 8}
	for i, w := range want {
		if got, _ := l.Width(i); got != w {
			t.Errorf("Width(%d) = %v, want %v", i, got, w)
		}
	}
	checkPrefix(t, l)
}

func TestLayout_SetLenNegativePanics(t *testing.T) {
	l := New(10)
	err := expectContractPanic(t, func() { l.SetLen(-1) })
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("error = %v, want ErrNegativeLength", err)
	}
}

func TestLayout_SetWidthOutOfRange(t *testing.T) {
	type tc struct {
		layout *Layout
		index  int
	}

	uniform := New(10)
	uniform.SetLen(3)

	tests := map[string]tc{
		"variable past end": {layout: variableOf(10, 1, 2, 3), index: 3},
		"variable negative": {layout: variableOf(10, 1, 2, 3), index: -1},
		"uniform past end":  {layout: uniform, index: 3},
		"empty variable":    {layout: NewVariable(10), index: 0},
		"far past the end":  {layout: variableOf(10, 1), index: 1 << 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			before := tt.layout.TotalExtent()
			err := expectContractPanic(t, func() { tt.layout.SetWidth(tt.index, 99) })
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("error = %v, want ErrIndexOutOfRange", err)
			}
			if err.Index != tt.index {
				t.Errorf("error index = %d, want %d", err.Index, tt.index)
			}
			if got := tt.layout.TotalExtent(); got != before {
				t.Errorf("TotalExtent() changed from %v to %v", before, got)
			}
		})
	}
}

func TestLayout_TrySetWidthRejectsInvalidSizes(t *testing.T) {
	l := variableOf(10, 1, 2, 3)

	for name, v := range map[string]float64{
		"negative": -0.5,
		"NaN":      math.NaN(),
		"+Inf":     math.Inf(1),
		"-Inf":     math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			err := l.TrySetWidth(1, v)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("TrySetWidth(1, %v) = %v, want ErrInvalidSize", v, err)
			}
			if got, _ := l.Width(1); got != 2 {
				t.Errorf("Width(1) = %v after rejected write, want 2", got)
			}
			checkPrefix(t, l)
		})
	}
}

func TestLayout_UniformSetWidthChangesSharedSize(t *testing.T) {
	l := New(10)
	l.SetLen(4)
	l.SetWidth(2, 15)

	for i := range 4 {
		if got, _ := l.Width(i); got != 15 {
			t.Errorf("Width(%d) = %v, want 15", i, got)
		}
	}
	if got := l.TotalExtent(); got != 60 {
		t.Errorf("TotalExtent() = %v, want 60", got)
	}
}

func TestLayout_SetWidths(t *testing.T) {
	type tc struct {
		layout   *Layout
		sizes    []float64
		wantLen  int
		wantSize []float64
	}

	tests := map[string]tc{
		"variable grows": {
			layout:   variableOf(10, 1, 2),
			sizes:    []float64{5, 0, 7, 3},
			wantLen:  4,
			wantSize: []float64{5, 0, 7, 3},
		},
		"variable shrinks": {
			layout:   variableOf(10, 1, 2, 3, 4),
			sizes:    []float64{9},
			wantLen:  1,
			wantSize: []float64{9},
		},
		"variable empty": {
			layout:   variableOf(10, 1, 2),
			sizes:    nil,
			wantLen:  0,
			wantSize: []float64{},
		},
		"uniform takes last size": {
			layout:   New(10),
			sizes:    []float64{4, 6, 8},
			wantLen:  3,
			wantSize: []float64{8, 8, 8},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if err := tt.layout.SetWidths(tt.sizes); err != nil {
				t.Fatalf("SetWidths(%v) = %v", tt.sizes, err)
			}
			if got := tt.layout.Len(); got != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", got, tt.wantLen)
			}
			for i, want := range tt.wantSize {
				if got, _ := tt.layout.Width(i); got != want {
					t.Errorf("Width(%d) = %v, want %v", i, got, want)
				}
			}
			checkPrefix(t, tt.layout)
		})
	}
}

func TestLayout_SetWidthsCopiesInput(t *testing.T) {
	l := NewVariable(10)
	sizes := []float64{1, 2, 3}
	if err := l.SetWidths(sizes); err != nil {
		t.Fatal(err)
	}
	sizes[0] = 100

	if got, _ := l.Width(0); got != 1 {
		t.Errorf("Width(0) = %v after caller mutation, want 1", got)
	}
}

func TestLayout_SetWidthsRejectsInvalidSizes(t *testing.T) {
	l := variableOf(10, 1, 2, 3)

	err := l.SetWidths([]float64{4, 5, math.NaN(), 6})
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("SetWidths = %v, want ErrInvalidSize", err)
	}
	var ce *ContractError
	if !errors.As(err, &ce) || ce.Index != 2 {
		t.Errorf("error = %#v, want index 2", err)
	}
	if got := l.Len(); got != 3 {
		t.Errorf("Len() = %d after rejected write, want 3", got)
	}
	if got := l.TotalExtent(); got != 6 {
		t.Errorf("TotalExtent() = %v after rejected write, want 6", got)
	}
}

func TestLayout_SetWidthsMatchesSetWidth(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	sizes := make([]float64, 500)
	for i := range sizes {
		sizes[i] = float64(rng.IntN(40))
	}

	bulk := NewVariable(10)
	if err := bulk.SetWidths(sizes); err != nil {
		t.Fatal(err)
	}
	single := variableOf(10, sizes...)

	for i := 0; i <= len(sizes); i++ {
		got, _ := bulk.Accum(i)
		want, _ := single.Accum(i)
		if got != want {
			t.Fatalf("Accum(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestLayout_CacheNeverStale(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	l := NewVariable(3)
	l.SetLen(50)
	checkPrefix(t, l)

	for range 500 {
		switch rng.IntN(5) {
		case 0, 1:
			if l.Len() > 0 {
				l.SetWidth(rng.IntN(l.Len()), float64(rng.IntN(40)))
			}
		case 2:
			l.SetLen(rng.IntN(80))
		case 3:
			l.SetResizable(rng.IntN(2) == 0)
		case 4:
			l.SetDefaultSize(float64(1 + rng.IntN(9)))
		}
		checkPrefix(t, l)
	}
}

func TestLayout_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	variable := NewVariable(1)
	variable.SetLen(1000)
	for i := range 1000 {
		variable.SetWidth(i, rng.Float64()*30)
	}
	uniform := New(0.7)
	uniform.SetLen(1000)

	for name, l := range map[string]*Layout{"variable": variable, "uniform": uniform} {
		t.Run(name, func(t *testing.T) {
			prev, _ := l.Accum(0)
			for i := 1; i <= l.Len(); i++ {
				cur, _ := l.Accum(i)
				if cur < prev {
					t.Fatalf("Accum(%d) = %v < Accum(%d) = %v", i, cur, i-1, prev)
				}
				prev = cur
			}
		})
	}
}

func TestLayout_SetResizable(t *testing.T) {
	l := New(7.5)
	l.SetLen(100)

	if l.SetResizable(false) {
		t.Error("SetResizable(false) on uniform layout reported a change")
	}
	if !l.SetResizable(true) {
		t.Fatal("SetResizable(true) did not switch mode")
	}
	if l.Mode() != Variable {
		t.Fatalf("Mode() = %v, want variable", l.Mode())
	}
	if l.Len() != 100 {
		t.Errorf("Len() = %d, want 100", l.Len())
	}
	for i := range 100 {
		if got, _ := l.Width(i); got != 7.5 {
			t.Fatalf("Width(%d) = %v, want 7.5", i, got)
		}
	}
	checkPrefix(t, l)
	if l.SetResizable(true) {
		t.Error("second SetResizable(true) reported a change")
	}

	l.SetWidth(0, 12)
	l.SetWidth(1, 3)
	l.SetResizable(false)
	if l.Mode() != Uniform {
		t.Fatalf("Mode() = %v, want uniform", l.Mode())
	}
	if got, _ := l.Width(99); got != 12 {
		t.Errorf("Width(99) = %v, want first width 12", got)
	}
	if got := l.TotalExtent(); got != 1200 {
		t.Errorf("TotalExtent() = %v, want 1200", got)
	}
}

func TestLayout_SetResizableEmptyAxisUsesDefault(t *testing.T) {
	l := NewVariable(9)
	l.SetResizable(false)
	l.SetLen(2)

	if got, _ := l.Width(1); got != 9 {
		t.Errorf("Width(1) = %v, want default 9", got)
	}
}

func TestLayout_ModeRoundTripPreservesExtent(t *testing.T) {
	for _, size := range []float64{0, 0.1, 1, 20, 199.99} {
		for _, n := range []int{0, 1, 3, 1000} {
			l := New(size)
			l.SetLen(n)
			before := l.TotalExtent()

			l.SetResizable(true)
			l.SetResizable(false)

			if got := l.TotalExtent(); got != before {
				t.Errorf("size %v len %d: TotalExtent() = %v after round trip, want %v", size, n, got, before)
			}
		}
	}
}

func TestLayout_Clone(t *testing.T) {
	l := variableOf(4, 1, 2, 3)
	c := l.Clone()

	c.SetWidth(0, 100)
	c.SetLen(5)

	if got, _ := l.Width(0); got != 1 {
		t.Errorf("original Width(0) = %v after clone mutation, want 1", got)
	}
	if l.Len() != 3 {
		t.Errorf("original Len() = %d, want 3", l.Len())
	}
	checkPrefix(t, l)
	checkPrefix(t, c)
}

func TestFromState(t *testing.T) {
	l := variableOf(4, 1, 2, 3)
	restored, err := FromState(l.Snapshot())
	if err != nil {
		t.Fatalf("FromState() error = %v", err)
	}
	checkPrefix(t, restored)
	if restored.TotalExtent() != 6 {
		t.Errorf("TotalExtent() = %v, want 6", restored.TotalExtent())
	}

	u := New(3)
	u.SetLen(4)
	restored, err = FromState(u.Snapshot())
	if err != nil {
		t.Fatalf("FromState() error = %v", err)
	}
	if restored.Mode() != Uniform || restored.Len() != 4 || restored.TotalExtent() != 12 {
		t.Errorf("restored uniform = %v len %d extent %v", restored.Mode(), restored.Len(), restored.TotalExtent())
	}

	if _, err := FromState(State{Mode: Variable, DefaultSize: 1, Sizes: []float64{1, -2}}); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("FromState(negative size) error = %v, want ErrInvalidSize", err)
	}
	if _, err := FromState(State{Mode: Uniform, DefaultSize: 1, Size: 1, Count: -1}); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("FromState(negative count) error = %v, want ErrNegativeLength", err)
	}
	if _, err := FromState(State{Mode: Mode(9), DefaultSize: 1}); err == nil {
		t.Error("FromState(unknown mode) should fail")
	}
}

func TestMode_Text(t *testing.T) {
	for _, m := range []Mode{Uniform, Variable} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", m, err)
		}
		var got Mode
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if got != m {
			t.Errorf("round trip %v = %v", m, got)
		}
	}

	if _, err := Mode(7).MarshalText(); err == nil {
		t.Error("MarshalText(Mode(7)) should fail")
	}
	var m Mode
	if err := m.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error(`UnmarshalText("diagonal") should fail`)
	}
}
