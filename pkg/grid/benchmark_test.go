package grid

import (
	"testing"

	"github.com/grindlemire/go-grid/pkg/layout"
)

func BenchmarkShow_MillionByMillion(b *testing.B) {
	meta := DefaultMetadata()
	w := mustWidget(b, 1_000_000, 1_000_000)

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		y := float64(i%100_000) * DefaultRowHeight
		plan := w.Configure(meta, layout.NewRect(float64(i%5000), y, 1920, 1080))
		for c := range plan.Cells() {
			_ = c.Rect
		}
	}
}

func BenchmarkShow_VariableColumns(b *testing.B) {
	meta := DefaultMetadata()
	meta.Columns.SetResizable(true)
	w := mustWidget(b, 1_000_000, 1_000_000)
	w.Sync(meta)
	for i := 0; i < 1_000_000; i += 3 {
		meta.Columns.SetWidth(i, 120)
	}

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		x := float64(i%100_000) * 150
		plan := w.Configure(meta, layout.NewRect(x, 0, 1920, 1080))
		for c := range plan.Cells() {
			_ = c.Rect
		}
	}
}
