package pagination

import (
	"reflect"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []string
	}{
		{
			name:    "middle page collapses both sides",
			current: 5,
			total:   10,
			want:    []string{"1", "...", "3", "4", "5", "6", "7", "...", "10"},
		},
		{
			name:    "first page",
			current: 1,
			total:   10,
			want:    []string{"1", "2", "3", "...", "10"},
		},
		{
			name:    "last page",
			current: 10,
			total:   10,
			want:    []string{"1", "...", "8", "9", "10"},
		},
		{
			name:    "no gaps when everything fits",
			current: 3,
			total:   5,
			want:    []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "single page",
			current: 1,
			total:   1,
			want:    []string{"1"},
		},
		{
			name:    "two pages",
			current: 2,
			total:   2,
			want:    []string{"1", "2"},
		},
		{
			name:    "current clamped above total",
			current: 42,
			total:   3,
			want:    []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Range(tt.current, tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Range(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			}
		})
	}
}

func TestRange_NeverAdjacentEllipses(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			got := Range(current, total)
			for i := 1; i < len(got); i++ {
				if got[i] == Ellipsis && got[i-1] == Ellipsis {
					t.Fatalf("Range(%d, %d) produced adjacent ellipses: %v", current, total, got)
				}
			}
			if got[0] != "1" {
				t.Fatalf("Range(%d, %d) must start at page 1: %v", current, total, got)
			}
		}
	}
}
