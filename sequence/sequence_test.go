package sequence

import (
	"testing"

	"badc0de.net/pkg/go-spriteslice/extract"
	"badc0de.net/pkg/go-spriteslice/ttesting"
)

func box(minX, minY, w, h int) extract.Component {
	return extract.Component{MinX: minX, MinY: minY, MaxX: minX + w - 1, MaxY: minY + h - 1}
}

func order(cs []extract.Component) []int {
	var xs []int
	for _, c := range cs {
		xs = append(xs, c.MinX)
	}
	return xs
}

func TestSortBuckets(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   []extract.Component
		want []int // MinX of each component after sorting
	}{
		{
			name: "same row, tops differ",
			in:   []extract.Component{box(50, 19, 8, 8), box(5, 0, 8, 8), box(30, 10, 8, 8)},
			want: []int{5, 30, 50},
		},
		{
			name: "second row after first",
			in:   []extract.Component{box(1, 20, 8, 8), box(90, 19, 8, 8), box(2, 45, 8, 8)},
			want: []int{90, 1, 2},
		},
		{
			name: "left to right within row",
			in:   []extract.Component{box(40, 25, 8, 8), box(20, 39, 8, 8), box(0, 21, 8, 8)},
			want: []int{0, 20, 40},
		},
		{
			name: "empty",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			Sort(tc.in, DefaultRowHeight)
			got := order(tc.in)
			ttesting.AssertEqualInt(t, "len", len(got), len(tc.want))
			for i := range got {
				if i < len(tc.want) && got[i] != tc.want[i] {
					t.Errorf("got order %v; want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestSortStable(t *testing.T) {
	a, b := box(10, 3, 8, 8), box(10, 7, 4, 4)
	cs := []extract.Component{a, b}
	Sort(cs, DefaultRowHeight)
	ttesting.AssertEqualInt(t, "first keeps place", cs[0].MinY, 3)

	cs = []extract.Component{b, a}
	Sort(cs, DefaultRowHeight)
	ttesting.AssertEqualInt(t, "first keeps place when swapped", cs[0].MinY, 7)
}

func TestSortRowHeight(t *testing.T) {
	cs := []extract.Component{box(50, 12, 8, 8), box(5, 0, 8, 8)}
	ttesting.AssertEqualInt(t, "applied", Sort(cs, 10), 10)
	ttesting.AssertEqualInt(t, "narrow band splits rows", cs[0].MinX, 5)

	cs = []extract.Component{box(50, 5, 8, 8), box(5, 12, 8, 8)}
	ttesting.AssertEqualInt(t, "negative means default", Sort(cs, -3), DefaultRowHeight)
	ttesting.AssertEqualInt(t, "default band joins rows", cs[0].MinX, 5)
}

func TestEstimateRowHeight(t *testing.T) {
	ttesting.AssertEqualInt(t, "empty", EstimateRowHeight(nil), DefaultRowHeight)
	cs := []extract.Component{box(0, 0, 8, 16), box(20, 0, 8, 14), box(40, 0, 8, 16), box(60, 0, 8, 3)}
	ttesting.AssertEqualInt(t, "median", EstimateRowHeight(cs), 14)

	cs = []extract.Component{box(0, 40, 16, 16), box(20, 2, 16, 16), box(40, 30, 16, 16)}
	ttesting.AssertEqualInt(t, "auto applied", Sort(cs, Auto), 16)
	ttesting.AssertEqualInt(t, "auto order", cs[0].MinX, 20)
}
