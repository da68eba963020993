package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name      string
		itemCount int
		perPage   int
		want      int
		wantErr   bool
	}{
		{name: "empty group still has a page", itemCount: 0, perPage: 2, want: 1},
		{name: "single item", itemCount: 1, perPage: 2, want: 1},
		{name: "exact fit", itemCount: 4, perPage: 2, want: 2},
		{name: "remainder page", itemCount: 5, perPage: 2, want: 3},
		{name: "per page larger than count", itemCount: 3, perPage: 10, want: 1},
		{name: "per page of one", itemCount: 7, perPage: 1, want: 7},
		{name: "negative count treated as empty", itemCount: -4, perPage: 3, want: 1},
		{name: "zero per page", itemCount: 5, perPage: 0, wantErr: true},
		{name: "negative per page", itemCount: 5, perPage: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PageCount(tt.itemCount, tt.perPage)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfiguration)
				assert.Contains(t, err.Error(), "per_page")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageCount_MatchesCeiling(t *testing.T) {
	for perPage := 1; perPage <= 7; perPage++ {
		for count := 1; count <= 50; count++ {
			got, err := PageCount(count, perPage)
			require.NoError(t, err)
			want := (count + perPage - 1) / perPage
			assert.Equal(t, want, got, "count=%d perPage=%d", count, perPage)
		}
	}
}

func TestValidatePerPage(t *testing.T) {
	require.NoError(t, ValidatePerPage(1))
	require.NoError(t, ValidatePerPage(50))

	for _, perPage := range []int{0, -1} {
		err := ValidatePerPage(perPage)
		require.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Contains(t, err.Error(), "per_page must be >= 1")
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		perPage   int
		page      int
		wantStart int
		wantEnd   int
	}{
		{name: "first page", total: 5, perPage: 2, page: 1, wantStart: 0, wantEnd: 2},
		{name: "middle page", total: 5, perPage: 2, page: 2, wantStart: 2, wantEnd: 4},
		{name: "remainder page", total: 5, perPage: 2, page: 3, wantStart: 4, wantEnd: 5},
		{name: "beyond range", total: 5, perPage: 2, page: 4, wantStart: 5, wantEnd: 5},
		{name: "empty sequence", total: 0, perPage: 2, page: 1, wantStart: 0, wantEnd: 0},
		{name: "zero page", total: 5, perPage: 2, page: 0, wantStart: 5, wantEnd: 5},
		{name: "zero per page", total: 5, perPage: 0, page: 1, wantStart: 5, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.total, tt.perPage, tt.page)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		page int
		want []string
	}{
		{name: "page 1", page: 1, want: []string{"a", "b"}},
		{name: "page 2", page: 2, want: []string{"c", "d"}},
		{name: "page 3 holds the remainder", page: 3, want: []string{"e"}},
		{name: "out of range page", page: 9, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(items, 2, tt.page))
		})
	}

	t.Run("EmptyInput", func(t *testing.T) {
		got := Slice([]int{}, 3, 1)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSlice_ReconstructsSequence(t *testing.T) {
	for perPage := 1; perPage <= 6; perPage++ {
		for count := 0; count <= 20; count++ {
			items := make([]int, count)
			for i := range items {
				items[i] = i
			}

			pages, err := PageCount(count, perPage)
			require.NoError(t, err)

			joined := []int{}
			for page := 1; page <= pages; page++ {
				chunk := Slice(items, perPage, page)
				assert.LessOrEqual(t, len(chunk), perPage)
				joined = append(joined, chunk...)
			}
			assert.Equal(t, items, joined, "count=%d perPage=%d", count, perPage)
		}
	}
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "index.html", PagePath(1))
	assert.Equal(t, "page2.html", PagePath(2))
	assert.Equal(t, "page10.html", PagePath(10))
}

func TestBuildLinks(t *testing.T) {
	t.Run("SinglePage", func(t *testing.T) {
		links := BuildLinks(1)
		require.Len(t, links, 1)
		assert.Equal(t, 1, links[0].Page)
		assert.Equal(t, IndexName, links[0].Path)
		assert.Nil(t, links[0].PreviousPage)
		assert.Nil(t, links[0].NextPage)
		assert.Nil(t, links[0].PreviousPath)
		assert.Nil(t, links[0].NextPath)
	})

	t.Run("ThreePages", func(t *testing.T) {
		links := BuildLinks(3)
		require.Len(t, links, 3)

		assert.Nil(t, links[0].PreviousPath)
		require.NotNil(t, links[0].NextPath)
		assert.Equal(t, "page2.html", *links[0].NextPath)
		assert.Equal(t, 2, *links[0].NextPage)

		require.NotNil(t, links[1].PreviousPath)
		assert.Equal(t, IndexName, *links[1].PreviousPath)
		assert.Equal(t, 1, *links[1].PreviousPage)
		assert.Equal(t, "page3.html", *links[1].NextPath)
		assert.Equal(t, 3, *links[1].NextPage)

		assert.Equal(t, "page2.html", *links[2].PreviousPath)
		assert.Nil(t, links[2].NextPath)
		assert.Nil(t, links[2].NextPage)
	})

	t.Run("InteriorPagesLinkNeighbours", func(t *testing.T) {
		const total = 8
		links := BuildLinks(total)
		require.Len(t, links, total)
		for n := 2; n < total; n++ {
			link := links[n-1]
			assert.Equal(t, n, link.Page)
			assert.Equal(t, n-1, *link.PreviousPage)
			assert.Equal(t, n+1, *link.NextPage)
			assert.Equal(t, links[n-2].Path, *link.PreviousPath)
			assert.Equal(t, links[n].Path, *link.NextPath)
		}
	})

	t.Run("NeverLinksPageOne", func(t *testing.T) {
		for _, link := range BuildLinks(5) {
			assert.NotEqual(t, "page1.html", link.Path)
			if link.PreviousPath != nil {
				assert.NotEqual(t, "page1.html", *link.PreviousPath)
			}
		}
	})

	t.Run("NonPositiveTotal", func(t *testing.T) {
		assert.Len(t, BuildLinks(0), 1)
		assert.Len(t, BuildLinks(-3), 1)
	})
}

func TestNewInfo(t *testing.T) {
	links := BuildLinks(3)

	first := NewInfo(links[0], 2, 3, 5)
	assert.Equal(t, 2, first.PerPage)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 5, first.TotalItems)
	assert.False(t, first.HasPrevious())
	assert.True(t, first.HasNext())

	last := NewInfo(links[2], 2, 3, 5)
	assert.True(t, last.HasPrevious())
	assert.False(t, last.HasNext())
	assert.Equal(t, "page2.html", *last.PreviousPath)

	partial := Info{PreviousPage: intPtr(1), NextPage: intPtr(3)}
	assert.False(t, partial.HasPrevious(), "a page number without a path is not a link")
	assert.False(t, partial.HasNext())
}
