package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/saulo-duarte/trivia-lambda/internal/apperr"
	"github.com/saulo-duarte/trivia-lambda/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := numbers(23)

	t.Run("FirstPage", func(t *testing.T) {
		page, err := pagination.Paginate(1, items)
		require.NoError(t, err)
		assert.Equal(t, numbers(10), page)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		page, err := pagination.Paginate(3, items)
		require.NoError(t, err)
		assert.Equal(t, []int{21, 22, 23}, page)
	})

	t.Run("BeyondRange", func(t *testing.T) {
		page, err := pagination.Paginate(4, items)
		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	})

	t.Run("HugePageDoesNotOverflow", func(t *testing.T) {
		page, err := pagination.Paginate(math.MaxInt, items)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		page, err := pagination.Paginate(1, []int{})
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	for _, p := range []int{0, -1, math.MinInt} {
		_, err := pagination.Paginate(p, items)
		assert.ErrorIs(t, err, apperr.ErrUnprocessable, "page %d", p)
	}
}

func TestPageFromRequest(t *testing.T) {
	cases := map[string]int{
		"/questions":          1,
		"/questions?page=3":   3,
		"/questions?page=0":   0,
		"/questions?page=-2":  -2,
		"/questions?page=abc": 1,
		"/questions?page=":    1,

		"/questions?page=99999999999999999999":  math.MaxInt,
		"/questions?page=+99999999999999999999": math.MaxInt,
		"/questions?page=-99999999999999999999": 0,
	}

	for target, want := range cases {
		r := httptest.NewRequest("GET", target, nil)
		assert.Equal(t, want, pagination.PageFromRequest(r), target)
	}
}

func TestOverflowingPageStaysOutOfRange(t *testing.T) {
	items := numbers(5)

	huge := pagination.PageFromRequest(httptest.NewRequest("GET", "/questions?page=99999999999999999999", nil))
	page, err := pagination.Paginate(huge, items)
	require.NoError(t, err)
	assert.Empty(t, page)

	negative := pagination.PageFromRequest(httptest.NewRequest("GET", "/questions?page=-99999999999999999999", nil))
	_, err = pagination.Paginate(negative, items)
	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
}
