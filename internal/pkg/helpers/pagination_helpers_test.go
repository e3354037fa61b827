package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePageParam(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{name: "default", query: "", want: 0},
		{name: "explicit", query: "page=2", want: 2},
		{name: "negative", query: "page=-1", wantErr: true},
		{name: "not a number", query: "page=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageParam(testContext(tt.query))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExactLimit(t *testing.T) {
	c := testContext("")
	limit, err := ParseExactLimit(c, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, limit)

	_, err = ParseExactLimit(testContext("limit=20"), 10)
	assert.Error(t, err)

	_, err = ParseExactLimit(testContext("limit=9"), 10)
	assert.Error(t, err)
}

func TestParseMinLimit(t *testing.T) {
	limit, err := ParseMinLimit(testContext(""), MinAlumniLimit)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, limit)

	limit, err = ParseMinLimit(testContext("limit=6"), MinAlumniLimit)
	require.NoError(t, err)
	assert.Equal(t, 6, limit)

	// The bound is exclusive.
	_, err = ParseMinLimit(testContext("limit=5"), MinAlumniLimit)
	assert.Error(t, err)

	_, err = ParseMinLimit(testContext("limit=0"), MinAlumniLimit)
	assert.Error(t, err)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(25, 0, 10)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 1, p.Current)
	assert.Equal(t, 10, p.Limit)

	p = NewPagination(25, 2, 10)
	assert.Equal(t, 3, p.Current)

	p = NewPagination(0, 0, 10)
	assert.Equal(t, 0, p.Pages)
	assert.Equal(t, 1, p.Current)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, uint64(0), Offset(0, 10))
	assert.Equal(t, uint64(20), Offset(2, 10))
}
