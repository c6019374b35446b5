package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageDefaults(t *testing.T) {
	plan := ParsePage("", "")
	assert.Equal(t, 1, plan.CurrentPage)
	assert.Equal(t, 10, plan.PageSize)
	assert.Equal(t, 0, plan.Offset())
}

func TestParsePageNormalization(t *testing.T) {
	cases := []struct {
		currentPage string
		pageSize    string
		wantPage    int
		wantSize    int
	}{
		{"3", "20", 3, 20},
		{"-3", "-20", 3, 20},
		{"0", "0", 1, 10},
		{"abc", "xyz", 1, 10},
		{" 2 ", " 5 ", 2, 5},
		{"2.5", "7", 1, 7},
	}
	for _, tc := range cases {
		plan := ParsePage(tc.currentPage, tc.pageSize)
		assert.Equal(t, tc.wantPage, plan.CurrentPage, "currentPage=%q", tc.currentPage)
		assert.Equal(t, tc.wantSize, plan.PageSize, "pageSize=%q", tc.pageSize)
	}
}

func TestListPlanOffset(t *testing.T) {
	plan := ListPlan{CurrentPage: 4, PageSize: 25}
	assert.Equal(t, 75, plan.Offset())
}
