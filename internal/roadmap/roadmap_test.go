package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapShape(t *testing.T) {
	assert.Len(t, Weeks, 14)
	assert.Equal(t, 98, TotalDays())

	for _, w := range Weeks {
		assert.Len(t, w.Days, 7, "week %d", w.Week)
		assert.NotEmpty(t, w.Title)
		assert.NotEmpty(t, w.Goal)
	}
}

func TestDayResourcesResolve(t *testing.T) {
	// 每日引用的资源ID必须能在目录里找到
	for _, w := range Weeks {
		for _, d := range w.Days {
			for _, id := range d.Resources {
				assert.NotNil(t, ResourceByID(id), "week %d day %s references unknown resource %s", w.Week, d.Day, id)
			}
		}
	}
}

func TestResourceByID(t *testing.T) {
	r := ResourceByID("w3_python_getstarted")
	require.NotNil(t, r)
	assert.Equal(t, "Python Setup - W3Schools", r.Title)
	assert.Equal(t, "text", r.Type)

	assert.Nil(t, ResourceByID("no_such_resource"))
}

func TestWeekByNumber(t *testing.T) {
	w := WeekByNumber(1)
	require.NotNil(t, w)
	assert.Equal(t, "Foundation & Environment", w.Title)

	assert.Nil(t, WeekByNumber(0))
	assert.Nil(t, WeekByNumber(15))
}

func TestFilterResourcesByType(t *testing.T) {
	all := FilterResourcesByType("")
	assert.Len(t, all, len(Resources))

	texts := FilterResourcesByType("text")
	assert.NotEmpty(t, texts)
	for _, r := range texts {
		assert.Equal(t, "text", r.Type)
	}

	assert.Empty(t, FilterResourcesByType("podcast"))
}

func TestSearchResources(t *testing.T) {
	hits := SearchResources("LINKED LIST")
	assert.NotEmpty(t, hits)
	assert.Empty(t, SearchResources("quantum chromodynamics"))

	// URL也参与匹配
	byURL := SearchResources("w3schools.com/dsa")
	assert.NotEmpty(t, byURL)
}

func TestSearchWeeks(t *testing.T) {
	hits := SearchWeeks("arrays")
	assert.NotEmpty(t, hits)
	for _, w := range hits {
		assert.NotZero(t, w.Week)
	}
	assert.Empty(t, SearchWeeks("blockchain"))
}

func TestRelevantResourcesLimit(t *testing.T) {
	hits := RelevantResources("how do arrays and strings and trees work?", 3)
	assert.LessOrEqual(t, len(hits), 3)
	assert.NotEmpty(t, hits)

	// 没有任何词命中标题时返回空
	assert.Empty(t, RelevantResources("qq zz xx", 5))
}

func TestRelevantWeeks(t *testing.T) {
	hits := RelevantWeeks("teach me about recursion and trees", 2)
	assert.LessOrEqual(t, len(hits), 2)
	assert.NotEmpty(t, hits)
}

func TestQuestionWords(t *testing.T) {
	// 按空白切词，标点保留在词内
	words := questionWords("What are Linked Lists, really?!")
	assert.Equal(t, []string{"what", "are", "linked", "lists,", "really?!"}, words)
}
