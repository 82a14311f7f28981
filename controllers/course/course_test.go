package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Magar0077/EduManage/models"
	"github.com/Magar0077/EduManage/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCatalog(t *testing.T, db *gorm.DB) []models.Course {
	t.Helper()

	courses := []models.Course{
		{Code: "BIT6113", Title: "Data Communication And Network", Category: "BIT", Year: 2025, Description: "Network fundamentals."},
		{Code: "BIT6083", Title: "Object Oriented Programming", Category: "BIT", Year: 2026, Description: "Programming with Java/C++."},
		{Code: "BUS1010", Title: "Principles of Management", Category: "Business", Year: 2026, Description: "Management basics."},
	}
	require.NoError(t, db.Create(&courses).Error)
	return courses
}

func decodeCourses(t *testing.T, env testutils.Envelope) []models.Course {
	t.Helper()

	var data struct {
		Courses []models.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data.Courses
}

func TestGetAllCourses(t *testing.T) {
	app, db := testutils.Setup(t)
	seedCatalog(t, db)

	code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/list", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decodeCourses(t, env), 3)
}

func TestGetAllCoursesFilters(t *testing.T) {
	app, db := testutils.Setup(t)
	seedCatalog(t, db)

	t.Run("ByCategory", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/list?category=BIT", "", nil)
		require.Equal(t, http.StatusOK, code)
		courses := decodeCourses(t, env)
		require.Len(t, courses, 2)
		for _, course := range courses {
			assert.Equal(t, "BIT", course.Category)
		}
	})

	t.Run("ByYear", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/list?year=2026", "", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, decodeCourses(t, env), 2)
	})

	t.Run("BothDimensionsRejected", func(t *testing.T) {
		code, _ := testutils.DoJSON(t, app, http.MethodGet, "/course/list?category=BIT&year=2026", "", nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestSearchCourses(t *testing.T) {
	app, db := testutils.Setup(t)
	seedCatalog(t, db)

	t.Run("EmptyQueryEqualsList", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/search?q=", "", nil)
		require.Equal(t, http.StatusOK, code)
		searched := decodeCourses(t, env)

		code, env = testutils.DoJSON(t, app, http.MethodGet, "/course/list", "", nil)
		require.Equal(t, http.StatusOK, code)
		listed := decodeCourses(t, env)

		assert.Equal(t, listed, searched)
	})

	t.Run("MatchesTitle", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/search?q=Programming", "", nil)
		require.Equal(t, http.StatusOK, code)
		courses := decodeCourses(t, env)
		require.Len(t, courses, 1)
		assert.Equal(t, "BIT6083", courses[0].Code)
	})

	t.Run("MatchesCode", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/search?q=BUS", "", nil)
		require.Equal(t, http.StatusOK, code)
		courses := decodeCourses(t, env)
		require.Len(t, courses, 1)
		assert.Equal(t, "Principles of Management", courses[0].Title)
	})

	t.Run("NoMatches", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/search?q=zzzz", "", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, decodeCourses(t, env))
	})
}

func TestGetCourseDetails(t *testing.T) {
	app, db := testutils.Setup(t)
	courses := seedCatalog(t, db)

	modules := []models.Module{
		{CourseID: courses[0].ID, Title: "Week 1", OrderIndex: 1},
		{CourseID: courses[0].ID, Title: "Week 2", OrderIndex: 2},
	}
	require.NoError(t, db.Create(&modules).Error)

	code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/1", "", nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Course          models.Course   `json:"course"`
		Modules         []models.Module `json:"modules"`
		EnrollmentCount int64           `json:"enrollment_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "BIT6113", data.Course.Code)
	assert.Len(t, data.Modules, 2)
	assert.Equal(t, "Week 1", data.Modules[0].Title)
}

func TestGetCourseNotFound(t *testing.T) {
	app, _ := testutils.Setup(t)

	code, env := testutils.DoJSON(t, app, http.MethodGet, "/course/999", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)
}

func TestGetCourseInvalidID(t *testing.T) {
	app, _ := testutils.Setup(t)

	code, _ := testutils.DoJSON(t, app, http.MethodGet, "/course/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
