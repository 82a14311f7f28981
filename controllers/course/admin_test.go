package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Magar0077/EduManage/models"
	"github.com/Magar0077/EduManage/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerAdminAndStudent registers an admin (the first user) and a student
// and returns their session tokens
func registerAdminAndStudent(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()

	adminToken := testutils.RegisterAndLogin(t, app, "alice", "a@x.com", "pw1secret")
	studentToken := testutils.RegisterAndLogin(t, app, "bob", "b@x.com", "pw2secret")
	return adminToken, studentToken
}

func TestAdminCreateCourse(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)

	code, env := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/create", adminToken, map[string]interface{}{
		"title":       "Data Comm",
		"code":        "BIT6113",
		"category":    "BIT",
		"description": "Network fundamentals.",
	})
	require.Equal(t, http.StatusCreated, code)

	var created models.Course
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "BIT6113", created.Code)

	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAdminCreateCourseDuplicateCode(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)

	payload := map[string]interface{}{
		"title":       "Data Comm",
		"code":        "BIT6113",
		"category":    "BIT",
		"description": "Network fundamentals.",
	}

	code, _ := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/create", adminToken, payload)
	require.Equal(t, http.StatusCreated, code)

	code, env := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/create", adminToken, payload)
	assert.Equal(t, http.StatusConflict, code)
	assert.False(t, env.Status)

	// Catalog size unchanged
	var count int64
	db.Model(&models.Course{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestNonAdminCannotMutateCatalog(t *testing.T) {
	app, db := testutils.Setup(t)
	_, studentToken := registerAdminAndStudent(t, app)
	courses := seedCatalog(t, db)

	requests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodPost, "/admin/course/create", map[string]string{"title": "Sneaky Course", "code": "HAX101"}},
		{http.MethodPut, "/admin/course/1", map[string]string{"title": "Renamed Title", "code": "HAX102"}},
		{http.MethodDelete, "/admin/course/1", nil},
		{http.MethodPost, "/admin/course/1/module", map[string]string{"title": "Sneaky Module"}},
	}

	for _, request := range requests {
		code, env := testutils.DoJSON(t, app, request.method, request.path, studentToken, request.body)
		assert.Equal(t, http.StatusForbidden, code, "%s %s", request.method, request.path)
		assert.False(t, env.Status)
	}

	// Nothing was mutated
	var courseCount, moduleCount int64
	db.Model(&models.Course{}).Count(&courseCount)
	db.Model(&models.Module{}).Count(&moduleCount)
	assert.EqualValues(t, len(courses), courseCount)
	assert.EqualValues(t, 0, moduleCount)

	var first models.Course
	require.NoError(t, db.First(&first, 1).Error)
	assert.Equal(t, courses[0].Title, first.Title)
}

func TestAdminRoutesRequireAuthentication(t *testing.T) {
	app, _ := testutils.Setup(t)

	code, _ := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/create", "", map[string]string{
		"title": "Course", "code": "C100",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAdminUpdateCourse(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)
	seedCatalog(t, db)

	t.Run("Success", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodPut, "/admin/course/1", adminToken, map[string]interface{}{
			"title":       "Advanced Networking",
			"code":        "BIT6113",
			"category":    "BIT",
			"instructor":  "Dr. Rai",
			"year":        2026,
			"description": "Updated syllabus.",
		})
		require.Equal(t, http.StatusOK, code)

		var updated models.Course
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "Advanced Networking", updated.Title)
		assert.Equal(t, "Dr. Rai", updated.Instructor)
	})

	t.Run("NotFound", func(t *testing.T) {
		code, _ := testutils.DoJSON(t, app, http.MethodPut, "/admin/course/999", adminToken, map[string]string{
			"title": "Ghost Course",
			"code":  "GC999",
		})
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("CodeCollision", func(t *testing.T) {
		// Course 1 may not take course 2's code
		code, _ := testutils.DoJSON(t, app, http.MethodPut, "/admin/course/1", adminToken, map[string]string{
			"title": "Data Communication And Network",
			"code":  "BIT6083",
		})
		assert.Equal(t, http.StatusConflict, code)
	})
}

func TestAdminDeleteCourseCascades(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)
	courses := seedCatalog(t, db)

	// Two modules and three enrollments hang off course 1
	modules := []models.Module{
		{CourseID: courses[0].ID, Title: "Week 1", OrderIndex: 1},
		{CourseID: courses[0].ID, Title: "Week 2", OrderIndex: 2},
	}
	require.NoError(t, db.Create(&modules).Error)

	for _, username := range []string{"carol", "dave", "erin"} {
		token := testutils.RegisterAndLogin(t, app, username, username+"@x.com", "pw3secret")
		code, _ := testutils.DoJSON(t, app, http.MethodPost, "/course/1/enroll", token, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	// An unrelated enrollment on course 2 must survive
	code, _ := testutils.DoJSON(t, app, http.MethodPost, "/course/2/enroll",
		testutils.Login(t, app, "carol", "pw3secret"), nil)
	require.Equal(t, http.StatusCreated, code)

	code, _ = testutils.DoJSON(t, app, http.MethodDelete, "/admin/course/1", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	var moduleCount, enrollmentCount int64
	db.Model(&models.Module{}).Where("course_id = ?", 1).Count(&moduleCount)
	db.Model(&models.Enrollment{}).Where("course_id = ?", 1).Count(&enrollmentCount)
	assert.EqualValues(t, 0, moduleCount)
	assert.EqualValues(t, 0, enrollmentCount)

	var survivors int64
	db.Model(&models.Enrollment{}).Count(&survivors)
	assert.EqualValues(t, 1, survivors)

	code, _ = testutils.DoJSON(t, app, http.MethodGet, "/course/1", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdminDeleteCourseNotFound(t *testing.T) {
	app, _ := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)

	code, _ := testutils.DoJSON(t, app, http.MethodDelete, "/admin/course/999", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdminCreateModule(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)
	seedCatalog(t, db)

	t.Run("Success", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/1/module", adminToken, map[string]string{
			"title":       "Week 1: Signals",
			"description": "Physical layer.",
		})
		require.Equal(t, http.StatusCreated, code)

		var module models.Module
		require.NoError(t, json.Unmarshal(env.Data, &module))
		assert.EqualValues(t, 1, module.CourseID)
		assert.Equal(t, 1, module.OrderIndex)
	})

	t.Run("AppendsOrderIndex", func(t *testing.T) {
		code, env := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/1/module", adminToken, map[string]string{
			"title": "Week 2: Framing",
		})
		require.Equal(t, http.StatusCreated, code)

		var module models.Module
		require.NoError(t, json.Unmarshal(env.Data, &module))
		assert.Equal(t, 2, module.OrderIndex)
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		code, _ := testutils.DoJSON(t, app, http.MethodPost, "/admin/course/999/module", adminToken, map[string]string{
			"title": "Orphan Module",
		})
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestAdminListModules(t *testing.T) {
	app, db := testutils.Setup(t)
	adminToken, _ := registerAdminAndStudent(t, app)
	courses := seedCatalog(t, db)

	modules := []models.Module{
		{CourseID: courses[0].ID, Title: "Week 2", OrderIndex: 2},
		{CourseID: courses[0].ID, Title: "Week 1", OrderIndex: 1},
	}
	require.NoError(t, db.Create(&modules).Error)

	code, env := testutils.DoJSON(t, app, http.MethodGet, "/admin/course/1/modules", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	var data struct {
		Modules []models.Module `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Modules, 2)
	assert.Equal(t, "Week 1", data.Modules[0].Title)
	assert.Equal(t, "Week 2", data.Modules[1].Title)
}
