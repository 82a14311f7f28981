package contactController_test

import (
	"net/http"
	"testing"

	"github.com/Magar0077/EduManage/models"
	"github.com/Magar0077/EduManage/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactStoresInquiry(t *testing.T) {
	app, db := testutils.Setup(t)

	code, env := testutils.DoJSON(t, app, http.MethodPost, "/contact", "", map[string]string{
		"name":    "Prospective Student",
		"email":   "prospect@x.com",
		"message": "When does the spring intake open?",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, env.Message, "Admissions Office")

	var saved models.ContactMessage
	require.NoError(t, db.First(&saved).Error)
	assert.Equal(t, "prospect@x.com", saved.Email)
}

func TestContactValidation(t *testing.T) {
	app, db := testutils.Setup(t)

	code, _ := testutils.DoJSON(t, app, http.MethodPost, "/contact", "", map[string]string{
		"name":    "P",
		"email":   "not-an-email",
		"message": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
