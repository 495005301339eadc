package utils_test

import (
	"net/http/httptest"
	"testing"

	"github.com/doker312/aroras-kitchen-orderflow-app/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestCurrentUserID(t *testing.T) {
	c := testContext()
	assert.Zero(t, utils.CurrentUserID(c), "unset context means not authenticated")

	c.Set("userId", uint(42))
	assert.Equal(t, uint(42), utils.CurrentUserID(c))
}

func TestCurrentUserIDIgnoresWrongType(t *testing.T) {
	c := testContext()
	// the middleware only ever stores uint; any other type is garbage
	c.Set("userId", "42")
	assert.Zero(t, utils.CurrentUserID(c))
}

func TestCurrentRole(t *testing.T) {
	c := testContext()
	assert.Empty(t, utils.CurrentRole(c))

	c.Set("role", "admin")
	assert.Equal(t, "admin", utils.CurrentRole(c))
}
