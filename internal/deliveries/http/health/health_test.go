package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/fintechlabs/go-wallet-gate/internal/common/log"
)

type testHealthCheckHelper struct {
	router *fiber.App
}

func healthCheckTestHelper(t *testing.T) testHealthCheckHelper {
	t.Helper()

	app := fiber.New()
	apiGroup := app.Group("/api")
	New(apiGroup)

	return testHealthCheckHelper{
		router: app,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_healthCheck(t *testing.T) {
	testHelper := healthCheckTestHelper(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health/", nil)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := testHelper.router.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `{"kind":"health","status":"server is up and running"}`, string(body))
}
