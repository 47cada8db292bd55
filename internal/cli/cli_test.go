package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/devapi"
	"portfolio-admin/internal/models"
	"portfolio-admin/internal/screens"
)

var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

type CLISuite struct {
	suite.Suite
	srv *devapi.Server
	ts  *httptest.Server
}

func TestCLI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(CLISuite))
}

// SetupTest starts a fresh development backend and points the CLI at it
// with a file session in a temp dir
func (suite *CLISuite) SetupTest() {
	srv, err := devapi.NewServer(devapi.Options{
		JWTSecret:     "test-secret",
		AdminEmail:    "admin@example.com",
		AdminPassword: "admin123",
	})
	suite.Require().NoError(err)
	suite.srv = srv
	suite.ts = httptest.NewServer(srv.Handler())

	t := suite.T()
	t.Setenv("API_BASE_URL", suite.ts.URL+"/api")
	t.Setenv("SHORT_LINK_BASE_URL", suite.ts.URL+"/s")
	t.Setenv("SESSION_BACKEND", "file")
	t.Setenv("SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	t.Setenv("LOG_LEVEL", "error")
}

func (suite *CLISuite) TearDownTest() {
	suite.ts.Close()
	suite.srv.Close()
}

func (suite *CLISuite) execute(stdin string, args ...string) (string, error) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (suite *CLISuite) login() {
	out, err := suite.execute("", "login", "--email", "admin@example.com", "--password", "admin123")
	suite.Require().NoError(err, out)
}

// firstColumn returns the first field of every table row below the header
func firstColumn(out string) []string {
	var ids []string
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) > 0 && !strings.HasPrefix(line, "Page ") {
			ids = append(ids, fields[0])
		}
	}
	return ids
}

func (suite *CLISuite) TestLoginStatusLogout() {
	out, err := suite.execute("", "status")
	suite.Require().NoError(err)
	suite.Contains(out, "Not logged in.")

	_, err = suite.execute("", "projects", "list")
	suite.ErrorIs(err, errNotLoggedIn)

	out, err = suite.execute("admin@example.com\nadmin123\n", "login")
	suite.Require().NoError(err, out)
	suite.Contains(out, "Logged in.")
	suite.FileExists(os.Getenv("SESSION_FILE"))

	out, err = suite.execute("", "status")
	suite.Require().NoError(err)
	suite.Contains(out, "Logged in to")
	suite.Contains(out, "Short links")

	out, err = suite.execute("", "logout")
	suite.Require().NoError(err)
	suite.Contains(out, "Logged out.")

	out, err = suite.execute("", "status")
	suite.Require().NoError(err)
	suite.Contains(out, "Not logged in.")
}

func (suite *CLISuite) TestLoginRejectsBadPassword() {
	_, err := suite.execute("", "login", "--email", "admin@example.com", "--password", "nope")
	suite.Require().Error(err)
	suite.Contains(errorLine(err), "(HTTP 401 Unauthorized)")

	out, err := suite.execute("", "status")
	suite.Require().NoError(err)
	suite.Contains(out, "Not logged in.")
}

func (suite *CLISuite) TestProjectCommands() {
	suite.login()

	out, err := suite.execute("", "projects", "add", "--name", "Site", "--description", "Personal site", "--demo", "https://example.com")
	suite.Require().NoError(err, out)
	suite.Contains(out, "Project created.")
	suite.Contains(out, "Site")

	_, err = suite.execute("", "projects", "add", "--name", "Broken")
	suite.ErrorIs(err, screens.ErrValidation)

	out, err = suite.execute("", "projects", "list")
	suite.Require().NoError(err)
	ids := firstColumn(out)
	suite.Require().Len(ids, 1)

	_, err = suite.execute("", "projects", "update", ids[0], "--name", "Site v2")
	suite.Require().NoError(err)
	out, err = suite.execute("", "projects", "list")
	suite.Require().NoError(err)
	suite.Contains(out, "Site v2")

	_, err = suite.execute("n\n", "projects", "delete", ids[0])
	suite.ErrorIs(err, screens.ErrCancelled)

	out, err = suite.execute("", "projects", "delete", ids[0], "--yes")
	suite.Require().NoError(err)
	suite.Contains(out, "Project deleted.")

	out, err = suite.execute("", "projects", "list")
	suite.Require().NoError(err)
	suite.Contains(out, "No projects.")
}

func (suite *CLISuite) TestSkillWithLocalImage() {
	suite.login()

	path := filepath.Join(suite.T().TempDir(), "go.png")
	suite.Require().NoError(os.WriteFile(path, pngPixel, 0o600))

	out, err := suite.execute("", "skills", "add", "--name", "Go", "--image-file", path)
	suite.Require().NoError(err, out)
	suite.Contains(out, "/uploads/")

	out, err = suite.execute("", "upload", path)
	suite.Require().NoError(err)
	suite.Contains(out, "/uploads/")
}

func (suite *CLISuite) TestURLCommands() {
	suite.login()

	out, err := suite.execute("", "urls", "create", "https://example.com/post")
	suite.Require().NoError(err, out)
	suite.Contains(out, "Short link created.")
	suite.Contains(out, "active")

	out, err = suite.execute("", "urls", "list")
	suite.Require().NoError(err)
	ids := firstColumn(out)
	suite.Require().Len(ids, 1)

	_, err = suite.execute("", "urls", "update", ids[0], "--code", "post")
	suite.Require().NoError(err)

	qrPath := filepath.Join(suite.T().TempDir(), "post.png")
	out, err = suite.execute("", "urls", "qr", ids[0], "-o", qrPath)
	suite.Require().NoError(err, out)
	suite.FileExists(qrPath)

	_, err = suite.execute("", "urls", "delete", ids[0], "-y")
	suite.Require().NoError(err)

	out, err = suite.execute("", "urls", "list")
	suite.Require().NoError(err)
	suite.Contains(out, "deleted")
	suite.Contains(out, "/s/post")

	_, err = suite.execute("", "urls", "update", ids[0], "--target", "https://example.org")
	suite.ErrorIs(err, screens.ErrSoftDeleted)
}

func (suite *CLISuite) TestMessageCommands() {
	msg := suite.srv.Portfolio.CreateMessage(&models.ContactRequest{
		Name: "Ada", Email: "ada@example.com", Subject: "Collaboration", Message: "Let's build something.",
	})
	suite.login()

	out, err := suite.execute("", "messages", "list")
	suite.Require().NoError(err)
	suite.Contains(out, "Collaboration")
	suite.Contains(out, "1 unread")

	out, err = suite.execute("", "messages", "show", msg.ID)
	suite.Require().NoError(err)
	suite.Contains(out, "Let's build something.")

	_, err = suite.execute("", "messages", "show", "missing")
	suite.ErrorIs(err, screens.ErrNotFound)
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, "Error: not logged in, run `portfolio-admin login` first", errorLine(errNotLoggedIn))
	assert.Equal(t, "Error: Failed to fetch projects (HTTP 500 Internal Server Error)",
		errorLine(fmt.Errorf("load: %w", &api.StatusError{Message: "Failed to fetch projects", StatusCode: 500})))
}
