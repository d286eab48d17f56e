package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matryer/is"
	"github.com/sirupsen/logrus"

	"loan-amortization/internal/api/models"
)

func TestErrorHandler_RecoversPanic(t *testing.T) {
	is := is.New(t)
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	is.Equal(w.Code, http.StatusInternalServerError)

	var resp models.ErrorResponse
	is.NoErr(json.Unmarshal(w.Body.Bytes(), &resp))
	is.Equal(resp.Error.Code, "INTERNAL_ERROR")
	is.Equal(resp.Error.Message, "boom")
}

func TestLogger_WritesOneLinePerRequest(t *testing.T) {
	is := is.New(t)
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(Logger(log))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	is.Equal(len(lines), 1)

	var entry map[string]any
	is.NoErr(json.Unmarshal([]byte(lines[0]), &entry))
	is.Equal(entry["path"], "/ok")
	is.Equal(entry["status"], 200.0)
	is.Equal(entry["msg"], "request served")
}

func TestCORS_SimpleRequestPassesThrough(t *testing.T) {
	is := is.New(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS([]string{"*"}))
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "fine") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Origin", "https://other.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusOK)
	is.Equal(w.Body.String(), "fine")
	is.Equal(w.Header().Get("Access-Control-Allow-Origin"), "*")
}
