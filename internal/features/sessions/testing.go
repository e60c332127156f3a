package sessions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

// CreateSessionTestRouter builds a router with session auth wired the same
// way main does it: public session creation plus a protected group for the
// session controller and any additional feature controllers.
func CreateSessionTestRouter(additionalControllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Raise the creation limit so parallel tests do not trip it
	GetSessionController().SetCreateLimiter(rate.NewLimiter(rate.Limit(100), 100))

	v1 := router.Group("/api/v1")
	GetSessionController().RegisterRoutes(v1)

	protected := v1.Group("").Use(AuthMiddleware(GetSessionService()))
	if routerGroup, ok := protected.(*gin.RouterGroup); ok {
		GetSessionController().RegisterProtectedRoutes(routerGroup)

		for _, controller := range additionalControllers {
			controller.RegisterRoutes(routerGroup)
		}
	}

	return router
}

func CreateTestSession(router *gin.Engine) *CreateSessionResponseDTO {
	req, err := http.NewRequest("POST", "/api/v1/sessions", bytes.NewBuffer(nil))
	if err != nil {
		panic(err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("Failed to create session. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response CreateSessionResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &response
}
