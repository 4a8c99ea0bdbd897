package middleware

import (
	"bitwise74/task-api/pkg/response"
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type turnstileResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

type TurnstileConfig struct {
	Enabled bool
	Secret  string
	// VerifyURL overrides the Cloudflare endpoint, used by tests
	VerifyURL string
}

// NewTurnstileMiddleware rejects requests whose TurnstileToken header is not
// accepted by Cloudflare. It does nothing when disabled.
func NewTurnstileMiddleware(cfg TurnstileConfig) gin.HandlerFunc {
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = turnstileVerifyURL
	}

	client := &http.Client{Timeout: 10 * time.Second}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		token := c.GetHeader("TurnstileToken")
		if token == "" {
			response.Error(c, http.StatusBadRequest, "Missing or invalid turnstile token")
			return
		}

		jsonBody, _ := json.Marshal(gin.H{
			"secret":   cfg.Secret,
			"response": token,
			"remoteip": c.ClientIP(),
		})

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, cfg.VerifyURL, bytes.NewReader(jsonBody))
		if err != nil {
			response.Internal(c, "Failed to build turnstile request", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")

			zap.L().Error("Turnstile verification failed", zap.Error(err))
			return
		}
		defer resp.Body.Close()

		var res turnstileResponse
		if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || !res.Success {
			response.Error(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Next()
	}
}
