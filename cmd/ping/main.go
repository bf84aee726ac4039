// cmd/ping probes the server's readiness endpoint and exits non-zero on
// any failure. Intended for Docker HEALTHCHECK:
//
//	HEALTHCHECK CMD ["/ping"]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort          = 8080
	healthEndpoint       = "/healthz"
	expectedHealthStatus = "ok"
	requestTimeout       = 1 * time.Second

	// exit codes
	codeRequestFailed     = 2
	codeBadHTTPStatus     = 3
	codeDecodeError       = 4
	codeReportedUnhealthy = 5
)

type healthResponse struct {
	Status string `json:"status"`
}

func port() int {
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			return p
		}
	}
	return defaultPort
}

func main() {
	url := fmt.Sprintf("http://localhost:%d%s", port(), healthEndpoint)
	client := &http.Client{Timeout: requestTimeout}

	resp, err := client.Get(url)
	if err != nil {
		log.Printf("request failed: %v", err)
		os.Exit(codeRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("unexpected HTTP status %d", resp.StatusCode)
		os.Exit(codeBadHTTPStatus)
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		log.Printf("decode failed: %v", err)
		os.Exit(codeDecodeError)
	}

	if health.Status != expectedHealthStatus {
		log.Printf("server reported %q", health.Status)
		os.Exit(codeReportedUnhealthy)
	}
}
