// cmd/initdata seeds the notes API with generated data for local
// development and load testing.
//
// Usage:
//
//	initdata -url http://localhost:8080 -n 500
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

var (
	baseURL = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	nNotes  = flag.Int("n", envInt("COUNT", 500), "How many notes to create")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// fakeTags returns nil roughly a third of the time so the seeded data
// also covers the "no tags set" shape.
func fakeTags() []string {
	n := gofakeit.Number(0, 3)
	if n == 0 {
		return nil
	}
	tags := make([]string, 0, n)
	for range n {
		tags = append(tags, gofakeit.Word())
	}
	return tags
}

func postNote(client *http.Client, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, *baseURL+"/api/notes", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}

func main() {
	flag.Parse()
	gofakeit.Seed(time.Now().UnixNano())

	client := &http.Client{Timeout: 10 * time.Second}
	start := time.Now()

	created := 0
	for i := 0; i < *nNotes; i++ {
		note := map[string]any{
			"title":   gofakeit.Sentence(3),
			"content": gofakeit.Paragraph(1, 3, 40, " "),
			"tags":    fakeTags(),
		}
		if err := postNote(client, note); err != nil {
			fmt.Fprintf(os.Stderr, "note %d: %v\n", i+1, err)
			os.Exit(1)
		}
		created++
	}

	fmt.Printf("created %d notes in %s\n", created, time.Since(start).Round(time.Millisecond))
}
