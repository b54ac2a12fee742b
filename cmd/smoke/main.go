package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

var baseURL string

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// step runs one request and exits when the status is not the expected one.
func step(title, method, url string, body interface{}, want int) []byte {
	color.Yellow("\n%s", title)
	resp, respBody, err := sendRequest(method, url, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode != want {
		color.Red("Status: %s (want %d)", resp.Status, want)
		prettyPrint(respBody)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(respBody)
	return respBody
}

func main() {
	flag.StringVar(&baseURL, "url", "http://localhost:3000/api", "API base URL")
	flag.Parse()

	color.Cyan("Starting Notes API smoke test against %s\n", baseURL)

	step("1. List notes", "GET", "/notes", nil, http.StatusOK)

	created := step("2. Create note", "POST", "/notes", map[string]interface{}{
		"title":   "Smoke test",
		"content": "Created by the smoke client",
		"tags":    []string{"smoke"},
	}, http.StatusCreated)

	var note struct {
		Id string `json:"id"`
	}
	if err := json.Unmarshal(created, &note); err != nil || note.Id == "" {
		color.Red("Could not read created note id")
		os.Exit(1)
	}

	step("3. Filter by tag", "GET", "/notes?tag=smoke", nil, http.StatusOK)
	step("4. Show note", "GET", "/notes/"+note.Id, nil, http.StatusOK)
	step("5. Update note", "PUT", "/notes/"+note.Id, map[string]interface{}{
		"title":   "Smoke test (edited)",
		"content": "Updated by the smoke client",
		"tags":    []string{"smoke", "edited"},
	}, http.StatusOK)
	step("6. Reject blank title", "POST", "/notes", map[string]interface{}{
		"title":   "",
		"content": "x",
	}, http.StatusBadRequest)
	step("7. Delete note", "DELETE", "/notes/"+note.Id, nil, http.StatusOK)
	step("8. Show deleted note", "GET", "/notes/"+note.Id, nil, http.StatusNotFound)

	color.Cyan("\nAll checks passed")
}
