package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const toolPathPrefix = "/api/v1/tools/"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// invocationResponse mirrors the gateway's success and error bodies.
type invocationResponse struct {
	Tool   string          `json:"tool"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// invokeAndPrint calls one gateway tool and prints the result: plain
// text verbatim, structured results as indented JSON.
func invokeAndPrint(ctx context.Context, tool string, arguments map[string]any) error {
	body, err := json.Marshal(map[string]any{"arguments": arguments})
	if err != nil {
		return fmt.Errorf("failed to encode arguments: %w", err)
	}

	url := strings.TrimRight(serverURL, "/") + toolPathPrefix + tool
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach gateway at %s: %w", serverURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read gateway response: %w", err)
	}

	var parsed invocationResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("unexpected gateway response (status %d): %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, parsed.Error)
	}

	fmt.Println(formatResult(parsed.Result))
	return nil
}

// formatResult renders the raw result field: JSON strings (the summary
// text) print unquoted, objects and arrays re-indent.
func formatResult(result json.RawMessage) string {
	var asString string
	if json.Unmarshal(result, &asString) == nil {
		return asString
	}
	var buf bytes.Buffer
	if json.Indent(&buf, result, "", "  ") == nil {
		return buf.String()
	}
	return string(result)
}
