package common

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// doJSON sends a request with an optional JSON payload and returns the
// decoded response body along with the status code. Bodies that are not
// valid JSON come back as a raw string.
func doJSON(method, url string, payload interface{}) (interface{}, int, error) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewBuffer(jsonPayload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	var result interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return string(raw), resp.StatusCode, nil
		}
	}
	return result, resp.StatusCode, nil
}

// Get sends a GET request and decodes the JSON response.
func Get(url string) (interface{}, int, error) {
	return doJSON(http.MethodGet, url, nil)
}

// Post sends a POST request with a JSON payload.
func Post(url string, payload interface{}) (interface{}, int, error) {
	return doJSON(http.MethodPost, url, payload)
}

// Put sends a PUT request with a JSON payload.
func Put(url string, payload interface{}) (interface{}, int, error) {
	return doJSON(http.MethodPut, url, payload)
}

// Delete sends a DELETE request.
func Delete(url string) (interface{}, int, error) {
	return doJSON(http.MethodDelete, url, nil)
}
