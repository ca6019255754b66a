package notestore

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

// RemoteStore define la interfaz contra el store remoto de notas.
type RemoteStore interface {
	CreateNote(ctx context.Context, sectionID, content string) (string, error)
	UpdateNote(ctx context.Context, remoteID, content string) error
}

type logger interface {
	Printf(format string, v ...interface{})
}

// HTTPClient implementa RemoteStore contra la API HTTP de notas
// (POST /notes, PUT /notes/{id}) con credencial bearer.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  logger
}

// NewHTTPClient construye un cliente apuntando al store remoto de notas.
func NewHTTPClient(baseURL, token string, log any) *HTTPClient {
	l, _ := log.(logger)
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

// CreateNote crea la nota remota y devuelve el id asignado.
func (c *HTTPClient) CreateNote(ctx context.Context, sectionID, content string) (string, error) {
	body := map[string]string{"section_id": sectionID, "content": content}
	respBody, err := c.do(ctx, http.MethodPost, "/notes", body)
	if err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("note store returned empty id")
	}
	return created.ID, nil
}

// UpdateNote reemplaza el contenido de una nota remota existente.
func (c *HTTPClient) UpdateNote(ctx context.Context, remoteID, content string) error {
	body := map[string]string{"content": content}
	_, err := c.do(ctx, http.MethodPut, "/notes/"+remoteID, body)
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Printf("note store error status %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("note store http error: status=%d", resp.StatusCode)
	}
	return respBody, nil
}
