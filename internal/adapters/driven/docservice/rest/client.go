// Package rest provides the document service adapter over HTTP.
// It implements the two request/response contracts the core depends
// on: multipart PDF upload with progress reporting, and JSON chat
// with citation metadata. Failure bodies carry a detail field that is
// shown to the user verbatim.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"time"

	"github.com/custodia-labs/docchat-cli/internal/core/domain"
	"github.com/custodia-labs/docchat-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.DocumentService = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout covers upload plus server-side ingestion, which
	// can take a while for large PDFs.
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the document service client.
type Config struct {
	// BaseURL is the service root (default: http://localhost:8000).
	BaseURL string

	// Timeout is the per-request timeout (default: 120s). When it
	// fires the core sees an ordinary failure, not a distinct state.
	Timeout time.Duration
}

// Client talks to the remote document service.
type Client struct {
	client  *http.Client
	baseURL string
}

// uploadResponse is the /api/upload success format.
type uploadResponse struct {
	Message        string  `json:"message"`
	Filename       string  `json:"filename"`
	ChunksCount    int     `json:"chunks_count"`
	ProcessingTime float64 `json:"processing_time"`
}

// chatRequest is the /api/chat request format.
type chatRequest struct {
	Question    string        `json:"question"`
	ChatHistory []chatHistMsg `json:"chat_history"`
}

// chatHistMsg is one prior turn in the chat history.
type chatHistMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the /api/chat success format.
type chatResponse struct {
	Answer  string `json:"answer"`
	Sources []struct {
		Content  string  `json:"content"`
		Page     int     `json:"page"`
		Score    float64 `json:"score"`
		Metadata struct {
			Source  string `json:"source"`
			ChunkID string `json:"chunk_id"`
		} `json:"metadata"`
	} `json:"sources"`
}

// errorResponse is the failure format shared by both endpoints.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a document service client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
	}
}

// Upload streams the pending file as a multipart request and blocks
// until the service has processed it. onProgress receives the percent
// of file bytes sent, mirroring a browser's upload progress events.
func (c *Client) Upload(
	ctx context.Context,
	file domain.PendingFile,
	onProgress driven.ProgressFunc,
) (*driven.UploadResult, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := createPDFPart(mw, file.Name)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		reader := &progressReader{
			r:      f,
			total:  file.SizeBytes,
			report: onProgress,
		}
		if _, err := io.Copy(part, reader); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", pr)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp.StatusCode, body)
	}

	var uploadResp uploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &driven.UploadResult{
		Filename:          uploadResp.Filename,
		ChunkCount:        uploadResp.ChunksCount,
		ProcessingSeconds: uploadResp.ProcessingTime,
	}, nil
}

// Chat asks one question with prior turns as context.
func (c *Client) Chat(
	ctx context.Context,
	question string,
	history []driven.ChatTurn,
) (*driven.ChatResult, error) {
	reqBody := chatRequest{
		Question:    question,
		ChatHistory: make([]chatHistMsg, len(history)),
	}
	for i, turn := range history {
		reqBody.ChatHistory[i] = chatHistMsg{Role: turn.Role, Content: turn.Content}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/api/chat",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, serviceError(resp.StatusCode, body)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	result := &driven.ChatResult{Answer: chatResp.Answer}
	for _, src := range chatResp.Sources {
		result.Sources = append(result.Sources, domain.SourceRef{
			ExcerptText:    src.Content,
			PageNumber:     src.Page,
			RelevanceScore: src.Score,
			DocumentID:     src.Metadata.Source,
			ChunkID:        src.Metadata.ChunkID,
		})
	}
	return result, nil
}

// Ping checks the service is reachable via its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("create ping request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("document service returned status %d", resp.StatusCode)
	}
	return nil
}

// createPDFPart creates the file part with an explicit PDF content
// type; CreateFormFile would default to application/octet-stream.
func createPDFPart(mw *multipart.Writer, filename string) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", domain.PDFMimeType)
	return mw.CreatePart(header)
}

// serviceError maps a failure body to a ServiceError, preserving the
// detail field when present.
func serviceError(status int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		return &driven.ServiceError{StatusCode: status, Detail: errResp.Detail}
	}
	return &driven.ServiceError{StatusCode: status}
}

// progressReader counts bytes read from the underlying reader and
// reports whole-percent changes.
type progressReader struct {
	r      io.Reader
	total  int64
	loaded int64
	last   int
	report driven.ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.loaded += int64(n)

	if p.report != nil && p.total > 0 {
		percent := int(p.loaded * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}
