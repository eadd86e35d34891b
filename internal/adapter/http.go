// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type httpNotesClient struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPNotesClient constructs an HTTP/REST implementation of [NotesClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. A token from the configuration is stored right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNotesClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	c := &httpNotesClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	c.SetToken(adapterCfg.Token)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [NotesClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (c *httpNotesClient) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token implements [NotesClient].
func (c *httpNotesClient) Token() string {
	return c.token
}

// Register implements [NotesClient]. It POSTs the account to /create-user.
func (c *httpNotesClient) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/create-user", models.User{
		FullName: user.FullName,
		Email:    user.Email,
		Password: user.Password,
	})
}

// Login implements [NotesClient]. It POSTs the credentials to /login.
func (c *httpNotesClient) Login(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return c.authenticate(ctx, "/login", models.User{
		Email:    user.Email,
		Password: user.Password,
	})
}

func (c *httpNotesClient) authenticate(ctx context.Context, path string, body models.User) (models.AuthResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}

	auth, err := decodeData[models.AuthResponse](resp)
	if err != nil {
		return models.AuthResponse{}, err
	}

	c.SetToken(auth.AccessToken)
	c.logger.Debug().Str("user_id", auth.UserID).Msg("access token stored")
	return auth, nil
}

// GetUser implements [NotesClient]. It GETs /get-user.
func (c *httpNotesClient) GetUser(ctx context.Context) (models.User, error) {
	resp, err := c.authedRequest(ctx).Get("/get-user")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	return decodeData[models.User](resp)
}

// AddNote implements [NotesClient]. It POSTs the note to /add-note.
func (c *httpNotesClient) AddNote(ctx context.Context, note models.Note) (models.Note, error) {
	body := struct {
		Title   string      `json:"title"`
		Content string      `json:"content"`
		Tags    models.Tags `json:"tags,omitempty"`
	}{note.Title, note.Content, note.Tags}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/add-note")
	if err != nil {
		return models.Note{}, fmt.Errorf("add note request: %w", err)
	}
	return decodeData[models.Note](resp)
}

// UpdateNote implements [NotesClient]. It PUTs the changes to
// /update-note/{noteId}.
func (c *httpNotesClient) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("noteId", update.NoteID).
		SetBody(update).
		Put("/update-note/{noteId}")
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	return decodeData[models.Note](resp)
}

// DeleteNote implements [NotesClient]. It sends DELETE /delete-note/{noteId}.
func (c *httpNotesClient) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := c.authedRequest(ctx).
		SetPathParam("noteId", noteID).
		Delete("/delete-note/{noteId}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}
	return mapHTTPError(resp)
}

// SetPinned implements [NotesClient]. It PUTs the flag to
// /toggle-note-pinned/{noteId}.
func (c *httpNotesClient) SetPinned(ctx context.Context, noteID string, pinned bool) (models.Note, error) {
	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("noteId", noteID).
		SetBody(models.PinRequest{IsPinned: &pinned}).
		Put("/toggle-note-pinned/{noteId}")
	if err != nil {
		return models.Note{}, fmt.Errorf("toggle pinned request: %w", err)
	}
	return decodeData[models.Note](resp)
}

// AllNotes implements [NotesClient]. It GETs /all-notes.
func (c *httpNotesClient) AllNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := c.authedRequest(ctx).Get("/all-notes")
	if err != nil {
		return nil, fmt.Errorf("all notes request: %w", err)
	}
	return decodeData[[]models.Note](resp)
}

// SearchNotes implements [NotesClient]. It GETs /search-notes?query=...
func (c *httpNotesClient) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	resp, err := c.authedRequest(ctx).
		SetQueryParam("query", query).
		Get("/search-notes")
	if err != nil {
		return nil, fmt.Errorf("search notes request: %w", err)
	}
	return decodeData[[]models.Note](resp)
}

// Version implements [NotesClient]. It GETs /version, which answers in plain
// text.
func (c *httpNotesClient) Version(ctx context.Context) (string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (c *httpNotesClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if token := c.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeData maps error statuses and returns the data of a success envelope.
func decodeData[T any](resp *resty.Response) (T, error) {
	var envelope struct {
		Error   bool   `json:"error"`
		Data    T      `json:"data"`
		Message string `json:"message"`
	}

	if err := mapHTTPError(resp); err != nil {
		return envelope.Data, err
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return envelope.Data, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if envelope.Error {
		return envelope.Data, fmt.Errorf("%w: %s", ErrUnexpectedResponse, envelope.Message)
	}

	return envelope.Data, nil
}
