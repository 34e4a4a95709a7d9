// Package handler translates create-message requests into calls to a messages.Creator.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"strings"

	"github.com/isometry/msg-app/internal/helpers"
	"github.com/isometry/msg-app/internal/messages"
	"github.com/isometry/msg-app/internal/models"
	"github.com/pkg/errors"
)

const (
	// MessageTypeText is the type tag of every message created by the handler.
	MessageTypeText = "text"
	// InitialVersion is the version every created message starts at.
	InitialVersion = "0"
)

// ResponseHeaders are set on every successful response.
var ResponseHeaders = map[string]string{
	"Access-Control-Allow-Origin": "*",
}

type Option func(*Handler)

type Handler struct {
	logger  *slog.Logger
	creator messages.Creator
}

// NewMessageHandler returns a Handler delegating message creation to creator.
func NewMessageHandler(creator messages.Creator, options ...Option) *Handler {
	_inst := &Handler{
		creator: creator,
		logger:  helpers.NewNoopLogger(),
	}
	for _, opt := range options {
		opt(_inst)
	}
	return _inst
}

// Process creates a message from req.Body on behalf of req.CallerID.
// Decode and creation failures are returned unshaped; the response is only meaningful when err is nil.
func (h *Handler) Process(ctx context.Context, req models.Request) (response models.Response, err error) {
	logger := h.logger.With(slog.String("caller", req.CallerID))
	logger.Debug("processing request...")

	if strings.TrimSpace(req.Body) == "" {
		return response, &MissingBodyError{}
	}
	var payload any
	decoder := json.NewDecoder(strings.NewReader(req.Body))
	decoder.UseNumber()
	if err = decoder.Decode(&payload); err != nil {
		return response, &InvalidPayloadError{Cause: err}
	}
	if err = decoder.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		return response, &InvalidPayloadError{Cause: errors.New("trailing data after JSON document")}
	}
	if payload == nil {
		return response, &MissingBodyError{}
	}
	to, msg := field(payload, "to"), field(payload, "msg")

	logger.Debug("creating message...", slog.String("to", to), slog.Int("length", len(msg)))
	result, err := h.creator.Create(ctx, req.CallerID, to, MessageTypeText, msg, nil, InitialVersion)
	if err != nil {
		return response, errors.Wrap(err, "failed to create message")
	}

	body, err := json.Marshal(result)
	if err != nil {
		return response, errors.Wrap(err, "failed to marshal message")
	}
	logger.Info("message created", slog.String("to", to))

	return models.Response{
		Body:       string(body),
		Headers:    maps.Clone(ResponseHeaders),
		StatusCode: http.StatusCreated,
	}, nil
}

// field returns the named member of a JSON object as a string. Scalars are formatted, while absent members, null,
// nested values and non-object documents yield "".
func field(payload any, name string) string {
	obj, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	switch v := obj[name].(type) {
	case string:
		return v
	case json.Number, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
