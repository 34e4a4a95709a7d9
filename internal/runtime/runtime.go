// Package runtime adapts Lambda events and plain HTTP requests to the message handler.
package runtime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/isometry/msg-app/internal/config"
	"github.com/isometry/msg-app/internal/handler"
	"github.com/isometry/msg-app/internal/helpers"
	"github.com/isometry/msg-app/internal/models"
	"github.com/pkg/errors"
)

// PrincipalIDKey is the authorizer context key carrying the caller identity.
const PrincipalIDKey = "principalId"

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithPayloadType selects the Lambda event shape. Supported values are 'api-gateway-v1', 'api-gateway-v2' and 'lambda-url'.
func WithPayloadType(payloadType string) Option {
	return func(r *Runtime) {
		r.payloadType = payloadType
	}
}

// WithPrincipalHeader sets the HTTP header read as the caller identity by ServeHTTP.
func WithPrincipalHeader(header string) Option {
	return func(r *Runtime) {
		r.principalHeader = header
	}
}

type Runtime struct {
	*handler.Handler
	logger          *slog.Logger
	payloadType     string
	principalHeader string
}

// NewRuntime creates a new runtime instance
func NewRuntime(handler *handler.Handler, opts ...Option) *Runtime {
	_inst := &Runtime{
		Handler:         handler,
		payloadType:     config.PayloadAPIGatewayV1,
		principalHeader: "X-Principal-Id",
	}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Lambda is the Lambda handler for the runtime
func (r *Runtime) Lambda(ctx context.Context, event json.RawMessage) (any, error) {
	logger := r.logger.With(slog.String("payloadType", r.payloadType))
	logger.Info("received lambda request")

	switch r.payloadType {
	case config.PayloadAPIGatewayV1:
		var req events.APIGatewayProxyRequest
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway v1 request")
		}
		callerID := principalFromContext(req.RequestContext.Authorizer)
		resp, err := r.process(ctx, callerID, req.Body, req.IsBase64Encoded)
		if err != nil {
			return nil, err
		}
		return events.APIGatewayProxyResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	case config.PayloadAPIGatewayV2:
		var req events.APIGatewayV2HTTPRequest
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode API Gateway v2 request")
		}
		var callerID string
		if auth := req.RequestContext.Authorizer; auth != nil {
			callerID = principalFromContext(auth.Lambda)
			if callerID == "" && auth.JWT != nil {
				callerID = auth.JWT.Claims["sub"]
			}
		}
		resp, err := r.process(ctx, callerID, req.Body, req.IsBase64Encoded)
		if err != nil {
			return nil, err
		}
		return events.APIGatewayV2HTTPResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	case config.PayloadLambdaURL:
		var req events.LambdaFunctionURLRequest
		if err := json.Unmarshal(event, &req); err != nil {
			return nil, errors.Wrap(err, "failed to decode Lambda function URL request")
		}
		var callerID string
		if auth := req.RequestContext.Authorizer; auth != nil && auth.IAM != nil {
			callerID = auth.IAM.UserID
		}
		resp, err := r.process(ctx, callerID, req.Body, req.IsBase64Encoded)
		if err != nil {
			return nil, err
		}
		return events.LambdaFunctionURLResponse{
			Body:       resp.Body,
			Headers:    resp.Headers,
			StatusCode: resp.StatusCode,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported lambda payload type: %s", r.payloadType)
	}
}

func (r *Runtime) process(ctx context.Context, callerID, body string, isBase64 bool) (models.Response, error) {
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return models.Response{}, errors.Wrap(err, "failed to decode base64 request body")
		}
		body = string(decoded)
	}

	resp, err := r.Handler.Process(ctx, models.Request{
		CallerID: callerID,
		Body:     body,
	})
	r.logger.Info("handled event", slog.Int("statusCode", resp.StatusCode), slog.Any("error", err))
	return resp, err
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		break
	default:
		r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not allowed", slog.Any("method", req.Method))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusMethodNotAllowed}, nil, resp)
		return
	}

	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("method", req.Method), slog.Any("path", req.URL.Path))
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}

	result, err := r.process(req.Context(), req.Header.Get(r.principalHeader), string(body), false)
	if err != nil {
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}
	helpers.WriteHTTP(result, resp)
}

func principalFromContext(authorizer map[string]any) string {
	v, ok := authorizer[PrincipalIDKey]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
