package usecase

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tours-admin/pkg/upstream"
	"tours-admin/pkg/utils"
)

// Reply is a normalized proxy response: the HTTP status to relay plus the
// envelope body to write verbatim.
type Reply struct {
	Status int
	Body   utils.Envelope
}

func errorReply(status int, message string) *Reply {
	return &Reply{Status: status, Body: utils.ErrorEnvelope(message)}
}

// normalize maps a raw upstream result onto the envelope contract.
//
// For 2xx the payload is extracted with an explicit fallback chain:
// resource-named field ("transfers", "booking", ...), then a generic
// "data" field, then the raw parsed body, then an empty default matching
// the resource's cardinality. The reply is always HTTP 200.
//
// For non-2xx the upstream status is relayed unchanged, with the error
// text taken from the body's "error" field, then "message", then
// genericMsg. A body that does not parse keeps the upstream status and
// the generic message: the status is trustworthy even when the body is
// not.
//
// A 2xx body that is non-empty but not valid JSON is treated like a
// transport failure: 500 with the generic message, details logged only.
func normalize(log *zap.Logger, res *upstream.Result, key string, collection bool, genericMsg string) *Reply {
	var parsed any
	if len(res.Body) > 0 {
		if err := json.Unmarshal(res.Body, &parsed); err != nil {
			if isSuccess(res.Status) {
				log.Error("upstream returned unparseable body",
					zap.Int("upstream_status", res.Status),
					zap.Error(err),
				)
				return errorReply(http.StatusInternalServerError, genericMsg)
			}
			return errorReply(res.Status, genericMsg)
		}
	}

	if !isSuccess(res.Status) {
		return errorReply(res.Status, extractError(parsed, genericMsg))
	}

	return &Reply{
		Status: http.StatusOK,
		Body:   utils.SuccessEnvelope(key, extractPayload(parsed, key, collection)),
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func extractPayload(parsed any, key string, collection bool) any {
	switch body := parsed.(type) {
	case map[string]any:
		if payload, ok := body[key]; ok && payload != nil {
			return payload
		}
		if payload, ok := body["data"]; ok && payload != nil {
			return payload
		}
		return body
	case nil:
		if collection {
			return []any{}
		}
		return map[string]any{}
	default:
		// array or scalar body, taken as-is
		return body
	}
}

func extractError(parsed any, genericMsg string) string {
	body, ok := parsed.(map[string]any)
	if !ok {
		return genericMsg
	}
	if msg, ok := body["error"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}
	return genericMsg
}
