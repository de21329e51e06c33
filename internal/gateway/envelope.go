// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"encoding/json"
)

var jsonNull = json.RawMessage("null")

// jsonObject decodes body as a JSON object keyed by field name. It reports
// false for anything that is not an object (arrays, scalars, invalid JSON).
func jsonObject(body []byte) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// hasKeys reports whether every key is present in obj. Values are not
// inspected: the contract is purely structural.
func hasKeys(obj map[string]json.RawMessage, keys ...string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}

// IsEnvelope reports whether body structurally matches the backend envelope,
// i.e. it is a JSON object carrying both "success" and "timestamp".
func IsEnvelope(body []byte) bool {
	obj, ok := jsonObject(body)
	return ok && isEnvelopeObject(obj)
}

func isEnvelopeObject(obj map[string]json.RawMessage) bool {
	return hasKeys(obj, "success", "timestamp")
}

// isErrorDetailObject reports whether obj has the backend error shape.
func isErrorDetailObject(obj map[string]json.RawMessage) bool {
	return hasKeys(obj, "status", "message", "error")
}

// Unwrap returns the envelope's data (or JSON null when absent) if body is an
// envelope, and body unchanged otherwise.
func Unwrap(body []byte) json.RawMessage {
	obj, ok := jsonObject(body)
	if !ok || !isEnvelopeObject(obj) {
		return body
	}
	return envelopeData(obj)
}

func envelopeData(obj map[string]json.RawMessage) json.RawMessage {
	data, ok := obj["data"]
	if !ok || len(data) == 0 {
		return jsonNull
	}
	return data
}

// topLevelMessage returns obj["message"] when it is a JSON string.
func topLevelMessage(obj map[string]json.RawMessage) string {
	raw, ok := obj["message"]
	if !ok {
		return ""
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ""
	}
	return msg
}
