package handler

import (
	"bytes"
	"encoding/json"

	"github.com/ceccec/zeropoint/pkg/decoder"
)

// GenerateRequest is the body of POST /api/v1/ids. Every field is optional;
// strategy defaults to "pattern" and unknown tag symbols fall back to the
// registry defaults. Strategy "name" picks name-md5 or name-sha1 from Hash.
// Namespace is a predefined name or an identifier literal; anything else is
// rejected.
type GenerateRequest struct {
	Strategy   string          `json:"strategy"`
	Action     string          `json:"action"`
	Component  string          `json:"component"`
	State      string          `json:"state"`
	VortexMode string          `json:"vortex_mode"`
	Timestamp  *int64          `json:"timestamp"`
	Namespace  string          `json:"namespace"`
	Name       string          `json:"name"`
	Hash       string          `json:"hash"`
	Data       json.RawMessage `json:"data"`
	Count      int             `json:"count"`
}

type GenerateResponse struct {
	Strategy string   `json:"strategy"`
	Version  string   `json:"version"`
	IDs      []string `json:"ids"`
}

type DecodeResponse struct {
	ID         string         `json:"id"`
	Version    string         `json:"version"`
	Scheme     string         `json:"scheme"`
	Tagged     bool           `json:"tagged"`
	Action     string         `json:"action"`
	Component  string         `json:"component"`
	State      string         `json:"state"`
	VortexMode string         `json:"vortex_mode"`
	Timestamp  *int64         `json:"timestamp,omitempty"`
	Scores     decoder.Scores `json:"scores"`
}

type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type TransformRequest struct {
	VortexMode string `json:"vortex_mode"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type TagEntry struct {
	Symbol string `json:"symbol"`
	Code   uint16 `json:"code"`
}

type TagsResponse struct {
	Actions     []TagEntry `json:"actions"`
	Components  []TagEntry `json:"components"`
	States      []TagEntry `json:"states"`
	VortexModes []TagEntry `json:"vortex_modes"`
	Namespaces  []string   `json:"namespaces"`
	Strategies  []string   `json:"strategies"`
}

func toDecodeResponse(a decoder.Analysis) DecodeResponse {
	resp := DecodeResponse{
		ID:         a.ID.String(),
		Version:    a.Version.Hex(),
		Scheme:     a.Scheme,
		Tagged:     a.Tagged,
		Action:     a.Tags.Action.String(),
		Component:  a.Tags.Component.String(),
		State:      a.Tags.State.String(),
		VortexMode: a.Tags.Mode.String(),
		Scores:     a.Scores,
	}
	if a.Timestamp != nil {
		ts := a.Timestamp.Unix()
		resp.Timestamp = &ts
	}
	return resp
}

// requestData turns the raw "data" field into the value the custom strategy
// hashes. A JSON string hashes as its contents, null or a missing field as
// no data, and any other JSON value as its raw text.
func requestData(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return s, nil
	}
	return []byte(trimmed), nil
}
