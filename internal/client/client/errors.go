package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/socialcli/internal/common"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrSessionExpired = errors.New("session expired")

	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrServer       = errors.New("server error")

	errMissingAccess  = errors.New("refresh response carries no access token")
	errMissingRefresh = errors.New("no refresh token stored")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
	// Fields holds per-field validation messages; "non_field_errors" is kept
	// as a field.
	Fields    map[string][]string
	RequestID string
	Body      []byte
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error %d", e.StatusCode)
	if e.Code != "" {
		fmt.Fprintf(&b, " (%s)", e.Code)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.Fields) > 0 {
		b.WriteString(": ")
		b.WriteString(e.FieldSummary())
	}
	return b.String()
}

// FieldSummary renders Fields as "field: msg; field: msg" in key order.
func (e *APIError) FieldSummary() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *APIError) Is(target error) bool {
	return target == e.kind()
}

func (e *APIError) kind() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case e.StatusCode >= 500:
		return ErrServer
	case e.StatusCode >= 400:
		return ErrValidation
	default:
		return nil
	}
}

type gatewayError struct {
	Error *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

func newAPIError(resp *Response) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		RequestID:  resp.Header.Get(common.RequestIDHeaderName),
	}

	var gw gatewayError
	if err := json.Unmarshal(resp.Body, &gw); err == nil && gw.Error != nil {
		e.Code = gw.Error.Code
		e.Detail = gw.Error.Message
		if gw.Error.RequestID != "" {
			e.RequestID = gw.Error.RequestID
		}
		return e
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		e.Detail = plainDetail(resp)
		return e
	}

	for k, v := range raw {
		switch k {
		case "detail":
			_ = json.Unmarshal(v, &e.Detail)
		case "code":
			_ = json.Unmarshal(v, &e.Code)
		default:
			if msgs := fieldMessages(v); len(msgs) > 0 {
				if e.Fields == nil {
					e.Fields = make(map[string][]string)
				}
				e.Fields[k] = msgs
			}
		}
	}
	if e.Detail == "" && len(e.Fields) == 0 {
		e.Detail = http.StatusText(resp.StatusCode)
	}
	return e
}

// fieldMessages accepts ["msg", ...] or a bare "msg".
func fieldMessages(v json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		return list
	}
	var one string
	if err := json.Unmarshal(v, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

// maxPlainDetail is counted in runes.
const maxPlainDetail = 200

func plainDetail(resp *Response) string {
	s := strings.TrimSpace(string(resp.Body))
	if s == "" || strings.HasPrefix(s, "<") {
		return http.StatusText(resp.StatusCode)
	}
	if utf8.RuneCountInString(s) > maxPlainDetail {
		s = string([]rune(s)[:maxPlainDetail]) + "..."
	}
	return s
}
