package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/baharkarakas/mindbank/internal/apperr"
	"github.com/baharkarakas/mindbank/internal/finance"
)

const maxBodyBytes = 64 << 10

// Message is the flat {success, message} body of acknowledgements and failures.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const encodeFailure = `{"success":false,"message":"internal server error"}` + "\n"

// WriteJSON encodes v in full before writing the status. A value that cannot
// be encoded is answered with a flat 500 failure.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, encodeFailure)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Success: false, Message: msg})
}

func WriteOK(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusOK, Message{Success: true, Message: msg})
}

// DecodeJSON reads a JSON object body into v. Any decoding problem is a
// validation error.
func DecodeJSON(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Validation("request body is required")
		}
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return apperr.Validation("request body too large")
		}
		return apperr.Validation("invalid JSON body")
	}
	if dec.More() {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}

// WantsJSON reports whether the client prefers JSON over HTML.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// Amount renders a monetary value rounded to cents.
func Amount(d decimal.Decimal) float64 { return finance.Cents(d).InexactFloat64() }

// Rate renders an exchange rate rounded to 4 digits.
func Rate(d decimal.Decimal) float64 { return d.Round(4).InexactFloat64() }
