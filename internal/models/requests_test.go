package models

import "testing"

func TestDecodeErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantMsg  string
		wantKnow bool
	}{
		{
			name:     "structured error body",
			body:     `{"error":"name already taken"}`,
			wantMsg:  "name already taken",
			wantKnow: true,
		},
		{
			name:     "empty message is still recognized",
			body:     `{"error":""}`,
			wantMsg:  "",
			wantKnow: true,
		},
		{
			name:     "missing error key",
			body:     `{"detail":"internal"}`,
			wantKnow: false,
		},
		{
			name:     "non-string error value",
			body:     `{"error":{"code":42}}`,
			wantKnow: false,
		},
		{
			name:     "non-object body",
			body:     `"boom"`,
			wantKnow: false,
		},
		{
			name:     "invalid JSON",
			body:     `<html>502</html>`,
			wantKnow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := DecodeErrorResponse([]byte(tt.body))
			if ok != tt.wantKnow {
				t.Errorf("DecodeErrorResponse() ok = %v, want %v", ok, tt.wantKnow)
				return
			}
			if ok && msg != tt.wantMsg {
				t.Errorf("DecodeErrorResponse() = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
