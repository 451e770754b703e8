package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalidInput, "InvalidInput"},
		{KindStorageError, "StorageError"},
		{KindParseError, "ParseError"},
		{KindServiceError, "ServiceError"},
		{KindModelInvocationError, "ModelInvocationError"},
		{KindUpstreamJobFailed, "UpstreamJobFailed"},
		{KindUnexpectedState, "UnexpectedState"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindStorageError, cause, "error downloading s3://b/k")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if KindOf(err) != KindStorageError {
		t.Errorf("expected StorageError kind, got %v", KindOf(err))
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Errorf("error string should include cause: %q", err.Error())
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindUnexpectedState {
		t.Errorf("unclassified errors should report UnexpectedState, got %v", got)
	}
}

func TestFail_StatusCodes(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, 400},
		{KindStorageError, 400},
		{KindParseError, 400},
		{KindUpstreamJobFailed, 400},
		{KindServiceError, 500},
		{KindModelInvocationError, 500},
		{KindUnexpectedState, 500},
	}
	for _, tt := range tests {
		resp := Fail(Errorf(tt.kind, "boom"))
		if resp.StatusCode != tt.want {
			t.Errorf("Fail(%s) status = %d, want %d", tt.kind, resp.StatusCode, tt.want)
		}
		if !strings.Contains(resp.Body, tt.kind.String()) {
			t.Errorf("Fail(%s) body missing kind name: %q", tt.kind, resp.Body)
		}
	}
}

func TestOK(t *testing.T) {
	resp := OK("summarizer-abc123def456")
	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Body != "summarizer-abc123def456" {
		t.Errorf("unexpected body: %q", resp.Body)
	}
}

func TestUpstreamStatus_NonSDKError(t *testing.T) {
	if got := UpstreamStatus(errors.New("plain")); got != 0 {
		t.Errorf("expected 0 for non-SDK error, got %d", got)
	}
}
