package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validFields = Fields{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
		field  string
		rule   string
	}{
		{"valid", validFields, "", ""},
		{"missing name", Fields{Email: "a@b.co", Message: "m"}, "name", "required"},
		{"whitespace name is present", Fields{Name: "   ", Email: "a@b.co", Message: "m"}, "", ""},
		{"email padded with spaces", Fields{Name: "n", Email: "  a@b.co ", Message: "m"}, "", ""},
		{"blank email", Fields{Name: "n", Email: "   ", Message: "m"}, "email", "required"},
		{"missing email", Fields{Name: "n", Message: "m"}, "email", "required"},
		{"bad email", Fields{Name: "n", Email: "not-an-email", Message: "m"}, "email", "email"},
		{"missing message", Fields{Name: "n", Email: "a@b.co"}, "message", "required"},
		{"all missing reports first", Fields{}, "name", "required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.fields)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.rule, fe.Rule)
			assert.NotEmpty(t, fe.Error())
		})
	}
}

func TestForm_SuccessClearsFields(t *testing.T) {
	f := &Form{Fields: validFields}
	require.Equal(t, StatusIdle, f.Status())

	require.True(t, f.Begin())
	assert.Equal(t, StatusSubmitting, f.Status())

	tok := f.Complete(nil)
	assert.Equal(t, StatusSuccess, f.Status())
	assert.Equal(t, Fields{}, f.Fields)

	assert.True(t, f.Revert(tok))
	assert.Equal(t, StatusIdle, f.Status())
}

func TestForm_ErrorKeepsFields(t *testing.T) {
	f := &Form{Fields: validFields}
	require.True(t, f.Begin())

	tok := f.Complete(errors.New("boom"))
	assert.Equal(t, StatusFailed, f.Status())
	assert.Equal(t, validFields, f.Fields)

	assert.True(t, f.Revert(tok))
	assert.Equal(t, StatusIdle, f.Status())
	assert.Equal(t, validFields, f.Fields)
}

func TestForm_SingleInFlight(t *testing.T) {
	f := &Form{Fields: validFields}
	require.True(t, f.Begin())
	assert.False(t, f.Begin(), "second submission while in flight must be refused")
	assert.Equal(t, StatusSubmitting, f.Status())
}

func TestForm_RevertExactlyOnce(t *testing.T) {
	f := &Form{Fields: validFields}
	f.Begin()
	tok := f.Complete(nil)

	assert.True(t, f.Revert(tok))
	assert.False(t, f.Revert(tok), "duplicate timer must not fire again")
	assert.Equal(t, StatusIdle, f.Status())
}

func TestForm_NewSubmissionInvalidatesOldTimer(t *testing.T) {
	f := &Form{Fields: validFields}
	f.Begin()
	first := f.Complete(errors.New("boom"))

	// Resubmit before the first banner timer fires.
	require.True(t, f.Begin())
	assert.False(t, f.Revert(first), "stale timer must not touch the new submission")
	assert.Equal(t, StatusSubmitting, f.Status())

	second := f.Complete(nil)
	assert.False(t, f.Revert(first))
	assert.Equal(t, StatusSuccess, f.Status())
	assert.True(t, f.Revert(second))
}

func TestForm_CancelDropsPendingTimer(t *testing.T) {
	f := &Form{Fields: validFields}
	f.Begin()
	tok := f.Complete(nil)
	f.Cancel()

	assert.False(t, f.Revert(tok))
	assert.Equal(t, StatusSuccess, f.Status())
}

func TestForm_CompleteWithoutBegin(t *testing.T) {
	f := &Form{Fields: validFields}
	assert.Equal(t, Token(0), f.Complete(nil))
	assert.Equal(t, StatusIdle, f.Status())
	assert.False(t, f.Revert(0))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "submitting", StatusSubmitting.String())
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "error", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
